package routes

import (
	"fmt"
	"time"

	"rental-house-server/models"
	"rental-house-server/storage"
	"rental-house-server/utils"

	"github.com/kataras/iris/v12"
	"github.com/xuri/excelize/v2"
)

type ExportInput struct {
	Status string `json:"status"`
	Room   string `json:"room"`
}

// POST /api/admin/export
//
// Streams an .xlsx of reservations matching the optional filters. The data
// set is a handful of rows for a four-room property, so the export is built
// synchronously in the request.
func AdminExportReservations(ctx iris.Context) {
	var input ExportInput
	if ctx.GetContentLength() > 0 {
		if err := ctx.ReadJSON(&input); err != nil {
			utils.HandleValidationErrors(err, ctx)
			return
		}
	}

	q := storage.DB.Model(&models.Reservation{})
	if input.Status != "" {
		q = q.Where("status = ?", input.Status)
	}
	if input.Room != "" {
		q = q.Where("id_room = ?", input.Room)
	}

	var reservations []models.Reservation
	if err := q.Order("created_at DESC").Find(&reservations).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Reservations"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Guest", "Email", "Phone", "Room", "Check-in", "Check-out", "Guests", "Status", "Rejection message", "Created"}
	for col, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, r := range reservations {
		room, _ := models.RoomByID(r.IDRoom)
		values := []interface{}{
			r.PublicID,
			r.FullName,
			r.Email,
			r.PhoneNumber,
			room.Name,
			r.CheckIn.String(),
			r.CheckOut.String(),
			r.GuestNumber,
			r.Status,
			r.RejectionMessage,
			r.CreatedAt.Format(time.RFC3339),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	utils.Audit(ctx, "reservation.export", "reservation", "", nil, iris.Map{"count": len(reservations)})

	filename := fmt.Sprintf("reservations-%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.ContentType("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(ctx.ResponseWriter()); err != nil {
		utils.CreateInternalServerError(ctx)
	}
}

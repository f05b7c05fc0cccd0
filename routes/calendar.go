package routes

import (
	"time"

	"rental-house-server/models"
	"rental-house-server/storage"
	"rental-house-server/utils"

	"github.com/kataras/iris/v12"
)

// Room catalog and per-room availability calendar

// DayStatus is the derived display status of one calendar day for one room.
// It is recomputed on every request and never stored. The attached
// reservation is the redacted summary shape; the calendar is public and must
// not expose guest contact details.
type DayStatus struct {
	Date        models.Date      `json:"date"`
	Status      string           `json:"status"` // available, pending, booked
	Reservation *conflictSummary `json:"reservation,omitempty"`
}

// BuildMonthCalendar resolves a status for every day of the month by scanning
// the room's reservations. The first overlapping reservation in list order
// wins when several cover the same day. An approved reservation marks the day
// booked; any other overlapping reservation, disapproved included, shows as
// pending. This display policy deliberately differs from the submission-time
// check in findConflicts, which ignores disapproved records.
func BuildMonthCalendar(roomID string, year int, month time.Month, reservations []models.Reservation) []DayStatus {
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	calendar := make([]DayStatus, 0, daysInMonth)
	for dayNum := 1; dayNum <= daysInMonth; dayNum++ {
		day := models.NewDate(time.Date(year, month, dayNum, 0, 0, 0, 0, time.UTC))

		status := DayStatus{Date: day, Status: "available"}
		for i := range reservations {
			r := &reservations[i]
			if r.IDRoom != roomID {
				continue
			}
			if !utils.DayInRange(day, r.CheckIn, r.CheckOut) {
				continue
			}
			if r.Status == models.StatusApproved {
				status.Status = "booked"
			} else {
				status.Status = "pending"
			}
			summary := summarizeReservation(*r)
			status.Reservation = &summary
			break
		}

		calendar = append(calendar, status)
	}

	return calendar
}

// GET /api/rooms
func ListRooms(ctx iris.Context) {
	ctx.JSON(iris.Map{"rooms": models.Rooms})
}

// GET /api/rooms/{roomId}/calendar?year=&month=
func GetRoomCalendar(ctx iris.Context) {
	roomID := ctx.Params().Get("roomId")
	if !models.IsKnownRoom(roomID) {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Unknown room id", ctx)
		return
	}

	now := time.Now()
	year := ctx.URLParamIntDefault("year", now.Year())
	monthNum := ctx.URLParamIntDefault("month", int(now.Month()))
	if monthNum < 1 || monthNum > 12 {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "month must be between 1 and 12", ctx)
		return
	}

	var reservations []models.Reservation
	if err := storage.DB.Where("id_room = ?", roomID).Order("created_at ASC").Find(&reservations).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"roomId": roomID,
		"year":   year,
		"month":  monthNum,
		"days":   BuildMonthCalendar(roomID, year, time.Month(monthNum), reservations),
	})
}

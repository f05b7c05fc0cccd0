package routes

import (
	"strings"

	"rental-house-server/models"
	"rental-house-server/services"
	"rental-house-server/storage"
	"rental-house-server/utils"

	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

// Admin decisions on reservations

type UpdateReservationStatusInput struct {
	Status           string `json:"status" validate:"required,oneof=approved disapproved"`
	RejectionMessage string `json:"rejectionMessage"`
}

// PATCH /api/admin/reservations/{id}/status
func AdminUpdateReservationStatus(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var input UpdateReservationStatusInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if input.Status == models.StatusDisapproved && strings.TrimSpace(input.RejectionMessage) == "" {
		utils.CreateError(iris.StatusUnprocessableEntity, "Validation Error", "rejectionMessage is required when disapproving", ctx)
		return
	}

	var reservation models.Reservation
	if err := storage.DB.Where("public_id = ?", id).First(&reservation).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.CreateError(iris.StatusNotFound, "Not Found", "Reservation not found", ctx)
		} else {
			utils.CreateInternalServerError(ctx)
		}
		return
	}

	if !models.CanTransition(reservation.Status, input.Status) {
		utils.CreateError(iris.StatusConflict, "Invalid Transition",
			"Only pending reservations can be "+input.Status, ctx)
		return
	}

	before := reservation
	reservation.Status = input.Status
	if input.Status == models.StatusDisapproved {
		reservation.RejectionMessage = strings.TrimSpace(input.RejectionMessage)
	}

	if err := storage.DB.Save(&reservation).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "reservation."+input.Status, "reservation", reservation.PublicID, before, reservation)

	go services.MailServiceInstance.SendStatusUpdate(&reservation)

	ctx.JSON(iris.Map{
		"message":     "Reservation " + input.Status,
		"reservation": reservation,
	})
}

// DELETE /api/admin/reservations/{id}
//
// Deletion is allowed from any status and is permanent. The client is
// expected to confirm with the admin before calling.
func AdminDeleteReservation(ctx iris.Context) {
	id := ctx.Params().Get("id")

	var reservation models.Reservation
	if err := storage.DB.Where("public_id = ?", id).First(&reservation).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.CreateError(iris.StatusNotFound, "Not Found", "Reservation not found", ctx)
		} else {
			utils.CreateInternalServerError(ctx)
		}
		return
	}

	if err := storage.DB.Unscoped().Delete(&reservation).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.Audit(ctx, "reservation.delete", "reservation", reservation.PublicID, reservation, nil)

	ctx.JSON(iris.Map{"message": "Reservation deleted successfully"})
}

package routes

import (
	"errors"
	"strings"

	"rental-house-server/models"
	"rental-house-server/services"
	"rental-house-server/storage"
	"rental-house-server/utils"

	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

// Guest-facing reservation endpoints

// errRoomUnavailable aborts the create transaction when the requested range
// conflicts with an existing reservation.
var errRoomUnavailable = errors.New("room unavailable for selected dates")

type CreateReservationInput struct {
	FullName          string `json:"fullName"`
	Email             string `json:"email"`
	PhoneNumber       string `json:"phoneNumber"`
	IDRoom            string `json:"idRoom"`
	CheckIn           string `json:"checkIn"`
	CheckOut          string `json:"checkOut"`
	GuestNumber       int    `json:"guestNumber"`
	AdditionalMessage string `json:"additionalMessage"`
}

// findConflicts returns the reservations for the given room that occupy at
// least one day of [checkIn, checkOut]. Disapproved reservations do not block
// a new submission; pending and approved ones do. Note the display calendar
// applies a different policy (see BuildMonthCalendar).
func findConflicts(roomID string, checkIn, checkOut models.Date, reservations []models.Reservation) []models.Reservation {
	var conflicts []models.Reservation
	for _, r := range reservations {
		if r.IDRoom != roomID {
			continue
		}
		if r.Status == models.StatusDisapproved {
			continue
		}
		if utils.RangesOverlap(checkIn, checkOut, r.CheckIn, r.CheckOut) {
			conflicts = append(conflicts, r)
		}
	}
	return conflicts
}

type conflictSummary struct {
	ID       string      `json:"id"`
	CheckIn  models.Date `json:"checkIn"`
	CheckOut models.Date `json:"checkOut"`
	Status   string      `json:"status"`
}

// summarizeReservation reduces a reservation to the fields safe to show other
// visitors; guest contact details never leave the record.
func summarizeReservation(r models.Reservation) conflictSummary {
	return conflictSummary{
		ID:       r.PublicID,
		CheckIn:  r.CheckIn,
		CheckOut: r.CheckOut,
		Status:   r.Status,
	}
}

func summarizeConflicts(conflicts []models.Reservation) []conflictSummary {
	summaries := make([]conflictSummary, 0, len(conflicts))
	for _, c := range conflicts {
		summaries = append(summaries, summarizeReservation(c))
	}
	return summaries
}

// GET /api/reservations/availability?roomId=&checkIn=&checkOut=
func CheckRoomAvailability(ctx iris.Context) {
	roomID := ctx.URLParam("roomId")
	checkInStr := ctx.URLParam("checkIn")
	checkOutStr := ctx.URLParam("checkOut")

	if roomID == "" || checkInStr == "" || checkOutStr == "" {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "roomId, checkIn and checkOut are required", ctx)
		return
	}
	if !models.IsKnownRoom(roomID) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "unknown room id", ctx)
		return
	}

	checkIn, err := models.ParseDate(checkInStr)
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "invalid checkIn date", ctx)
		return
	}
	checkOut, err := models.ParseDate(checkOutStr)
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "invalid checkOut date", ctx)
		return
	}
	if !checkOut.After(checkIn) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "checkOut must be after checkIn", ctx)
		return
	}

	var reservations []models.Reservation
	if err := storage.DB.Where("id_room = ?", roomID).Find(&reservations).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	conflicts := findConflicts(roomID, checkIn, checkOut, reservations)

	ctx.JSON(iris.Map{
		"available":               len(conflicts) == 0,
		"roomId":                  roomID,
		"checkIn":                 checkIn,
		"checkOut":                checkOut,
		"conflictingReservations": summarizeConflicts(conflicts),
	})
}

// POST /api/reservations
func CreateReservation(ctx iris.Context) {
	var input CreateReservationInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.CreateError(iris.StatusBadRequest, "Invalid Payload", "Request body could not be parsed", ctx)
		return
	}

	if errs := ValidateReservationInput(input, models.Today()); len(errs) > 0 {
		ctx.StatusCode(iris.StatusBadRequest)
		ctx.JSON(iris.Map{"error": "Validation failed", "errors": errs})
		return
	}

	// Validation guarantees these parse.
	checkIn, _ := models.ParseDate(input.CheckIn)
	checkOut, _ := models.ParseDate(input.CheckOut)

	reservation := models.Reservation{
		FullName:          strings.TrimSpace(input.FullName),
		Email:             strings.TrimSpace(input.Email),
		PhoneNumber:       utils.NormalizePhone(input.PhoneNumber),
		IDRoom:            input.IDRoom,
		CheckIn:           checkIn,
		CheckOut:          checkOut,
		GuestNumber:       input.GuestNumber,
		AdditionalMessage: strings.TrimSpace(input.AdditionalMessage),
		Status:            models.StatusPending,
	}

	// The client checks availability while the guest picks dates, but that
	// result may be stale by submit time, so the range is re-checked inside
	// the insert transaction. The per-room advisory lock serializes
	// concurrent submissions; a plain row lock would miss rows inserted by a
	// parallel transaction.
	var conflicts []models.Reservation
	err := storage.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", input.IDRoom).Error; err != nil {
			return err
		}

		var existing []models.Reservation
		if err := tx.Where("id_room = ?", input.IDRoom).Find(&existing).Error; err != nil {
			return err
		}

		conflicts = findConflicts(input.IDRoom, checkIn, checkOut, existing)
		if len(conflicts) > 0 {
			return errRoomUnavailable
		}

		return tx.Create(&reservation).Error
	})
	if err == errRoomUnavailable {
		ctx.StatusCode(iris.StatusConflict)
		ctx.JSON(iris.Map{
			"error":                   "Room is not available for selected dates",
			"conflictingReservations": summarizeConflicts(conflicts),
		})
		return
	}
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	// Notification emails are best-effort and never fail the request.
	go services.MailServiceInstance.SendReservationReceived(&reservation)
	go services.MailServiceInstance.SendAdminNewReservation(&reservation)

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{
		"message":     "Reservation created successfully",
		"reservation": reservation,
	})
}

// GET /api/reservations?page=&limit=&status=&room=
func GetAllReservations(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	if page < 1 {
		page = 1
	}
	limit := ctx.URLParamIntDefault("limit", 10)
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	status := ctx.URLParamDefault("status", "")
	room := ctx.URLParamDefault("room", "")

	q := storage.DB.Model(&models.Reservation{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if room != "" {
		q = q.Where("id_room = ?", room)
	}

	var total int64
	q.Count(&total)

	var reservations []models.Reservation
	if err := q.Offset((page - 1) * limit).Limit(limit).Order("created_at DESC").Find(&reservations).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"reservations": reservations,
		"pagination":   utils.NewPagination(page, limit, total),
	})
}

// GET /api/reservations/{id}
func GetReservationByID(ctx iris.Context) {
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

	ctx.JSON(iris.Map{"reservation": reservation})
}

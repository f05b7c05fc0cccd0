package routes

import (
	"regexp"
	"strings"

	"rental-house-server/models"
	"rental-house-server/utils"
)

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateReservationInput checks a submitted reservation form and returns a
// map of field name to error message. All rules are independent, so a form
// with several problems reports all of them at once; an empty map means the
// form is acceptable. Date parsing problems surface here as field errors
// rather than parse failures.
func ValidateReservationInput(input CreateReservationInput, today models.Date) map[string]string {
	errors := map[string]string{}

	name := strings.TrimSpace(input.FullName)
	if name == "" {
		errors["fullName"] = "Name is required"
	} else if len([]rune(name)) < 2 {
		errors["fullName"] = "Name must be at least 2 characters"
	}

	email := strings.TrimSpace(input.Email)
	if email == "" {
		errors["email"] = "Email is required"
	} else if !emailShape.MatchString(email) {
		errors["email"] = "Please enter a valid email"
	}

	phone := utils.NormalizePhone(input.PhoneNumber)
	if phone == "" {
		errors["phoneNumber"] = "Phone number is required"
	} else if len(phone) < 10 {
		errors["phoneNumber"] = "Please enter a valid phone number"
	}

	if input.IDRoom == "" {
		errors["idRoom"] = "Please select a room"
	} else if !models.IsKnownRoom(input.IDRoom) {
		errors["idRoom"] = "Unknown room"
	}

	var checkIn, checkOut models.Date
	if input.CheckIn == "" {
		errors["checkIn"] = "Check-in date is required"
	} else if parsed, err := models.ParseDate(input.CheckIn); err != nil {
		errors["checkIn"] = "Check-in date must be in YYYY-MM-DD format"
	} else {
		checkIn = parsed
		if checkIn.Before(today) {
			errors["checkIn"] = "Check-in date must be in the future"
		}
	}

	if input.CheckOut == "" {
		errors["checkOut"] = "Check-out date is required"
	} else if parsed, err := models.ParseDate(input.CheckOut); err != nil {
		errors["checkOut"] = "Check-out date must be in YYYY-MM-DD format"
	} else {
		checkOut = parsed
		if !checkIn.IsZero() && !checkOut.After(checkIn) {
			errors["checkOut"] = "Check-out must be after check-in date"
		}
	}

	if input.GuestNumber < 1 {
		errors["guestNumber"] = "At least 1 guest is required"
	} else if input.GuestNumber > 20 {
		errors["guestNumber"] = "Maximum 20 guests allowed"
	}

	message := strings.TrimSpace(input.AdditionalMessage)
	if message != "" && len([]rune(message)) < 10 {
		errors["additionalMessage"] = "Message must be at least 10 characters"
	}

	return errors
}

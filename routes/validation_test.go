package routes

import (
	"testing"

	"rental-house-server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testToday(t *testing.T) models.Date {
	t.Helper()
	d, err := models.ParseDate("2025-06-01")
	require.NoError(t, err)
	return d
}

func validInput() CreateReservationInput {
	return CreateReservationInput{
		FullName:    "Amina Hodzic",
		Email:       "amina@example.com",
		PhoneNumber: "+387 61 123 456",
		IDRoom:      "room-101",
		CheckIn:     "2025-07-01",
		CheckOut:    "2025-07-05",
		GuestNumber: 2,
	}
}

func TestValidateReservationInputAccepted(t *testing.T) {
	errs := ValidateReservationInput(validInput(), testToday(t))
	assert.Empty(t, errs)
}

func TestValidateReservationInputName(t *testing.T) {
	today := testToday(t)

	input := validInput()
	input.FullName = "   "
	errs := ValidateReservationInput(input, today)
	assert.Equal(t, "Name is required", errs["fullName"])

	input.FullName = "A"
	errs = ValidateReservationInput(input, today)
	assert.Equal(t, "Name must be at least 2 characters", errs["fullName"])
}

func TestValidateReservationInputEmail(t *testing.T) {
	today := testToday(t)

	input := validInput()
	input.Email = ""
	errs := ValidateReservationInput(input, today)
	assert.Equal(t, "Email is required", errs["email"])

	for _, bad := range []string{"not-an-email", "a@b", "a b@c.com"} {
		input.Email = bad
		errs = ValidateReservationInput(input, today)
		assert.Equal(t, "Please enter a valid email", errs["email"], "email %q", bad)
	}
}

func TestValidateReservationInputPhone(t *testing.T) {
	today := testToday(t)

	input := validInput()
	input.PhoneNumber = ""
	errs := ValidateReservationInput(input, today)
	assert.Equal(t, "Phone number is required", errs["phoneNumber"])

	// Separators are stripped before the length check.
	input.PhoneNumber = "(06) 1-23"
	errs = ValidateReservationInput(input, today)
	assert.Equal(t, "Please enter a valid phone number", errs["phoneNumber"])

	input.PhoneNumber = "061-234-5678"
	errs = ValidateReservationInput(input, today)
	assert.NotContains(t, errs, "phoneNumber")
}

func TestValidateReservationInputRoom(t *testing.T) {
	today := testToday(t)

	input := validInput()
	input.IDRoom = ""
	errs := ValidateReservationInput(input, today)
	assert.Equal(t, "Please select a room", errs["idRoom"])

	input.IDRoom = "room-999"
	errs = ValidateReservationInput(input, today)
	assert.Equal(t, "Unknown room", errs["idRoom"])
}

func TestValidateReservationInputDates(t *testing.T) {
	today := testToday(t)

	input := validInput()
	input.CheckIn = ""
	errs := ValidateReservationInput(input, today)
	assert.Equal(t, "Check-in date is required", errs["checkIn"])

	input.CheckIn = "01.07.2025"
	errs = ValidateReservationInput(input, today)
	assert.Equal(t, "Check-in date must be in YYYY-MM-DD format", errs["checkIn"])

	input.CheckIn = "2025-05-31"
	errs = ValidateReservationInput(input, today)
	assert.Equal(t, "Check-in date must be in the future", errs["checkIn"])

	// A same-day check-in is accepted.
	input.CheckIn = "2025-06-01"
	input.CheckOut = "2025-06-03"
	errs = ValidateReservationInput(input, today)
	assert.NotContains(t, errs, "checkIn")

	input = validInput()
	input.CheckOut = ""
	errs = ValidateReservationInput(input, today)
	assert.Equal(t, "Check-out date is required", errs["checkOut"])

	input.CheckOut = input.CheckIn
	errs = ValidateReservationInput(input, today)
	assert.Equal(t, "Check-out must be after check-in date", errs["checkOut"])

	input.CheckOut = "2025-07-02"
	errs = ValidateReservationInput(input, today)
	assert.NotContains(t, errs, "checkOut")
}

func TestValidateReservationInputGuests(t *testing.T) {
	today := testToday(t)

	input := validInput()
	for guests, want := range map[int]string{
		0:  "At least 1 guest is required",
		-3: "At least 1 guest is required",
		21: "Maximum 20 guests allowed",
	} {
		input.GuestNumber = guests
		errs := ValidateReservationInput(input, today)
		assert.Equal(t, want, errs["guestNumber"], "guests %d", guests)
	}

	for _, guests := range []int{1, 20} {
		input.GuestNumber = guests
		errs := ValidateReservationInput(input, today)
		assert.NotContains(t, errs, "guestNumber", "guests %d", guests)
	}
}

func TestValidateReservationInputMessage(t *testing.T) {
	today := testToday(t)

	input := validInput()
	input.AdditionalMessage = "too short"
	errs := ValidateReservationInput(input, today)
	assert.Equal(t, "Message must be at least 10 characters", errs["additionalMessage"])

	// Empty is fine, the message is optional.
	input.AdditionalMessage = ""
	errs = ValidateReservationInput(input, today)
	assert.NotContains(t, errs, "additionalMessage")

	input.AdditionalMessage = "We will arrive around 9pm."
	errs = ValidateReservationInput(input, today)
	assert.NotContains(t, errs, "additionalMessage")
}

func TestValidateReservationInputReportsAllErrors(t *testing.T) {
	errs := ValidateReservationInput(CreateReservationInput{}, testToday(t))

	require.Len(t, errs, 7)
	for _, field := range []string{"fullName", "email", "phoneNumber", "idRoom", "checkIn", "checkOut", "guestNumber"} {
		assert.Contains(t, errs, field)
	}
}

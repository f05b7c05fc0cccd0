package services

import (
	"fmt"
	"log"
	"net/smtp"
	"os"

	"rental-house-server/models"
)

// MailService sends the transactional emails around the reservation
// lifecycle: a confirmation to the guest on submission, an alert to the
// owner, and a status update when a reservation is decided.
type MailService struct{}

func NewMailService() *MailService {
	return &MailService{}
}

// Configured reports whether SMTP settings are present. Notification sends
// are best-effort and skipped with a log line when mail is not configured.
func (ms *MailService) Configured() bool {
	return os.Getenv("SMTP_HOST") != ""
}

func (ms *MailService) send(to, subject, body string) error {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		log.Printf("mail disabled, skipping %q to %s", subject, to)
		return nil
	}

	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}
	from := os.Getenv("SMTP_FROM")
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")

	msg := []byte("From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n" +
		"\r\n" + body + "\r\n")

	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	return smtp.SendMail(host+":"+port, auth, from, []string{to}, msg)
}

// SendReservationReceived confirms to the guest that the request was stored
// and is awaiting review.
func (ms *MailService) SendReservationReceived(res *models.Reservation) error {
	room, _ := models.RoomByID(res.IDRoom)
	subject := "We received your reservation request"
	body := fmt.Sprintf(
		"Hello %s,\n\n"+
			"Thank you for your reservation request for %s from %s to %s for %d guest(s).\n"+
			"It is pending review and you will receive a response within 24 hours.\n\n"+
			"Reservation reference: %s\n",
		res.FullName, room.Name, res.CheckIn, res.CheckOut, res.GuestNumber, res.PublicID)

	err := ms.send(res.Email, subject, body)
	if err != nil {
		log.Printf("failed to send guest confirmation for %s: %v", res.PublicID, err)
	}
	return err
}

// SendAdminNewReservation alerts the owner that a new request needs review.
func (ms *MailService) SendAdminNewReservation(res *models.Reservation) error {
	to := os.Getenv("ADMIN_NOTIFY_EMAIL")
	if to == "" {
		return nil
	}

	room, _ := models.RoomByID(res.IDRoom)
	subject := fmt.Sprintf("New reservation request: %s", room.Name)
	body := fmt.Sprintf(
		"New pending reservation %s\n\n"+
			"Guest: %s\nEmail: %s\nPhone: %s\nRoom: %s\nDates: %s to %s\nGuests: %d\nMessage: %s\n",
		res.PublicID, res.FullName, res.Email, res.PhoneNumber, room.Name,
		res.CheckIn, res.CheckOut, res.GuestNumber, res.AdditionalMessage)

	err := ms.send(to, subject, body)
	if err != nil {
		log.Printf("failed to send admin alert for %s: %v", res.PublicID, err)
	}
	return err
}

// SendStatusUpdate tells the guest whether the reservation was approved or
// disapproved, including the rejection reason when there is one.
func (ms *MailService) SendStatusUpdate(res *models.Reservation) error {
	room, _ := models.RoomByID(res.IDRoom)

	var subject, body string
	switch res.Status {
	case models.StatusApproved:
		subject = "Your reservation has been approved"
		body = fmt.Sprintf(
			"Hello %s,\n\nGood news! Your reservation for %s from %s to %s has been approved.\nWe look forward to welcoming you.\n",
			res.FullName, room.Name, res.CheckIn, res.CheckOut)
	case models.StatusDisapproved:
		subject = "Your reservation could not be approved"
		body = fmt.Sprintf(
			"Hello %s,\n\nUnfortunately your reservation for %s from %s to %s could not be approved.\n",
			res.FullName, room.Name, res.CheckIn, res.CheckOut)
		if res.RejectionMessage != "" {
			body += fmt.Sprintf("\nReason: %s\n", res.RejectionMessage)
		}
		body += "\nYou are welcome to try different dates.\n"
	default:
		return nil
	}

	err := ms.send(res.Email, subject, body)
	if err != nil {
		log.Printf("failed to send status update for %s: %v", res.PublicID, err)
	}
	return err
}

// SendTestEmail verifies the SMTP configuration end to end.
func (ms *MailService) SendTestEmail(to string) error {
	return ms.send(to, "Test email", "SMTP configuration is working.")
}

// Global mail service instance
var MailServiceInstance = NewMailService()

package routes

import (
	"os"
	"strings"
	"time"

	"rental-house-server/models"
	"rental-house-server/services"
	"rental-house-server/storage"
	"rental-house-server/utils"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

type AdminLoginInput struct {
	Email string `json:"email" validate:"required,email"`
}

// allowedAdminEmails reads the ADMIN_EMAILS allow-list (comma-separated) from
// the environment. An empty list means nobody can log in.
func allowedAdminEmails() []string {
	raw := os.Getenv("ADMIN_EMAILS")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	emails := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			emails = append(emails, trimmed)
		}
	}
	return emails
}

func isAuthorizedAdmin(email string) bool {
	for _, allowed := range allowedAdminEmails() {
		if strings.EqualFold(allowed, email) {
			return true
		}
	}
	return false
}

// POST /api/admin/login
//
// The admin panel is gated by an email allow-list with no password. That is a
// deliberate usability gate for a family-run site, not an authentication
// scheme; keeping the list server-side at least stops it from shipping to
// every visitor's browser.
func AdminLogin(ctx iris.Context) {
	var input AdminLoginInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	email := strings.TrimSpace(input.Email)
	if !isAuthorizedAdmin(email) {
		utils.CreateError(iris.StatusForbidden, "Forbidden", "This email is not authorized to access the admin panel", ctx)
		return
	}

	token, err := utils.CreateAdminToken(email)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"token": token, "email": email})
}

// POST /api/admin/logout
func AdminLogout(ctx iris.Context) {
	if verified := jwt.GetVerifiedToken(ctx); verified != nil {
		utils.RevokeAdminToken(string(verified.Token))
	}
	ctx.JSON(iris.Map{"message": "Logged out"})
}

// GET /api/admin/stats
func AdminStats(ctx iris.Context) {
	var pending, approved, disapproved int64
	storage.DB.Model(&models.Reservation{}).Where("status = ?", models.StatusPending).Count(&pending)
	storage.DB.Model(&models.Reservation{}).Where("status = ?", models.StatusApproved).Count(&approved)
	storage.DB.Model(&models.Reservation{}).Where("status = ?", models.StatusDisapproved).Count(&disapproved)

	since7 := time.Now().AddDate(0, 0, -7)
	since30 := time.Now().AddDate(0, 0, -30)
	var new7, new30 int64
	storage.DB.Model(&models.Reservation{}).Where("created_at >= ?", since7).Count(&new7)
	storage.DB.Model(&models.Reservation{}).Where("created_at >= ?", since30).Count(&new30)

	ctx.JSON(iris.Map{
		"data": iris.Map{
			"pending":              pending,
			"approved":             approved,
			"disapproved":          disapproved,
			"new_reservations_7d":  new7,
			"new_reservations_30d": new30,
		},
	})
}

// GET /api/admin/activity
func AdminActivity(ctx iris.Context) {
	var logs []models.AuditLog
	storage.DB.Order("created_at DESC").Limit(100).Find(&logs)
	ctx.JSON(iris.Map{"data": logs})
}

// POST /api/admin/test-email
func AdminTestEmail(ctx iris.Context) {
	if !services.MailServiceInstance.Configured() {
		ctx.JSON(iris.Map{"success": false, "error": "SMTP is not configured"})
		return
	}

	to := ctx.Values().GetString("adminEmail")
	if err := services.MailServiceInstance.SendTestEmail(to); err != nil {
		ctx.JSON(iris.Map{"success": false, "error": err.Error()})
		return
	}
	ctx.JSON(iris.Map{"success": true, "message": "Test email sent to " + to})
}

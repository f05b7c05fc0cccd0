package routes

import (
	"rental-house-server/storage"

	"github.com/kataras/iris/v12"
)

// GET /api/health
func HealthCheck(ctx iris.Context) {
	database := "connected"
	if err := storage.Ping(); err != nil {
		database = "disconnected"
	}

	ctx.JSON(iris.Map{
		"status":   "ok",
		"message":  "Reservation service is running",
		"database": database,
	})
}

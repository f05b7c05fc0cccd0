package main

import (
	"log"
	"os"

	"rental-house-server/routes"
	"rental-house-server/storage"
	"rental-house-server/utils"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

func main() {
	godotenv.Load()
	storage.InitializeDB()
	storage.InitializeRedis()

	app := iris.New()
	app.Validator = validator.New()

	// CORS for the site front end
	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(iris.Compression)

	adminTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	adminTokenVerifier.WithDefaultBlocklist()
	adminTokenVerifierMiddleware := adminTokenVerifier.Verify(func() interface{} {
		return new(utils.AdminToken)
	})

	api := app.Party("/api")
	{
		api.Get("/health", routes.HealthCheck)
		api.Get("/weather", routes.GetWeather)
	}

	rooms := api.Party("/rooms")
	{
		rooms.Get("/", routes.ListRooms)
		rooms.Get("/{roomId}/calendar", routes.GetRoomCalendar)
	}

	reservations := api.Party("/reservations")
	{
		reservations.Get("/availability", routes.CheckRoomAvailability)
		reservations.Post("/", routes.CreateReservation)
		reservations.Get("/", routes.GetAllReservations)
		reservations.Get("/{id}", routes.GetReservationByID)
	}

	admin := api.Party("/admin")
	{
		admin.Post("/login", routes.AdminLogin)

		protected := admin.Party("/", adminTokenVerifierMiddleware, utils.AdminSessionMiddleware)
		{
			protected.Post("/logout", routes.AdminLogout)
			protected.Patch("/reservations/{id}/status", routes.AdminUpdateReservationStatus)
			protected.Delete("/reservations/{id}", routes.AdminDeleteReservation)
			protected.Get("/stats", routes.AdminStats)
			protected.Get("/activity", routes.AdminActivity)
			protected.Post("/export", routes.AdminExportReservations)
			protected.Post("/test-email", routes.AdminTestEmail)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}

	log.Println("Starting reservation server on port", port)
	app.Listen(":" + port)
}

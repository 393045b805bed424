package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tour-backend/controllers"
	"tour-backend/middleware"
	"tour-backend/models"
)

// Controllers bundles the handler instances SetupRouter wires up.
type Controllers struct {
	Auth         *controllers.AuthController
	Tour         *controllers.TourController
	Provider     *controllers.ProviderController
	Catalog      *controllers.CatalogController
	Booking      *controllers.BookingController
	Assignment   *controllers.AssignmentController
	Notification *controllers.NotificationController
	Report       *controllers.ReportController
}

func SetupRouter(ctrls Controllers, jwtSvc *middleware.JWTService, logger *zap.Logger, corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(logger))

	allowCredentials := true
	for _, origin := range corsOrigins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/login", ctrls.Auth.Login)
		auth.GET("/me", middleware.JWT(jwtSvc), ctrls.Auth.Me)
	}

	// Everything below requires a valid token.
	authed := api.Group("")
	authed.Use(middleware.JWT(jwtSvc))

	adminOnly := middleware.RequireRole(models.RoleAdmin)
	staff := middleware.RequireRole(models.RoleAdmin, models.RoleGuide)

	users := authed.Group("/users", adminOnly)
	{
		users.POST("", ctrls.Auth.CreateUser)
		users.GET("/guides", ctrls.Auth.ListGuides)
	}

	tours := authed.Group("/tours")
	{
		tours.GET("", staff, ctrls.Tour.ListTours)
		tours.GET("/:tour", staff, ctrls.Tour.GetTour)
		tours.POST("", adminOnly, ctrls.Tour.CreateTour)
		tours.PUT("/:tour", adminOnly, ctrls.Tour.UpdateTour)
		tours.DELETE("/:tour", adminOnly, ctrls.Tour.DeleteTour)

		tours.POST("/:tour/images", adminOnly, ctrls.Tour.AddImage)
		tours.DELETE("/:tour/images/:id", adminOnly, ctrls.Tour.RemoveImage)

		tours.GET("/:tour/schedules", staff, ctrls.Tour.ListSchedules)
		tours.POST("/:tour/schedules", adminOnly, ctrls.Tour.AddSchedule)
		tours.PUT("/:tour/schedules/:id", adminOnly, ctrls.Tour.UpdateSchedule)
		tours.DELETE("/:tour/schedules/:id", adminOnly, ctrls.Tour.RemoveSchedule)

		tours.POST("/:tour/services", adminOnly, ctrls.Tour.AttachService)
		tours.DELETE("/:tour/services/:id", adminOnly, ctrls.Tour.DetachService)
		tours.POST("/:tour/policies", adminOnly, ctrls.Tour.AttachPolicy)
		tours.DELETE("/:tour/policies/:id", adminOnly, ctrls.Tour.DetachPolicy)

		tours.GET("/:tour/assignments", staff, ctrls.Assignment.ListAssignments)
		tours.POST("/:tour/assignments", adminOnly, ctrls.Assignment.CreateAssignment)
		tours.PUT("/:tour/assignments/:id", adminOnly, ctrls.Assignment.UpdateAssignment)
		tours.DELETE("/:tour/assignments/:id", adminOnly, ctrls.Assignment.DeleteAssignment)
	}

	providers := authed.Group("/providers")
	{
		providers.GET("", staff, ctrls.Provider.ListProviders)
		providers.GET("/:id", staff, ctrls.Provider.GetProvider)
		providers.POST("", adminOnly, ctrls.Provider.CreateProvider)
		providers.PUT("/:id", adminOnly, ctrls.Provider.UpdateProvider)
		providers.DELETE("/:id", adminOnly, ctrls.Provider.DeleteProvider)
	}

	catalogServices := authed.Group("/services")
	{
		catalogServices.GET("", staff, ctrls.Catalog.ListServices)
		catalogServices.POST("", adminOnly, ctrls.Catalog.CreateService)
		catalogServices.PUT("/:id", adminOnly, ctrls.Catalog.UpdateService)
		catalogServices.DELETE("/:id", adminOnly, ctrls.Catalog.DeleteService)
	}

	policies := authed.Group("/policies")
	{
		policies.GET("", staff, ctrls.Catalog.ListPolicies)
		policies.POST("", adminOnly, ctrls.Catalog.CreatePolicy)
		policies.PUT("/:id", adminOnly, ctrls.Catalog.UpdatePolicy)
		policies.DELETE("/:id", adminOnly, ctrls.Catalog.DeletePolicy)
	}

	bookings := authed.Group("/bookings")
	{
		bookings.GET("", staff, ctrls.Booking.ListBookings)
		bookings.GET("/:id", staff, ctrls.Booking.GetBooking)
		bookings.POST("", adminOnly, ctrls.Booking.CreateBooking)
		bookings.PUT("/:id", adminOnly, ctrls.Booking.UpdateBooking)
		bookings.DELETE("/:id", adminOnly, ctrls.Booking.DeleteBooking)
	}

	assignments := authed.Group("/assignments", staff)
	{
		assignments.GET("/mine", ctrls.Assignment.MyAssignments)
		assignments.POST("/:id/confirm", ctrls.Assignment.ConfirmAssignment)
		assignments.POST("/:id/checkins", ctrls.Assignment.AddCheckIn)
		assignments.GET("/:id/checkins", ctrls.Assignment.ListCheckIns)
		assignments.POST("/:id/notes", ctrls.Assignment.AddNote)
		assignments.GET("/:id/notes", ctrls.Assignment.ListNotes)
	}

	notifications := authed.Group("/notifications", staff)
	{
		notifications.GET("", ctrls.Notification.ListNotifications)
		notifications.POST("/:id/read", ctrls.Notification.MarkRead)
		notifications.POST("/read-all", ctrls.Notification.MarkAllRead)
	}

	reports := authed.Group("/reports", adminOnly)
	{
		reports.GET("/revenue", ctrls.Report.Revenue)
	}

	return r
}

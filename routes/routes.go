package routes

import (
	"net/http"
	"time"

	therapistRepo "santai/database/repository/therapist"
	"santai/handlers"
	"santai/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups everything route registration needs.
type HandlerBundle struct {
	Commission    *handlers.CommissionHandler
	Deposit       *handlers.DepositHandler
	Booking       *handlers.BookingHandler
	Admin         *handlers.AdminHandler
	Therapist     *handlers.TherapistHandler
	TherapistRepo therapistRepo.TherapistRepository
	AdminToken    string
}

// RegisterTherapistRoutes registers account registration and authentication.
func RegisterTherapistRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/therapists")
	{
		api.POST("/register", hb.Therapist.RegisterTherapistHandler)
		api.POST("/sign-in", hb.Therapist.AuthenticateTherapistHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthTherapistMiddleware(hb.TherapistRepo))
		protected.GET("/me", hb.Therapist.GetTherapistProfileHandler)
		protected.POST("/sign-out", hb.Therapist.RevokeTherapistTokenHandler)
	}
}

// RegisterCommissionRoutes registers the therapist-facing commission endpoints.
func RegisterCommissionRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/commissions")
	{
		api.Use(middleware.JWTAuthTherapistMiddleware(hb.TherapistRepo))
		api.GET("/pending", hb.Commission.GetPendingPaymentsHandler)
		api.GET("/history", hb.Commission.GetPaymentHistoryHandler)
		api.GET("/unpaid-summary", hb.Commission.GetUnpaidSummaryHandler)
		api.POST("/:id/proof", hb.Commission.UploadPaymentProofHandler)
	}
}

// RegisterBookingRoutes registers the booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.Booking.CreateBookingHandler)
		api.GET("/:id", hb.Booking.GetBookingHandler)
		api.PUT("/:id/status", hb.Booking.UpdateBookingStatusHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthTherapistMiddleware(hb.TherapistRepo))
		protected.GET("/therapist/mine", hb.Booking.ListTherapistBookingsHandler)
	}
}

// RegisterDepositRoutes registers the customer-facing deposit endpoints.
func RegisterDepositRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/deposits")
	{
		api.POST("/:id/proof", hb.Deposit.UploadDepositProofHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for the admin verification dashboard.
func RegisterAdminRoutes(r *gin.Engine, hb *HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AuthAdminMiddleware(hb.AdminToken))
		adminGroup.GET("/commissions/awaiting-verification", hb.Admin.GetPaymentsAwaitingVerificationHandler)
		adminGroup.POST("/commissions/:id/verify", hb.Admin.VerifyPaymentHandler)
		adminGroup.POST("/commissions/sweep", hb.Admin.RunOverdueSweepHandler)
		adminGroup.GET("/deposits/awaiting-verification", hb.Admin.GetDepositsAwaitingVerificationHandler)
		adminGroup.POST("/deposits/:id/verify", hb.Admin.VerifyDepositHandler)
		adminGroup.GET("/therapists", hb.Admin.GetAllTherapistsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Santai"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterTherapistRoutes(r, hb)
	RegisterCommissionRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterDepositRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}

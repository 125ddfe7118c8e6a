package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/smartque/smartque-api/internal/audit"
	"github.com/smartque/smartque-api/internal/config"
	"github.com/smartque/smartque-api/internal/handlers"
	"github.com/smartque/smartque-api/internal/infra/repository"
	"github.com/smartque/smartque-api/internal/mail"
	"github.com/smartque/smartque-api/internal/middleware"
	"github.com/smartque/smartque-api/internal/otp"
	"github.com/smartque/smartque-api/internal/payments/mpesa"
	"github.com/smartque/smartque-api/internal/queue"
	"github.com/smartque/smartque-api/internal/receipt"
	"github.com/smartque/smartque-api/internal/storage"
	appointmentuc "github.com/smartque/smartque-api/internal/usecase/appointment"
	"github.com/smartque/smartque-api/internal/usecase/report"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	mailer mail.Mailer,
	cfg *config.Config,
	log *logrus.Logger,
) {
	// infrastructure
	repo := repository.NewAppointmentGormRepository(db)
	sequencer := queue.NewSequencer(rdb)
	otpStore := otp.NewStore(rdb)
	auditor := audit.NewDispatcher(audit.New(db), log)
	mpesaClient := mpesa.NewClient(cfg, log)
	archive := storage.NewS3Archive(cfg)
	receipts := receipt.NewService(db, mailer, archive, log)

	// use cases
	book := appointmentuc.NewBookAppointment(repo, auditor)
	listMine := appointmentuc.NewListUserAppointments(repo)
	cancel := appointmentuc.NewCancelAppointment(repo, auditor)
	reschedule := appointmentuc.NewRescheduleAppointment(repo, auditor)
	nextQueue := appointmentuc.NewNextQueueNumber(repo, sequencer)
	position := appointmentuc.NewQueuePosition(repo)
	setStatus := appointmentuc.NewSetAppointmentStatus(repo, auditor, receipts)
	daily := report.NewDaily(repo)
	stats := report.NewStats(repo)

	// handlers
	authHandler := handlers.NewAuthHandler(db, cfg, otpStore, mailer, log)
	appointmentHandler := handlers.NewAppointmentHandler(
		book, listMine, cancel, reschedule, nextQueue, position,
	)
	adminHandler := handlers.NewAdminHandler(db, setStatus, auditor)
	serviceHandler := handlers.NewServiceHandler(db, auditor)
	counterHandler := handlers.NewCounterHandler(db, auditor)
	reportHandler := handlers.NewReportHandler(daily, stats)
	paymentHandler := handlers.NewPaymentHandler(db, mpesaClient, log)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/generate-otp", authHandler.GenerateOTP)
		auth.POST("/verify-otp", authHandler.VerifyOTP)
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/forgot-password", authHandler.ForgotPassword)
		auth.POST("/reset-password", authHandler.ResetPassword)
		auth.GET("/me", middleware.AuthMiddleware(cfg), authHandler.Me)
	}

	// Queue lookups stay public so waiting-room displays work without a
	// session.
	api.GET("/appointments/next-queue", appointmentHandler.NextQueue)
	api.GET("/appointments/queue-position/:id", appointmentHandler.QueuePosition)

	appointments := api.Group("/appointments", middleware.AuthMiddleware(cfg))
	{
		appointments.POST("/book", appointmentHandler.Book)
		appointments.GET("/user/:userId", appointmentHandler.ListForUser)
		appointments.POST("/cancel/:id", appointmentHandler.Cancel)
		appointments.POST("/reschedule/:id", appointmentHandler.Reschedule)
	}

	admin := api.Group("/admin", middleware.AuthMiddleware(cfg), middleware.AdminOnly())
	{
		admin.GET("/users", adminHandler.ListUsers)
		admin.PATCH("/users/:id/role", adminHandler.UpdateUserRole)

		admin.GET("/appointments", adminHandler.ListAppointments)
		admin.PATCH("/appointments/:id/status", adminHandler.SetAppointmentStatus)

		admin.GET("/services", serviceHandler.List)
		admin.POST("/services", serviceHandler.Create)
		admin.DELETE("/services/:id", serviceHandler.Delete)

		admin.GET("/counters", counterHandler.List)
		admin.POST("/counters", counterHandler.Create)
		admin.PATCH("/counters/:id", counterHandler.Update)

		admin.GET("/reports/daily", reportHandler.Daily)
		admin.GET("/stats", reportHandler.Stats)
	}

	payments := api.Group("/payments/mpesa")
	{
		payments.POST("/stkpush", middleware.AuthMiddleware(cfg), paymentHandler.STKPush)
		payments.POST("/callback", paymentHandler.Callback)
	}
}

package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartque/smartque-api/internal/config"
	"github.com/smartque/smartque-api/internal/db"
	"github.com/smartque/smartque-api/internal/logger"
	"github.com/smartque/smartque-api/internal/mail"
	"github.com/smartque/smartque-api/internal/middleware"
	"github.com/smartque/smartque-api/internal/routes"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	gormDB := db.NewDB(cfg, log)
	rdb := db.NewRedis(cfg, log)
	mailer := mail.New(cfg, log)

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "SmarTQue API is running",
		})
	})
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"status":  "ok",
			"mail":    mailer.Mode(),
		})
	})

	routes.RegisterRoutes(r, gormDB, rdb, mailer, cfg, log)

	log.WithField("addr", cfg.Addr()).Info("starting smartque api")
	if err := r.Run(cfg.Addr()); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}

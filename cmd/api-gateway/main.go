package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/raidhealth/patient-platform/config"
	"github.com/raidhealth/patient-platform/internal/gateway"
	"github.com/raidhealth/patient-platform/internal/interface/middleware"
	"github.com/raidhealth/patient-platform/pkg/helpers"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-gateway", cfg.Env)
	gin.SetMode(cfg.GinMode)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	validator, err := gateway.NewTokenValidator(ctx, cfg.AuthJWKSURL, cfg.AuthIssuer, cfg.AuthAudience)
	if err != nil {
		log.Fatalf("failed to init token validator: %v", err)
	}

	gw, err := gateway.New(gateway.RoutesFromConfig(cfg), validator, logger)
	if err != nil {
		log.Fatalf("failed to init gateway: %v", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	if cfg.HTTPLogEnabled {
		r.Use(gin.Logger())
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.NoRoute(gw.Handler())

	srv := &http.Server{Addr: ":" + cfg.GatewayPort, Handler: r}
	go func() {
		logger.Infof("api gateway starting on :%s", cfg.GatewayPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down gateway")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("gateway forced to shutdown: %v", err)
	}
	logger.Info("gateway exited properly")
}

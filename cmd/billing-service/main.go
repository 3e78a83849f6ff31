package main

import (
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"

	"github.com/raidhealth/patient-platform/config"
	"github.com/raidhealth/patient-platform/internal/billingservice"
	"github.com/raidhealth/patient-platform/pkg/helpers"
	billingpb "github.com/raidhealth/patient-platform/proto/billing"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-billing", cfg.Env)

	lis, err := net.Listen("tcp", ":"+cfg.BillingPort)
	if err != nil {
		log.Fatalf("failed to listen on :%s: %v", cfg.BillingPort, err)
	}

	srv := grpc.NewServer()
	billingpb.RegisterBillingServiceServer(srv, billingservice.New(logger))

	go func() {
		logger.Infof("billing grpc service starting on :%s", cfg.BillingPort)
		if err := srv.Serve(lis); err != nil {
			logger.Fatalf("serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down billing service")
	srv.GracefulStop()
	logger.Info("billing service exited properly")
}

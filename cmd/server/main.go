package main

import (
	"fmt"
	"log"

	"github.com/goldbach8/DespachoComex/internal/config"
	"github.com/goldbach8/DespachoComex/internal/handler"
	"github.com/goldbach8/DespachoComex/internal/repository/postgres"
	"github.com/goldbach8/DespachoComex/internal/router"
	"github.com/goldbach8/DespachoComex/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	despachoRepo := postgres.NewDespachoRepo(db)
	bkCodeRepo := postgres.NewBKCodeRepo(db)
	supplierRepo := postgres.NewSupplierRepo(db)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	despachoSvc := service.NewDespachoService(despachoRepo, cfg.Extract)
	bkSvc := service.NewBKService(bkCodeRepo)
	supplierSvc := service.NewSupplierService(supplierRepo)
	reportSvc := service.NewReportService(despachoRepo, bkSvc)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	despachoH := handler.NewDespachoHandler(despachoSvc)
	reportH := handler.NewReportHandler(reportSvc)
	bkH := handler.NewBKHandler(bkSvc)
	supplierH := handler.NewSupplierHandler(supplierSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(authSvc, cfg.CORS.AllowedOrigins, cfg.Log.Format, authH, despachoH, reportH, bkH, supplierH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/nurpe/yardops/internal/auth"
	"github.com/nurpe/yardops/internal/config"
	"github.com/nurpe/yardops/internal/db"
	"github.com/nurpe/yardops/internal/excel"
	httphandler "github.com/nurpe/yardops/internal/http"
	"github.com/nurpe/yardops/internal/http/middleware"
	"github.com/nurpe/yardops/internal/logger"
	"github.com/nurpe/yardops/internal/pdf"
	"github.com/nurpe/yardops/internal/repository"
	"github.com/nurpe/yardops/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	reportRepo := repository.NewReportRepository(database)
	taskRepo := repository.NewTaskRepository(database)
	yardRepo := repository.NewYardRepository(database)
	visitorRepo := repository.NewVisitorRepository(database)

	statsService := service.NewStatsService(reportRepo, excel.NewGenerator(), pdf.NewGenerator(), cfg)
	taskService := service.NewTaskService(taskRepo)
	yardService := service.NewYardService(yardRepo)
	visitorService := service.NewVisitorService(visitorRepo)

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(statsService, taskService, yardService, visitorService, log)
	authMiddleware := middleware.Auth(tokenParser)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting yardops service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushub/campushub-backend/internal/config"
	"github.com/campushub/campushub-backend/internal/database"
	"github.com/campushub/campushub-backend/internal/handler"
	"github.com/campushub/campushub-backend/internal/logger"
	"github.com/campushub/campushub-backend/internal/model"
	"github.com/campushub/campushub-backend/internal/repository"
	"github.com/campushub/campushub-backend/internal/router"
	"github.com/campushub/campushub-backend/internal/service"
	"github.com/campushub/campushub-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting CampusHub Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to MongoDB ────────────────────────────────────────────
	client, db, err := database.NewMongoDatabase(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	// ─── Initialize Repositories ───────────────────────────────────────
	scheduleColl := repository.NewCollection[model.Schedule](db, "schedules")
	contactColl := repository.NewCollection[model.Contact](db, "contacts")
	facultyColl := repository.NewCollection[model.Faculty](db, "faculties")
	announcementColl := repository.NewCollection[model.Announcement](db, "announcements")

	// ─── Initialize Services ──────────────────────────────────────────
	mediaService := service.NewMediaService(cfg)
	scheduleService := service.NewScheduleService(scheduleColl)
	contactService := service.NewContactService(contactColl)
	facultyService := service.NewFacultyService(facultyColl)
	announcementService := service.NewAnnouncementService(announcementColl)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Schedule:     handler.NewScheduleHandler(scheduleService, mediaService),
		Contact:      handler.NewContactHandler(contactService, mediaService),
		Faculty:      handler.NewFacultyHandler(facultyService, mediaService),
		Announcement: handler.NewAnnouncementHandler(announcementService),
		Media:        handler.NewMediaHandler(mediaService),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}

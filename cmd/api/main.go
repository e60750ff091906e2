package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/hoardspot/hoardspot-api/internal/config"
	"github.com/hoardspot/hoardspot-api/internal/domain/booking"
	"github.com/hoardspot/hoardspot-api/internal/domain/enquiry"
	"github.com/hoardspot/hoardspot-api/internal/domain/photo"
	"github.com/hoardspot/hoardspot-api/internal/domain/space"
	"github.com/hoardspot/hoardspot-api/internal/middleware"
	"github.com/hoardspot/hoardspot-api/internal/pkg/database"
	"github.com/hoardspot/hoardspot-api/internal/pkg/email"
	"github.com/hoardspot/hoardspot-api/internal/pkg/imaging"
	"github.com/hoardspot/hoardspot-api/internal/pkg/logger"
	"github.com/hoardspot/hoardspot-api/internal/pkg/response"
	"github.com/hoardspot/hoardspot-api/internal/pkg/storage"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.Config{Level: cfg.LogLevel, Environment: cfg.Env})

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting HoardSpot API")

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	redisClient, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(redisClient)

	// ---------- Media storage ----------
	var store storage.Storage
	if cfg.S3AccessKey != "" {
		store, err = storage.NewS3Storage(storage.Config{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Bucket:    cfg.S3Bucket,
			PublicURL: cfg.S3PublicURL,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create S3 storage")
		}
	} else {
		log.Warn().Msg("S3 credentials not configured, storing media on local disk")
		store, err = storage.NewLocalStorage("./media", "/media")
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create local storage")
		}
	}

	// ---------- Email ----------
	// Without a SendGrid key the mailers stay nil and notifications are
	// skipped; bookings and enquiries still go through.
	var emailSvc *email.Service
	if cfg.SendGridAPIKey != "" {
		sender := email.NewClient(email.Config{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.EmailFrom,
			FromName:  cfg.EmailFromName,
		})
		emailSvc = email.NewService(sender, cfg.BookingAlertTo, cfg.FrontendURL)
	} else {
		log.Warn().Msg("SendGrid API key not configured, email notifications disabled")
	}

	// ---------- Repositories ----------
	spaceRepo := space.NewRepository(db)
	bookingRepo := booking.NewRepository(db)
	enquiryRepo := enquiry.NewRepository(db)
	photoRepo := photo.NewRepository(db)

	// ---------- Services ----------
	spaceCache := space.NewCache(redisClient, cfg.SpaceCacheTTL)
	spaceService := space.NewService(spaceRepo, spaceCache)

	var bookingMailer booking.Mailer
	var enquiryMailer enquiry.Mailer
	if emailSvc != nil {
		bookingMailer = emailSvc
		enquiryMailer = emailSvc
	}

	bookingService := booking.NewService(bookingRepo, bookingMailer)
	enquiryService := enquiry.NewService(enquiryRepo, enquiryMailer)

	processor := imaging.NewProcessor(imaging.DefaultConfig())
	photoService := photo.NewService(photoRepo, store, processor, &spaceCoverAdapter{repo: spaceRepo})

	// ---------- Handlers ----------
	spaceHandler := space.NewHandler(spaceService)
	bookingHandler := booking.NewHandler(bookingService, &spaceSnapshotAdapter{svc: spaceService})
	enquiryHandler := enquiry.NewHandler(enquiryService)
	photoHandler := photo.NewHandler(photoService)

	// ---------- Router ----------
	r := newRouter(cfg.AllowedOrigins, spaceHandler, bookingHandler, enquiryHandler, photoHandler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}

// newRouter assembles the full HTTP surface. The space router owns the
// whole /spaces tree, including the booking and photo subroutes under
// /spaces/{id}, so no sibling route can shadow it.
func newRouter(allowedOrigins []string, spaces *space.Handler, bookings *booking.Handler, enquiries *enquiry.Handler, photos *photo.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(allowedOrigins))
	r.Use(chimw.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/spaces", spaces.Routes(space.DetailRoutes{
			CheckAvailability: bookings.CheckAvailability,
			ListBookings:      bookings.ListByMedia,
			Photos:            photos.SpaceRoutes(),
		}))
		r.Mount("/bookings", bookings.Routes())
		r.Mount("/enquiries", enquiries.Routes())
		r.Mount("/photos", photos.Routes())
	})

	return r
}

// Adapter implementations to bridge interface mismatches

// spaceSnapshotAdapter adapts space.Service to booking.SnapshotProvider
type spaceSnapshotAdapter struct {
	svc *space.Service
}

func (a *spaceSnapshotAdapter) Snapshot(ctx context.Context, id uuid.UUID) (*booking.SpaceSnapshot, error) {
	sp, err := a.svc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &booking.SpaceSnapshot{
		ID:      sp.ID,
		Title:   sp.Title,
		City:    sp.City,
		Address: sp.Address,
	}, nil
}

// spaceCoverAdapter adapts space.Repository to photo.SpaceCoverSetter
type spaceCoverAdapter struct {
	repo space.Repository
}

func (a *spaceCoverAdapter) SetCoverPhoto(ctx context.Context, spaceID uuid.UUID, url string) error {
	return a.repo.SetCoverPhoto(ctx, spaceID, url)
}

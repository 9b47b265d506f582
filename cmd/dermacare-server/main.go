package main

import (
	"context"
	"crypto/rand"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dermacare/dermacare/internal/config"
	"github.com/dermacare/dermacare/internal/domain/directory"
	"github.com/dermacare/dermacare/internal/domain/identity"
	"github.com/dermacare/dermacare/internal/domain/report"
	"github.com/dermacare/dermacare/internal/domain/scan"
	"github.com/dermacare/dermacare/internal/platform/auth"
	"github.com/dermacare/dermacare/internal/platform/blobstore"
	"github.com/dermacare/dermacare/internal/platform/db"
	"github.com/dermacare/dermacare/internal/platform/middleware"
	"github.com/dermacare/dermacare/internal/platform/telemetry"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "dermacare-server",
		Short: "DermaCare skin screening API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			fmt.Println("---------- ---------------------------------------- ---------- --------------------")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	statusCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(statusCmd)

	return cmd
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" || os.Getenv("ENV") == "" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	// Database
	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	// Metrics
	metrics := telemetry.NewProvider(telemetry.Config{
		ServiceName:    "dermacare-server",
		ServiceVersion: version,
		Environment:    cfg.Env,
	})
	defer func() { _ = metrics.Shutdown(ctx) }()

	// Blob storage: GCS when a bucket is configured, in-memory otherwise
	// (development only; Validate rejects a production run without a bucket).
	var blobs blobstore.Store
	if cfg.StorageBucket != "" {
		gcs, err := blobstore.NewGCSStore(ctx, cfg.StorageBucket, cfg.StoragePublicURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize GCS blob store")
		}
		defer gcs.Close()
		blobs = gcs
		logger.Info().Str("bucket", cfg.StorageBucket).Msg("using GCS blob storage")
	} else {
		blobs = blobstore.NewMemoryStore()
		logger.Warn().Msg("using in-memory blob storage; uploads do not survive a restart")
	}

	// Session tokens
	signingKey := []byte(cfg.AuthSigningKey)
	if len(signingKey) == 0 {
		signingKey = make([]byte, 32)
		if _, err := rand.Read(signingKey); err != nil {
			logger.Fatal().Err(err).Msg("failed to generate a signing key")
		}
		logger.Warn().Msg("AUTH_SIGNING_KEY not set; sessions will not survive a restart")
	}
	issuer := auth.NewTokenIssuer(signingKey, time.Duration(cfg.SessionTTLMinutes)*time.Minute)

	// Domain services
	events := identity.NewBroadcaster()
	identitySvc := identity.NewService(
		identity.NewUserRepoPG(pool),
		identity.NewSessionRepoPG(pool),
		issuer,
		events,
		func(ctx context.Context, fn func(ctx context.Context) error) error {
			return db.WithTx(ctx, pool, fn)
		},
	)

	predictor := scan.NewInferenceClient(cfg.BackendBaseURL, nil, logger, metrics)
	scanSvc := scan.NewService(scan.NewRepoPG(pool), blobs, predictor, logger, metrics)

	places := directory.NewPlacesClient(cfg.PlacesBaseURL, cfg.PlacesAPIKey, nil, logger)
	geocoder := directory.NewGeocoder(cfg.GeocodeBaseURL, nil)
	overpass := directory.NewOverpassClient(nil, nil, logger)
	dirSvc := directory.NewService(places, geocoder, overpass, logger, metrics)

	renderer := report.NewRenderer()

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.BodyLimit(cfg.MaxUploadBytes + 1<<20))
	e.Use(metrics.MetricsMiddleware())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// API groups
	apiV1 := e.Group("/api/v1")

	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	apiV1.Use(middleware.RateLimit(rateLimitCfg))

	private := apiV1.Group("")
	private.Use(auth.Middleware(identitySvc, nil))

	// Domain handlers. Directory lookups are public: the location pickers
	// and recommendation panel work before sign-in.
	identity.NewHandler(identitySvc).RegisterRoutes(apiV1, private)
	scan.NewHandler(scanSvc, cfg.MaxUploadBytes).RegisterRoutes(private)
	directory.NewHandler(dirSvc).RegisterRoutes(apiV1)
	report.NewHandler(renderer, scanSvc, identitySvc).RegisterRoutes(private)

	// Health and metrics
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": version,
		})
	})
	e.GET("/health/db", db.HealthHandler(pool))
	e.GET("/metrics", metrics.PrometheusHandler())

	// Background maintenance: expired-session purge and gauge refresh.
	maintCtx, stopMaint := context.WithCancel(ctx)
	defer stopMaint()
	go purgeSessionsLoop(maintCtx, identitySvc, logger)
	go recordHealthMetricsLoop(maintCtx, metrics.HealthMetrics(), pool, scanSvc)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}

func purgeSessionsLoop(ctx context.Context, svc *identity.Service, logger zerolog.Logger) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			purged, err := svc.PurgeExpiredSessions(ctx)
			if err != nil {
				logger.Warn().Err(err).Msg("session purge failed")
				continue
			}
			if purged > 0 {
				logger.Info().Int64("purged", purged).Msg("expired sessions removed")
			}
		}
	}
}

func recordHealthMetricsLoop(ctx context.Context, recorder *telemetry.HealthMetricsRecorder, pool *pgxpool.Pool, scans *scan.Service) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stats := db.GetPoolStats(pool)
			recorder.SetDBPoolActive(int64(stats.AcquiredConns))
			recorder.SetDBPoolIdle(int64(stats.IdleConns))
			if total, err := scans.CountAll(ctx); err == nil {
				recorder.SetScansTotal(total)
			}
		}
	}
}

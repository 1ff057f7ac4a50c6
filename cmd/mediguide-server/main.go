package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mediguide/mediguide/internal/agent"
	"github.com/mediguide/mediguide/internal/config"
	"github.com/mediguide/mediguide/internal/domain/catalog"
	"github.com/mediguide/mediguide/internal/domain/doctor"
	"github.com/mediguide/mediguide/internal/domain/patient"
	"github.com/mediguide/mediguide/internal/domain/records"
	"github.com/mediguide/mediguide/internal/domain/roster"
	"github.com/mediguide/mediguide/internal/platform/auth"
	"github.com/mediguide/mediguide/internal/platform/db"
	"github.com/mediguide/mediguide/internal/platform/llm"
	"github.com/mediguide/mediguide/internal/platform/middleware"
	"github.com/mediguide/mediguide/internal/workflow"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mediguide-server",
		Short: "Clinician workload and consultation assistant API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())

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

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load demo doctors, patients, and the drug catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
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

			if err := seedDemoData(ctx, pool); err != nil {
				return fmt.Errorf("seed failed: %w", err)
			}
			fmt.Println("Demo data loaded.")
			return nil
		},
	}
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	// Database
	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Domain services
	doctorSvc := doctor.NewService(doctor.NewRepoPG(pool))
	patientSvc := patient.NewService(patient.NewRepoPG(pool))
	rosterSvc := roster.NewService(roster.NewRepoPG(pool), roster.ByLowestID{})
	catalogSvc := catalog.NewService(catalog.NewRepoPG(pool))
	recordsSvc := records.NewService(records.NewRepoPG(pool))
	workflowSvc := workflow.NewService(doctorSvc, patientSvc, rosterSvc, catalogSvc, recordsSvc, logger)

	tokens := auth.NewTokenIssuer(cfg.JWTSecret, time.Duration(cfg.TokenTTLMin)*time.Minute)

	// Public routes plus an authenticated API group
	public := e.Group("/api/v1")
	apiV1 := e.Group("/api/v1")
	if cfg.IsDev() && cfg.JWTSecret == "" {
		apiV1.Use(auth.DevMiddleware())
	} else {
		apiV1.Use(auth.Middleware(tokens))
	}

	doctor.NewHandler(doctorSvc, tokens).RegisterRoutes(public, apiV1)
	catalog.NewHandler(catalogSvc).RegisterRoutes(apiV1)
	workflow.NewHandler(workflowSvc).RegisterRoutes(apiV1)

	// Chat assistants, enabled when an LLM endpoint is configured
	if cfg.ChatEnabled() {
		client := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel)
		runner := agent.NewRunner(client, workflowSvc, agent.NewMemory(0), logger)
		agent.NewHandler(runner, workflowSvc.DoctorTools(), workflowSvc.PatientTools()).RegisterRoutes(e)
		logger.Info().Str("model", cfg.LLMModel).Msg("chat assistants enabled")
	} else {
		logger.Info().Msg("chat assistants disabled, no LLM API key configured")
	}

	// Health checks
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})
	e.GET("/health/db", db.HealthHandler(pool))

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

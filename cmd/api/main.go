package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-suggestion-service/config"
	_ "task-suggestion-service/docs" // Swagger docs
	"task-suggestion-service/internal/httpserver"
	suggestionHTTP "task-suggestion-service/internal/suggestion/delivery/http"
	"task-suggestion-service/internal/suggestion/registry"
	"task-suggestion-service/internal/suggestion/repository"
	postgreRepo "task-suggestion-service/internal/suggestion/repository/postgre"
	qdrantRepo "task-suggestion-service/internal/suggestion/repository/qdrant"
	"task-suggestion-service/internal/suggestion/usecase"
	"task-suggestion-service/pkg/gcalendar"
	"task-suggestion-service/pkg/llmprovider"
	"task-suggestion-service/pkg/log"
	"task-suggestion-service/pkg/postgres"
	pkgQdrant "task-suggestion-service/pkg/qdrant"
	"task-suggestion-service/pkg/voyage"
)

// @title       Task Suggestion API
// @description Turns free-text intentions into categorized, scheduled task suggestions.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Suggestion Service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Static registry
	reg, err := registry.Default()
	if err != nil {
		logger.Errorf(ctx, "Failed to load registry: %v", err)
		return
	}
	logger.Infof(ctx, "Registry %s loaded with %d categories", reg.Version, len(reg.Categories))

	// 4. PostgreSQL: verbs and users (optional)
	var (
		verbRepo repository.VerbRepository
		userRepo repository.UserRepository
		db       *sql.DB
	)
	if cfg.Postgres.DSN != "" {
		db, err = postgres.Connect(ctx, postgres.Config{
			DSN:             cfg.Postgres.DSN,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
		})
		if err != nil {
			logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
			return
		}
		defer db.Close()

		if cfg.Postgres.AutoMigrate {
			if err := postgreRepo.Migrate(ctx, db); err != nil {
				logger.Errorf(ctx, "Failed to migrate schema: %v", err)
				return
			}
		}

		pgRepo := postgreRepo.New(db, logger)
		verbRepo, userRepo = pgRepo, pgRepo
		logger.Info(ctx, "✅ PostgreSQL initialized")
	} else {
		logger.Warn(ctx, "PostgreSQL not configured: user timezones and verb decoration disabled")
	}

	// 5. Qdrant: category reference vectors (optional)
	var refRepo repository.ReferenceRepository
	if cfg.Qdrant.URL != "" {
		qdrantClient := pkgQdrant.NewClient(cfg.Qdrant.URL).WithAPIKey(cfg.Qdrant.APIKey)
		refRepo = qdrantRepo.New(qdrantClient, cfg.Qdrant.CollectionName, logger)
		logger.Infof(ctx, "Qdrant reference store: %s/%s", cfg.Qdrant.URL, cfg.Qdrant.CollectionName)
	}

	// 6. Voyage embeddings
	var embedder voyage.IVoyage
	if voyageClient, vErr := voyage.New(cfg.Voyage.APIKey); vErr != nil {
		logger.Warnf(ctx, "Voyage not available, suggestions disabled until configured: %v", vErr)
	} else {
		embedder = voyageClient.WithModel(cfg.Voyage.Model).WithBaseURL(cfg.Voyage.BaseURL)
	}

	// 7. LLM providers for the title flow (optional)
	var llm llmprovider.Generator
	if len(cfg.LLM.Providers) > 0 {
		providers, pErr := llmprovider.InitializeProviders(&cfg.LLM, logger)
		if pErr != nil {
			logger.Warnf(ctx, "LLM providers not available (optional): %v", pErr)
		} else {
			manager := llmprovider.NewManager(providers, &llmprovider.Config{
				FallbackEnabled: cfg.LLM.FallbackEnabled,
				RetryAttempts:   cfg.LLM.RetryAttempts,
				RetryDelay:      cfg.LLM.RetryDelayDuration(),
				MaxTotalTimeout: cfg.LLM.MaxTotalTimeoutDuration(),
			}, logger)
			llm = manager
			logger.Infof(ctx, "✅ LLM providers: %v", manager.Providers())
		}
	}

	// 8. Google Calendar export (optional)
	var opts []usecase.Option
	if cfg.GoogleCalendar.Enabled && cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.New(ctx, gcalendar.Config{
			CredentialsPath: cfg.GoogleCalendar.CredentialsPath,
			TokenPath:       cfg.GoogleCalendar.TokenPath,
		})
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			opts = append(opts, usecase.WithCalendar(calendarClient))
			logger.Info(ctx, "✅ Google Calendar initialized")
		}
	}

	// 9. Suggestion UseCase
	suggestionUC := usecase.New(logger, reg, embedder, refRepo, verbRepo, userRepo, llm, usecase.Config{
		DefaultTimezone: cfg.Suggestion.DefaultTimezone,
		DefaultTotal:    cfg.Suggestion.Total,
		DefaultDuration: cfg.Suggestion.DefaultDuration,
		CalendarID:      cfg.GoogleCalendar.CalendarID,
	}, opts...)

	if err := suggestionUC.LoadReferences(ctx); err != nil {
		logger.Warnf(ctx, "Category references not loaded, /ready will report not ready: %v", err)
	} else {
		logger.Info(ctx, "✅ Category references loaded")
	}

	// 10. HTTP Server
	requestsPerMin := 0
	if cfg.RateLimit.Enabled {
		requestsPerMin = cfg.RateLimit.RequestsPerMin
	}
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:            logger,
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		RequestsPerMin:    requestsPerMin,
		TrustedProxies:    cfg.RateLimit.TrustedProxies,
		SuggestionHandler: suggestionHTTP.New(logger, suggestionUC),
		Ready:             suggestionUC.Ready,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 11. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

package main

import (
	"context"
	"fmt"
	"os"

	"task-suggestion-service/config"
	"task-suggestion-service/internal/suggestion/registry"
	"task-suggestion-service/internal/suggestion/repository"
	postgreRepo "task-suggestion-service/internal/suggestion/repository/postgre"
	qdrantRepo "task-suggestion-service/internal/suggestion/repository/qdrant"
	"task-suggestion-service/internal/suggestion/usecase"
	"task-suggestion-service/pkg/log"
	"task-suggestion-service/pkg/postgres"
	pkgQdrant "task-suggestion-service/pkg/qdrant"
	"task-suggestion-service/pkg/voyage"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run scripts/seed-categories/main.go <path/to/config.yaml>")
		fmt.Println("Example: go run scripts/seed-categories/main.go config/config.yaml")
		os.Exit(1)
	}
	configPath := os.Args[1]

	// Load config
	os.Setenv("CONFIG_PATH", configPath)
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize Logger
	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()

	reg, err := registry.Default()
	if err != nil {
		logger.Fatalf(ctx, "Failed to load registry: %v", err)
	}

	// Initialize clients
	embeddingClient, err := voyage.New(cfg.Voyage.APIKey)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize Voyage API: %v", err)
	}
	embedder := embeddingClient.WithModel(cfg.Voyage.Model).WithBaseURL(cfg.Voyage.BaseURL)

	qdrantClient := pkgQdrant.NewClient(cfg.Qdrant.URL).WithAPIKey(cfg.Qdrant.APIKey)
	if cfg.Qdrant.VectorSize > 0 {
		if err := qdrantClient.EnsureCollection(ctx, pkgQdrant.CreateCollectionRequest{
			Name:    cfg.Qdrant.CollectionName,
			Vectors: pkgQdrant.VectorConfig{Size: cfg.Qdrant.VectorSize, Distance: "Cosine"},
		}); err != nil {
			logger.Fatalf(ctx, "Failed to ensure collection %s: %v", cfg.Qdrant.CollectionName, err)
		}
	}
	refRepo := qdrantRepo.New(qdrantClient, cfg.Qdrant.CollectionName, logger)

	var verbRepo repository.VerbRepository
	if cfg.Postgres.DSN != "" {
		db, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.DSN})
		if err != nil {
			logger.Fatalf(ctx, "Failed to connect to PostgreSQL: %v", err)
		}
		defer db.Close()
		if err := postgreRepo.Migrate(ctx, db); err != nil {
			logger.Fatalf(ctx, "Failed to migrate schema: %v", err)
		}
		verbRepo = postgreRepo.New(db, logger)
	}

	uc := usecase.New(logger, reg, embedder, refRepo, verbRepo, nil, nil, usecase.Config{
		DefaultTimezone: cfg.Suggestion.DefaultTimezone,
	})

	logger.Infof(ctx, "Seeding %d categories from registry %s with model %s...", len(reg.Categories), reg.Version, embedder.Model())

	n, err := uc.SeedReferences(ctx)
	if err != nil {
		logger.Fatalf(ctx, "Failed to seed references: %v", err)
	}
	logger.Infof(ctx, "Embedded %d reference phrases", n)

	if verbRepo == nil {
		logger.Warn(ctx, "PostgreSQL not configured, skipping verbs")
		return
	}

	successCount := 0
	for i, name := range reg.Names() {
		verb, err := verbRepo.UpsertVerb(ctx, repository.UpsertVerbOptions{Name: name})
		if err != nil {
			logger.Errorf(ctx, "Failed to upsert verb %s: %v", name, err)
			continue
		}
		logger.Infof(ctx, "Upserted verb %d/%d: %s (%s)", i+1, len(reg.Categories), verb.Name, verb.ID)
		successCount++
	}

	logger.Infof(ctx, "Seed complete! %d/%d verbs upserted.", successCount, len(reg.Categories))
}

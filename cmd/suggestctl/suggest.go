package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"task-suggestion-service/config"
	"task-suggestion-service/internal/model"
	"task-suggestion-service/internal/suggestion"
	"task-suggestion-service/internal/suggestion/registry"
	"task-suggestion-service/internal/suggestion/repository"
	qdrantRepo "task-suggestion-service/internal/suggestion/repository/qdrant"
	"task-suggestion-service/internal/suggestion/usecase"
	"task-suggestion-service/pkg/log"
	pkgQdrant "task-suggestion-service/pkg/qdrant"
	"task-suggestion-service/pkg/voyage"
)

var (
	suggestTotal    int
	suggestTimezone string
	suggestNoStore  bool
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <text>",
	Short: "Generate suggestions using the configured embedding API",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		reg, err := registry.Default()
		if err != nil {
			return err
		}

		client, err := voyage.New(cfg.Voyage.APIKey)
		if err != nil {
			return err
		}
		embedder := client.WithModel(cfg.Voyage.Model).WithBaseURL(cfg.Voyage.BaseURL)

		var refRepo repository.ReferenceRepository
		if !suggestNoStore && cfg.Qdrant.URL != "" {
			qc := pkgQdrant.NewClient(cfg.Qdrant.URL).WithAPIKey(cfg.Qdrant.APIKey)
			refRepo = qdrantRepo.New(qc, cfg.Qdrant.CollectionName, log.NewNop())
		}

		uc := usecase.New(log.NewNop(), reg, embedder, refRepo, nil, nil, nil, usecase.Config{
			DefaultTimezone: cfg.Suggestion.DefaultTimezone,
			DefaultTotal:    cfg.Suggestion.Total,
			DefaultDuration: cfg.Suggestion.DefaultDuration,
		})
		if err := uc.LoadReferences(ctx); err != nil {
			return fmt.Errorf("load references: %w", err)
		}

		out, err := uc.Suggest(ctx, model.Scope{Timezone: suggestTimezone}, suggestion.SuggestInput{
			Input: strings.Join(args, " "),
			Total: suggestTotal,
		})
		if err != nil {
			return err
		}

		if len(out.Suggestions) == 0 {
			printStatus("⚠", "no suggestions", color.FgYellow)
			return nil
		}

		fmt.Printf("timezone %s\n", color.New(color.Bold).Sprint(out.Timezone))
		for i, s := range out.Suggestions {
			fmt.Printf("%2d. %-40s %s %s %s\n", i+1, s.Title,
				color.CyanString("[%s]", s.Category),
				s.ScheduledDateTime,
				color.HiBlackString("%s", s.Duration))
		}
		return nil
	},
}

func init() {
	suggestCmd.Flags().IntVar(&suggestTotal, "total", 0, "number of suggestions (default from config)")
	suggestCmd.Flags().StringVar(&suggestTimezone, "tz", "", "IANA timezone (default from config)")
	suggestCmd.Flags().BoolVar(&suggestNoStore, "no-store", false, "embed references in memory instead of using Qdrant")
}

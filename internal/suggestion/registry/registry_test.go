package registry_test

import (
	"strings"
	"testing"

	"task-suggestion-service/internal/suggestion/registry"
)

func TestDefault(t *testing.T) {
	r, err := registry.Default()
	if err != nil {
		t.Fatalf("unexpected error loading embedded registry: %v", err)
	}

	if r.Version == "" {
		t.Error("expected a version")
	}

	workout, ok := r.Category("Workout")
	if !ok {
		t.Fatal("expected Workout category")
	}
	if workout.Duration.Kind != registry.DurationFixed || workout.Duration.Record != "1 HR" {
		t.Errorf("unexpected Workout duration policy: %+v", workout.Duration)
	}

	reading, ok := r.Category("Reading")
	if !ok {
		t.Fatal("expected Reading category")
	}
	if reading.Duration.Kind != registry.DurationRandom {
		t.Errorf("expected random policy for Reading, got %s", reading.Duration.Kind)
	}

	for _, c := range r.Categories {
		if len(c.References) == 0 {
			t.Errorf("category %s has no references", c.Name)
		}
		if len(c.Templates) == 0 {
			t.Errorf("category %s has no templates", c.Name)
		}
	}

	if r.VerbMatcher().MatchString("go for a walk") != true {
		t.Error("expected verb matcher to match walk")
	}
	if r.VerbMatcher().MatchString("go somewhere") {
		t.Error("go must not be part of the verb vocabulary")
	}
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "Missing version",
			doc:     "durations: [\"1 HR\"]\ncategories: [{name: A, references: [x]}]",
			wantErr: "version",
		},
		{
			name:    "No references",
			doc:     "version: v1\ndurations: [\"1 HR\"]\ncategories: [{name: A}]",
			wantErr: "no reference",
		},
		{
			name:    "Duplicate category",
			doc:     "version: v1\ndurations: [\"1 HR\"]\ncategories: [{name: A, references: [x]}, {name: A, references: [y]}]",
			wantErr: "duplicate",
		},
		{
			name:    "Bad fixed policy",
			doc:     "version: v1\ndurations: [\"1 HR\"]\ncategories: [{name: A, references: [x], duration: {kind: fixed}}]",
			wantErr: "record",
		},
		{
			name:    "Unknown policy",
			doc:     "version: v1\ndurations: [\"1 HR\"]\ncategories: [{name: A, references: [x], duration: {kind: weird}}]",
			wantErr: "unknown duration kind",
		},
		{
			name: "Valid minimal",
			doc:  "version: v1\ndurations: [\"1 HR\"]\ncategories: [{name: A, references: [x], topics: [a, a, b]}]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := registry.Parse([]byte(tt.doc))
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				c, _ := r.Category("A")
				if len(c.Topics) != 2 {
					t.Errorf("expected duplicate topics removed, got %v", c.Topics)
				}
				if c.Duration.TitleDefault != "15" {
					t.Errorf("expected default title duration 15, got %q", c.Duration.TitleDefault)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

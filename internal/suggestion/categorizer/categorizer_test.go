package categorizer_test

import (
	"errors"
	"math"
	"testing"

	"task-suggestion-service/internal/suggestion"
	"task-suggestion-service/internal/suggestion/categorizer"
)

const eps = 1e-6

func TestCosineSimilarity(t *testing.T) {
	vectors := [][]float32{
		{1, 0, 0},
		{0.3, -1.2, 4.5},
		{-7, 2, 0.001},
		{1e-3, 1e-3, 1e-3},
	}

	for _, a := range vectors {
		neg := make([]float32, len(a))
		for i := range a {
			neg[i] = -a[i]
		}

		self, ok := categorizer.CosineSimilarity(a, a)
		if !ok || math.Abs(self-1) > eps {
			t.Errorf("cos(a, a) = %v (ok=%v), want 1", self, ok)
		}
		anti, ok := categorizer.CosineSimilarity(a, neg)
		if !ok || math.Abs(anti+1) > eps {
			t.Errorf("cos(a, -a) = %v (ok=%v), want -1", anti, ok)
		}
	}

	t.Run("Orthogonal", func(t *testing.T) {
		got, ok := categorizer.CosineSimilarity([]float32{1, 0}, []float32{0, 1})
		if !ok || math.Abs(got) > eps {
			t.Errorf("expected 0, got %v", got)
		}
	})

	t.Run("Zero vector is undefined", func(t *testing.T) {
		if _, ok := categorizer.CosineSimilarity([]float32{0, 0}, []float32{1, 1}); ok {
			t.Error("expected ok=false for zero vector")
		}
	})

	t.Run("Dimension mismatch is undefined", func(t *testing.T) {
		if _, ok := categorizer.CosineSimilarity([]float32{1, 0}, []float32{1, 0, 0}); ok {
			t.Error("expected ok=false for mismatched dimensions")
		}
	})
}

func testSet() suggestion.CategoryEmbeddingSet {
	return suggestion.CategoryEmbeddingSet{
		{Category: "Workout", Vectors: [][]float32{{1, 0, 0}, {0.9, 0.1, 0}}},
		{Category: "Reading", Vectors: [][]float32{{0, 1, 0}}},
		{Category: "Cooking", Vectors: [][]float32{{0, 0, 1}}},
	}
}

func TestCategorize(t *testing.T) {
	set := testSet()

	tests := []struct {
		name string
		vec  []float32
		set  suggestion.CategoryEmbeddingSet
		want string
	}{
		{name: "Nearest reference", vec: []float32{0.1, 0.9, 0}, set: set, want: "Reading"},
		{name: "Second reference of a category", vec: []float32{0.8, 0.2, 0}, set: set, want: "Workout"},
		{name: "Tie keeps first seen", vec: []float32{0, 1, 1}, set: set, want: "Reading"},
		{name: "Empty set", vec: []float32{1, 2, 3}, set: nil, want: suggestion.UnknownCategory},
		{name: "Zero vector", vec: []float32{0, 0, 0}, set: set, want: suggestion.UnknownCategory},
		{name: "All dimensions mismatch", vec: []float32{1, 0}, set: set, want: suggestion.UnknownCategory},
		{name: "All negative similarity still picks max", vec: []float32{-1, -1, -0.1}, set: set, want: "Cooking"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := categorizer.Categorize(tt.vec, tt.set)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Categorize() = %s, want %s", got, tt.want)
			}
		})
	}

	t.Run("Empty input vector", func(t *testing.T) {
		_, err := categorizer.Categorize(nil, set)
		if !errors.Is(err, suggestion.ErrEmptyVector) {
			t.Errorf("expected ErrEmptyVector, got %v", err)
		}
	})
}

func TestCategorizeAll(t *testing.T) {
	set := testSet()
	vecs := [][]float32{
		{1, 0, 0},
		nil, // fails
		{0, 0, 1},
		{0, 1, 0},
	}

	results := categorizer.CategorizeAll(vecs, set)
	if len(results) != len(vecs) {
		t.Fatalf("expected %d results, got %d", len(vecs), len(results))
	}

	want := []string{"Workout", "", "Cooking", "Reading"}
	for i, r := range results {
		if r.Index != i {
			t.Errorf("result %d has index %d", i, r.Index)
		}
		if i == 1 {
			if r.Err == nil {
				t.Error("expected error for empty vector")
			}
			continue
		}
		if r.Err != nil {
			t.Errorf("unexpected error at %d: %v", i, r.Err)
		}
		if r.Category != want[i] {
			t.Errorf("result %d = %s, want %s", i, r.Category, want[i])
		}
	}
}

func TestCategorizeAllEmpty(t *testing.T) {
	if got := categorizer.CategorizeAll(nil, testSet()); len(got) != 0 {
		t.Errorf("expected no results, got %v", got)
	}
}

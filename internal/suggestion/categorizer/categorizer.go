// Package categorizer assigns categories to phrase embeddings by 1-nearest
// neighbour over the category reference vectors.
package categorizer

import (
	"fmt"
	"math"

	"github.com/sourcegraph/conc/iter"

	"task-suggestion-service/internal/suggestion"
)

// CosineSimilarity returns dot(a,b)/(|a||b|). ok is false when the value is
// undefined: mismatched dimensions, empty input or a zero vector.
func CosineSimilarity(a, b []float32) (float64, bool) {
	if len(a) == 0 || len(a) != len(b) {
		return 0, false
	}

	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}
	if normA == 0 || normB == 0 {
		return 0, false
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), true
}

// Categorize returns the category of the most similar reference vector.
// Ties keep the first maximum in set order. An empty set, or one where no
// similarity is defined, yields suggestion.UnknownCategory.
func Categorize(vec []float32, set suggestion.CategoryEmbeddingSet) (string, error) {
	if len(vec) == 0 {
		return "", suggestion.ErrEmptyVector
	}

	best := suggestion.UnknownCategory
	bestScore := math.Inf(-1)
	for _, c := range set {
		for _, ref := range c.Vectors {
			score, ok := CosineSimilarity(vec, ref)
			if !ok {
				continue
			}
			if score > bestScore {
				bestScore = score
				best = c.Category
			}
		}
	}
	return best, nil
}

// Result is the outcome of categorizing one vector.
type Result struct {
	Index    int
	Category string
	Err      error
}

// CategorizeAll categorizes every vector concurrently. Every input gets a
// Result at its own index; a failure or panic on one vector never affects
// the others.
func CategorizeAll(vecs [][]float32, set suggestion.CategoryEmbeddingSet) []Result {
	type job struct {
		index int
		vec   []float32
	}

	jobs := make([]job, len(vecs))
	for i, v := range vecs {
		jobs[i] = job{index: i, vec: v}
	}

	return iter.Map(jobs, func(j *job) (res Result) {
		res.Index = j.index
		defer func() {
			if r := recover(); r != nil {
				res.Category = ""
				res.Err = fmt.Errorf("categorize %d: panic: %v", j.index, r)
			}
		}()
		res.Category, res.Err = Categorize(j.vec, set)
		return res
	})
}

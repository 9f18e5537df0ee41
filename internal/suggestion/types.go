package suggestion

import "task-suggestion-service/internal/model"

const (
	// UnknownCategory is returned when a phrase cannot be classified.
	UnknownCategory = "Unknown"

	StatusNew  = "NEW"
	RepeatOnce = "ONCE"

	// DefaultTotal is the number of suggestions produced when none is requested.
	DefaultTotal = 4

	// NullExpr marks an absent date or time field in paraphraser output.
	NullExpr = "null"
)

// TaskPhrase is one segment of user input believed to describe one task.
type TaskPhrase struct {
	Text string
	Verb string // first matched action word, lower-cased; empty if none
}

// CategoryEmbedding holds the reference vectors of one category.
type CategoryEmbedding struct {
	Category string
	Vectors  [][]float32
}

// CategoryEmbeddingSet is the ordered reference data used for classification.
// Order is the tie-break order.
type CategoryEmbeddingSet []CategoryEmbedding

// Categories returns the category names in order.
func (s CategoryEmbeddingSet) Categories() []string {
	out := make([]string, len(s))
	for i, c := range s {
		out[i] = c.Category
	}
	return out
}

// CategorizedGroup maps categories to their phrases, remembering the order in
// which categories first appeared.
type CategorizedGroup struct {
	order   []string
	phrases map[string][]TaskPhrase
}

// NewCategorizedGroup returns an empty group.
func NewCategorizedGroup() *CategorizedGroup {
	return &CategorizedGroup{phrases: make(map[string][]TaskPhrase)}
}

// Add appends p to category.
func (g *CategorizedGroup) Add(category string, p TaskPhrase) {
	if _, ok := g.phrases[category]; !ok {
		g.order = append(g.order, category)
	}
	g.phrases[category] = append(g.phrases[category], p)
}

// Categories returns the categories in first-seen order.
func (g *CategorizedGroup) Categories() []string {
	if g == nil {
		return nil
	}
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Phrases returns the phrases of category in arrival order.
func (g *CategorizedGroup) Phrases(category string) []TaskPhrase {
	if g == nil {
		return nil
	}
	return g.phrases[category]
}

// Len returns the number of categories.
func (g *CategorizedGroup) Len() int {
	if g == nil {
		return 0
	}
	return len(g.order)
}

// Suggestion is one generated task suggestion.
type Suggestion struct {
	Title             string
	ScheduledDateTime string // ISO-8601, ms precision, numeric offset
	Duration          string
	Status            string
	Repeat            string
	Verbs             *model.Verb
	IsDeleted         bool
	Category          string
	CalendarLink      string
}

// TitleSuggestion is one suggestion produced by the paraphraser flow.
type TitleSuggestion struct {
	Title         string
	ScheduledDate string // YYYY-MM-DD
	Time          string // HH:mm:ss
	Duration      string
	Status        string
	Repeat        string
	Verbs         *model.Verb
	IsDeleted     bool
	Category      string
}

// SuggestInput is the input for the engine flow.
type SuggestInput struct {
	Input         string
	Total         int  // 0 means DefaultTotal
	AddToCalendar bool // export results to Google Calendar when configured
}

// SuggestOutput is the result of the engine flow.
type SuggestOutput struct {
	Suggestions []Suggestion
	Timezone    string
}

// TitleSuggestInput is the input for the paraphraser flow.
type TitleSuggestInput struct {
	Input string
}

// TitleSuggestOutput is the result of the paraphraser flow.
type TitleSuggestOutput struct {
	Suggestions []TitleSuggestion
	Timezone    string
}

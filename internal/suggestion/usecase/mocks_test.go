package usecase

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"sync"
	"testing"
	"time"

	"task-suggestion-service/internal/model"
	"task-suggestion-service/internal/suggestion"
	"task-suggestion-service/internal/suggestion/generator"
	"task-suggestion-service/internal/suggestion/registry"
	"task-suggestion-service/internal/suggestion/repository"
	"task-suggestion-service/pkg/gcalendar"
	"task-suggestion-service/pkg/llmprovider"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// keywordEmbedder maps text onto one axis per keyword group.
type keywordEmbedder struct {
	mu     sync.Mutex
	groups [][]string
	err    error
	calls  int
}

func newKeywordEmbedder() *keywordEmbedder {
	return &keywordEmbedder{groups: [][]string{
		{"run", "jog", "workout"},
		{"read", "novel", "book"},
		{"cook", "bake", "recipe"},
	}}
}

func (e *keywordEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	e.mu.Lock()
	e.calls++
	e.mu.Unlock()
	if e.err != nil {
		return nil, e.err
	}
	out := make([][]float32, len(texts))
	for i, text := range texts {
		vec := make([]float32, len(e.groups))
		for _, word := range strings.Fields(strings.ToLower(text)) {
			word = strings.Trim(word, ".,;!?")
			for axis, words := range e.groups {
				for _, w := range words {
					if word == w {
						vec[axis] = 1
					}
				}
			}
		}
		out[i] = vec
	}
	return out, nil
}

func (e *keywordEmbedder) Model() string { return "test-embed" }

// axisReferences matches keywordEmbedder's axes.
func axisReferences() suggestion.CategoryEmbeddingSet {
	return suggestion.CategoryEmbeddingSet{
		{Category: "Workout", Vectors: [][]float32{{1, 0, 0}}},
		{Category: "Reading", Vectors: [][]float32{{0, 1, 0}}},
		{Category: "Cooking", Vectors: [][]float32{{0, 0, 1}}},
	}
}

type mockVerbRepo struct {
	verbs map[string]model.Verb
	err   error
	calls map[string]int
}

func (m *mockVerbRepo) FindVerb(ctx context.Context, name string) (model.Verb, error) {
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[name]++
	if m.err != nil {
		return model.Verb{}, m.err
	}
	return m.verbs[name], nil
}

func (m *mockVerbRepo) UpsertVerb(ctx context.Context, opt repository.UpsertVerbOptions) (model.Verb, error) {
	return model.Verb{ID: opt.Name, Name: opt.Name}, nil
}

type mockUserRepo struct {
	users map[string]model.User
	err   error
}

func (m *mockUserRepo) FindUser(ctx context.Context, id string) (model.User, error) {
	if m.err != nil {
		return model.User{}, m.err
	}
	return m.users[id], nil
}

type mockRefRepo struct {
	set     suggestion.CategoryEmbeddingSet
	loadErr error
	saveErr error
	saved   *repository.SaveReferencesOptions
}

func (m *mockRefRepo) LoadReferences(ctx context.Context, opt repository.LoadReferencesOptions) (suggestion.CategoryEmbeddingSet, error) {
	return m.set, m.loadErr
}

func (m *mockRefRepo) SaveReferences(ctx context.Context, opt repository.SaveReferencesOptions) error {
	m.saved = &opt
	return m.saveErr
}

type mockLLM struct {
	text string
	err  error
	req  *llmprovider.Request
}

func (m *mockLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.req = req
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{Content: llmprovider.TextMessage("assistant", m.text)}, nil
}

type mockCalendar struct {
	failTitles map[string]bool
	requests   []gcalendar.CreateEventRequest
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.requests = append(m.requests, req)
	if m.failTitles[req.Summary] {
		return nil, errors.New("calendar down")
	}
	return &gcalendar.Event{ID: "evt", HtmlLink: "https://calendar.example/" + req.Summary}, nil
}

const testUserID = "7c9e6679-7425-40de-944b-e07fc1f97d11"

func fixedClock(t *testing.T, value string, tz string) func() time.Time {
	t.Helper()
	loc, err := time.LoadLocation(tz)
	if err != nil {
		t.Fatalf("LoadLocation(%s): %v", tz, err)
	}
	at, err := time.ParseInLocation("2006-01-02 15:04", value, loc)
	if err != nil {
		t.Fatalf("parse clock: %v", err)
	}
	return func() time.Time { return at }
}

func seededRand() func() *rand.Rand {
	return func() *rand.Rand { return rand.New(rand.NewPCG(1, 2)) }
}

type fixture struct {
	embedder *keywordEmbedder
	verbs    *mockVerbRepo
	users    *mockUserRepo
	refs     *mockRefRepo
	llm      *mockLLM
	calendar *mockCalendar
}

func newFixture() *fixture {
	return &fixture{
		embedder: newKeywordEmbedder(),
		verbs: &mockVerbRepo{verbs: map[string]model.Verb{
			"Workout": {ID: "v-1", Name: "Workout", Icon: "dumbbell"},
			"Reading": {ID: "v-2", Name: "Reading", Icon: "book"},
		}},
		users: &mockUserRepo{users: map[string]model.User{
			testUserID: {ID: testUserID, Name: "Sam", TimeZone: "America/New_York"},
		}},
		refs:     &mockRefRepo{},
		llm:      &mockLLM{},
		calendar: &mockCalendar{},
	}
}

func (f *fixture) useCase(t *testing.T, opts ...Option) *implUseCase {
	t.Helper()
	reg, err := registry.Default()
	if err != nil {
		t.Fatalf("registry.Default(): %v", err)
	}
	opts = append([]Option{WithGeneratorOptions(generator.WithRand(seededRand())), WithCalendar(f.calendar)}, opts...)
	return New(&mockLogger{}, reg, f.embedder, f.refs, f.verbs, f.users, f.llm, Config{}, opts...)
}

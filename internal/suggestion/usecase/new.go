package usecase

import (
	"sync"
	"time"

	"task-suggestion-service/internal/suggestion"
	"task-suggestion-service/internal/suggestion/generator"
	"task-suggestion-service/internal/suggestion/registry"
	"task-suggestion-service/internal/suggestion/repository"
	"task-suggestion-service/internal/suggestion/segmenter"
	"task-suggestion-service/pkg/gcalendar"
	"task-suggestion-service/pkg/llmprovider"
	pkgLog "task-suggestion-service/pkg/log"
	"task-suggestion-service/pkg/voyage"
)

type implUseCase struct {
	l         pkgLog.Logger
	reg       *registry.Registry
	segmenter *segmenter.Segmenter
	generator *generator.Generator
	genOpts   []generator.Option
	embedder  voyage.IVoyage
	refRepo   repository.ReferenceRepository
	verbRepo  repository.VerbRepository
	userRepo  repository.UserRepository
	llm       llmprovider.Generator
	calendar  gcalendar.ICalendar
	cfg       Config
	now       func() time.Time

	mu   sync.RWMutex
	refs suggestion.CategoryEmbeddingSet
}

var _ suggestion.UseCase = (*implUseCase)(nil)

// New creates a new suggestion UseCase instance. Any collaborator may be nil:
// without an embedder or reference set Suggest fails with ErrModelNotLoaded,
// without an LLM SuggestTitles fails with ErrLLMUnavailable, and missing
// repositories skip user lookup, verb decoration or reference persistence.
func New(
	l pkgLog.Logger,
	reg *registry.Registry,
	embedder voyage.IVoyage,
	refRepo repository.ReferenceRepository,
	verbRepo repository.VerbRepository,
	userRepo repository.UserRepository,
	llm llmprovider.Generator,
	cfg Config,
	opts ...Option,
) *implUseCase {
	if cfg.DefaultTimezone == "" {
		cfg.DefaultTimezone = "UTC"
	}
	if cfg.DefaultTotal <= 0 {
		cfg.DefaultTotal = suggestion.DefaultTotal
	}
	if cfg.DefaultDuration == "" {
		cfg.DefaultDuration = "30 MIN"
	}
	if cfg.CalendarID == "" {
		cfg.CalendarID = "primary"
	}

	uc := &implUseCase{
		l:        l,
		reg:      reg,
		embedder: embedder,
		refRepo:  refRepo,
		verbRepo: verbRepo,
		userRepo: userRepo,
		llm:      llm,
		cfg:      cfg,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}

	uc.segmenter = segmenter.New(reg.VerbMatcher())
	uc.generator = generator.New(reg, uc.genOpts...)
	return uc
}

// Ready reports whether the reference set is loaded.
func (uc *implUseCase) Ready() bool {
	return uc.embedder != nil && len(uc.references()) > 0
}

func (uc *implUseCase) references() suggestion.CategoryEmbeddingSet {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.refs
}

func (uc *implUseCase) setReferences(set suggestion.CategoryEmbeddingSet) {
	uc.mu.Lock()
	uc.refs = set
	uc.mu.Unlock()
}

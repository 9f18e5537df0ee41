// Package generator expands categorized phrases into a fixed number of
// suggestions balanced across categories.
package generator

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"task-suggestion-service/internal/suggestion"
	"task-suggestion-service/internal/suggestion/registry"
	"task-suggestion-service/internal/suggestion/schedule"
	"task-suggestion-service/pkg/verbmatch"
)

const (
	topicPlaceholder    = "{topic}"
	durationPlaceholder = "{duration}"
	defaultTopic        = "topic"
)

// Option configures a Generator.
type Option func(*Generator)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithRand overrides the per-call random source factory.
func WithRand(newRand func() *rand.Rand) Option {
	return func(g *Generator) { g.newRand = newRand }
}

// Generator is safe for concurrent use; all per-call state lives in Distribute.
type Generator struct {
	reg     *registry.Registry
	now     func() time.Time
	newRand func() *rand.Rand
	titler  cases.Caser
}

// New creates a Generator over reg.
func New(reg *registry.Registry, opts ...Option) *Generator {
	g := &Generator{
		reg: reg,
		now: time.Now,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		},
		titler: cases.Title(language.English),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Quotas splits total across n categories; the first total%n get one extra.
func Quotas(total, n int) []int {
	if n <= 0 || total <= 0 {
		return nil
	}
	base, extra := total/n, total%n
	out := make([]int, n)
	for i := range out {
		out[i] = base
		if i < extra {
			out[i]++
		}
	}
	return out
}

// Distribute produces exactly total suggestions spread over group's
// categories in first-seen order, or none when group is empty. Verbs are not
// set; the caller decorates them.
func (g *Generator) Distribute(group *suggestion.CategorizedGroup, loc *time.Location, total int) []suggestion.Suggestion {
	categories := group.Categories()
	if len(categories) == 0 || total <= 0 {
		return nil
	}
	if loc == nil {
		loc = time.UTC
	}

	r := g.newRand()
	topics := newTopicSampler()
	quotas := Quotas(total, len(categories))

	out := make([]suggestion.Suggestion, 0, total)
	for i, name := range categories {
		cat, _ := g.reg.Category(name)
		phrases := group.Phrases(name)
		templates := selectTemplates(cat.Templates, observedVerbs(phrases))

		for q := 0; q < quotas[i]; q++ {
			if len(out) == total {
				return out
			}

			recordDuration, titleDuration := g.durations(r, cat.Duration)

			var title string
			if len(templates) == 0 {
				title = g.fallbackTitle(phrases)
			} else {
				tpl := templates[r.IntN(len(templates))]
				topic := defaultTopic
				if strings.Contains(tpl, topicPlaceholder) {
					topic = topics.pick(r, cat.Name, cat.Topics)
				}
				title = strings.NewReplacer(
					topicPlaceholder, topic,
					durationPlaceholder, titleDuration,
				).Replace(tpl)
			}

			out = append(out, suggestion.Suggestion{
				Title:             title,
				ScheduledDateTime: schedule.FormatDateTime(schedule.FixedOffset(g.now(), loc)),
				Duration:          recordDuration,
				Status:            suggestion.StatusNew,
				Repeat:            suggestion.RepeatOnce,
				IsDeleted:         false,
				Category:          name,
			})
		}
	}
	return out
}

// durations applies the category's duration policy.
func (g *Generator) durations(r *rand.Rand, p registry.DurationPolicy) (record, title string) {
	switch p.Kind {
	case registry.DurationFixed:
		steps := (p.TitleMax-p.TitleMin)/p.TitleStep + 1
		return p.Record, strconv.Itoa(p.TitleMin + r.IntN(steps)*p.TitleStep)
	default:
		enum := g.reg.Durations
		return enum[r.IntN(len(enum))], p.TitleDefault
	}
}

func (g *Generator) fallbackTitle(phrases []suggestion.TaskPhrase) string {
	if len(phrases) == 0 {
		return ""
	}
	return g.titler.String(phrases[0].Text)
}

func observedVerbs(phrases []suggestion.TaskPhrase) []string {
	var verbs []string
	for _, p := range phrases {
		if p.Verb != "" {
			verbs = append(verbs, p.Verb)
		}
	}
	return verbs
}

// selectTemplates narrows templates to those mentioning an observed verb when
// at least two do; otherwise the full list is used.
func selectTemplates(templates, verbs []string) []string {
	if len(verbs) == 0 {
		return templates
	}
	m := verbmatch.New(verbs)
	var matched []string
	for _, t := range templates {
		if m.MatchString(t) {
			matched = append(matched, t)
		}
	}
	if len(matched) >= 2 {
		return matched
	}
	return templates
}

// topicSampler draws topics without replacement per category. Once a
// category's vocabulary is exhausted its pool is refilled and repeats begin.
type topicSampler struct {
	pools map[string][]string
}

func newTopicSampler() *topicSampler {
	return &topicSampler{pools: make(map[string][]string)}
}

func (s *topicSampler) pick(r *rand.Rand, category string, vocabulary []string) string {
	if len(vocabulary) == 0 {
		return defaultTopic
	}
	pool := s.pools[category]
	if len(pool) == 0 {
		pool = append([]string(nil), vocabulary...)
	}
	i := r.IntN(len(pool))
	topic := pool[i]
	pool[i] = pool[len(pool)-1]
	s.pools[category] = pool[:len(pool)-1]
	return topic
}

// Package registry holds the static suggestion data: categories with their
// templates, topics, reference phrases and duration policies, plus the action
// verb vocabulary and the duration enum.
package registry

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"task-suggestion-service/pkg/verbmatch"
)

//go:embed registry.yaml
var defaultRegistry []byte

// DurationKind selects how a category fills durations.
type DurationKind string

const (
	// DurationFixed uses Record for every suggestion and a random
	// multiple of TitleStep in [TitleMin, TitleMax] for the title.
	DurationFixed DurationKind = "fixed"
	// DurationRandom draws the record duration from the enum and fills
	// the title with TitleDefault.
	DurationRandom DurationKind = "random"
)

// DurationPolicy is the per-category duration rule.
type DurationPolicy struct {
	Kind         DurationKind `yaml:"kind"`
	Record       string       `yaml:"record"`
	TitleMin     int          `yaml:"title_min"`
	TitleMax     int          `yaml:"title_max"`
	TitleStep    int          `yaml:"title_step"`
	TitleDefault string       `yaml:"title_default"`
}

// Category is one suggestion category.
type Category struct {
	Name       string         `yaml:"name"`
	Duration   DurationPolicy `yaml:"duration"`
	Templates  []string       `yaml:"templates"`
	Topics     []string       `yaml:"topics"`
	References []string       `yaml:"references"`
}

// Registry is immutable after Parse returns.
type Registry struct {
	Version    string     `yaml:"version"`
	Durations  []string   `yaml:"durations"`
	Verbs      []string   `yaml:"verbs"`
	Categories []Category `yaml:"categories"`

	byName  map[string]int
	matcher *verbmatch.Matcher
}

// Default returns the embedded registry.
func Default() (*Registry, error) {
	return Parse(defaultRegistry)
}

// Parse decodes and validates a registry document.
func Parse(data []byte) (*Registry, error) {
	var r Registry
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("registry: decode: %w", err)
	}
	if err := r.init(); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *Registry) init() error {
	if strings.TrimSpace(r.Version) == "" {
		return errors.New("registry: version is required")
	}
	if len(r.Durations) == 0 {
		return errors.New("registry: durations must not be empty")
	}
	if len(r.Categories) == 0 {
		return errors.New("registry: at least one category is required")
	}

	r.byName = make(map[string]int, len(r.Categories))
	for i := range r.Categories {
		c := &r.Categories[i]
		if c.Name == "" {
			return fmt.Errorf("registry: category %d has no name", i)
		}
		if _, dup := r.byName[c.Name]; dup {
			return fmt.Errorf("registry: duplicate category %q", c.Name)
		}
		if len(c.References) == 0 {
			return fmt.Errorf("registry: category %q has no reference phrases", c.Name)
		}
		if err := c.Duration.validate(); err != nil {
			return fmt.Errorf("registry: category %q: %w", c.Name, err)
		}
		c.Topics = dedupe(c.Topics)
		r.byName[c.Name] = i
	}

	r.matcher = verbmatch.New(r.Verbs)
	return nil
}

func (p *DurationPolicy) validate() error {
	switch p.Kind {
	case DurationFixed:
		if p.Record == "" {
			return errors.New("fixed duration needs a record value")
		}
		if p.TitleStep <= 0 || p.TitleMin <= 0 || p.TitleMax < p.TitleMin {
			return fmt.Errorf("invalid title range [%d,%d] step %d", p.TitleMin, p.TitleMax, p.TitleStep)
		}
	case DurationRandom, "":
		p.Kind = DurationRandom
		if p.TitleDefault == "" {
			p.TitleDefault = "15"
		}
	default:
		return fmt.Errorf("unknown duration kind %q", p.Kind)
	}
	return nil
}

// Category returns the named category.
func (r *Registry) Category(name string) (Category, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Category{}, false
	}
	return r.Categories[i], true
}

// Names returns the category names in registry order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.Categories))
	for i, c := range r.Categories {
		out[i] = c.Name
	}
	return out
}

// VerbMatcher returns the compiled action-verb matcher.
func (r *Registry) VerbMatcher() *verbmatch.Matcher {
	return r.matcher
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := in[:0:0]
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

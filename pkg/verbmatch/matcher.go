// Package verbmatch finds whole-word, case-insensitive occurrences of a fixed
// vocabulary in free text.
package verbmatch

import (
	"regexp"
	"sort"
	"strings"
)

// Match is a single vocabulary hit.
type Match struct {
	Word   string // lower-cased vocabulary word
	Offset int    // byte offset of the hit in the searched text
}

// Matcher is a compiled vocabulary matcher. It is safe for concurrent use.
type Matcher struct {
	re *regexp.Regexp
}

// New compiles a matcher for the given words. Empty and duplicate words are
// ignored. A matcher with an empty vocabulary never matches.
func New(words []string) *Matcher {
	seen := make(map[string]struct{}, len(words))
	uniq := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		uniq = append(uniq, w)
	}

	if len(uniq) == 0 {
		return &Matcher{}
	}

	// Longest first so multi-word entries win over their prefixes.
	alts := make([]string, len(uniq))
	copy(alts, uniq)
	sort.SliceStable(alts, func(i, j int) bool { return len(alts[i]) > len(alts[j]) })
	for i, w := range alts {
		alts[i] = regexp.QuoteMeta(w)
	}

	return &Matcher{re: regexp.MustCompile(`(?i)\b(?:` + strings.Join(alts, "|") + `)\b`)}
}

// FindAll returns every hit in text, left to right.
func (m *Matcher) FindAll(text string) []Match {
	if m.re == nil {
		return nil
	}
	locs := m.re.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}
	out := make([]Match, 0, len(locs))
	for _, loc := range locs {
		out = append(out, Match{
			Word:   strings.ToLower(text[loc[0]:loc[1]]),
			Offset: loc[0],
		})
	}
	return out
}

// MatchString reports whether text contains any vocabulary word.
func (m *Matcher) MatchString(text string) bool {
	return m.re != nil && m.re.MatchString(text)
}

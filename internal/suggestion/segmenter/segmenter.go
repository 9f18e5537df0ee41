// Package segmenter splits free text into task phrases tagged with the action
// verb that governs them.
package segmenter

import (
	"fmt"
	"regexp"
	"strings"

	"task-suggestion-service/internal/suggestion"
	"task-suggestion-service/pkg/verbmatch"
)

// Coordinators are matched as whole words; longer phrases come first so they
// win over their own prefixes.
var coarseSplit = regexp.MustCompile(`(?i)[.,;!]|\b(?:as well as|along with|followed by|and|but|then|after|before|while|when|also|next|yet)\b`)

// Segmenter is safe for concurrent use.
type Segmenter struct {
	verbs *verbmatch.Matcher
}

// New creates a Segmenter using the given action-verb matcher.
func New(verbs *verbmatch.Matcher) *Segmenter {
	return &Segmenter{verbs: verbs}
}

// Segment splits input into task phrases in left-to-right order. A recovered
// internal failure yields an empty result and a non-nil error so the caller
// can log it; callers treat it as "no tasks found".
func (s *Segmenter) Segment(input string) (phrases []suggestion.TaskPhrase, err error) {
	defer func() {
		if r := recover(); r != nil {
			phrases = nil
			err = fmt.Errorf("segmenter: recovered: %v", r)
		}
	}()

	for _, fragment := range coarseSplit.Split(input, -1) {
		fragment = strings.TrimSpace(fragment)
		if fragment == "" {
			continue
		}
		phrases = append(phrases, s.splitByVerbs(fragment)...)
	}
	return phrases, nil
}

// splitByVerbs re-splits a fragment holding two or more verb occurrences at
// every occurrence. Text before the first verb becomes its own verb-less
// phrase.
func (s *Segmenter) splitByVerbs(fragment string) []suggestion.TaskPhrase {
	matches := s.verbs.FindAll(fragment)

	switch len(matches) {
	case 0:
		return []suggestion.TaskPhrase{{Text: fragment}}
	case 1:
		return []suggestion.TaskPhrase{{Text: fragment, Verb: matches[0].Word}}
	}

	out := make([]suggestion.TaskPhrase, 0, len(matches)+1)
	if matches[0].Offset > 0 {
		if lead := strings.TrimSpace(fragment[:matches[0].Offset]); lead != "" {
			out = append(out, suggestion.TaskPhrase{Text: lead})
		}
	}
	for i, m := range matches {
		end := len(fragment)
		if i+1 < len(matches) {
			end = matches[i+1].Offset
		}
		if text := strings.TrimSpace(fragment[m.Offset:end]); text != "" {
			out = append(out, suggestion.TaskPhrase{Text: text, Verb: m.Word})
		}
	}
	return out
}

package usecase

import (
	"time"

	"task-suggestion-service/internal/suggestion/generator"
	"task-suggestion-service/pkg/gcalendar"
)

// Config holds the tunables of the suggestion use case.
type Config struct {
	DefaultTimezone string // used when neither the request nor the user has one
	DefaultTotal    int
	DefaultDuration string // used when the paraphraser omits a duration
	CalendarID      string
}

// Option customizes the use case.
type Option func(*implUseCase)

// WithCalendar enables exporting suggestions to Google Calendar.
func WithCalendar(cal gcalendar.ICalendar) Option {
	return func(uc *implUseCase) { uc.calendar = cal }
}

// WithClock overrides the clock of the title flow and the generator.
func WithClock(now func() time.Time) Option {
	return func(uc *implUseCase) {
		uc.now = now
		uc.genOpts = append(uc.genOpts, generator.WithClock(now))
	}
}

// WithGeneratorOptions passes options through to the generator.
func WithGeneratorOptions(opts ...generator.Option) Option {
	return func(uc *implUseCase) { uc.genOpts = append(uc.genOpts, opts...) }
}

// titleLine is one parsed paraphraser line.
type titleLine struct {
	Title    string
	Duration string
	Date     string
	Time     string
}

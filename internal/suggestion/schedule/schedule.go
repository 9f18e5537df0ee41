// Package schedule turns "now" and optional free-text date/time expressions
// into concrete, timezone-correct future instants.
package schedule

import (
	"strings"
	"time"

	"task-suggestion-service/pkg/datemath"
)

// Layouts of the formatted schedule fields.
const (
	DateTimeLayout = "2006-01-02T15:04:05.000-07:00"
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04:05"
)

const (
	fixedLead   = 15 * time.Minute
	defaultLead = 30 * time.Minute
	nullExpr    = "null"
)

// dayparts maps named parts of the day to their wall-clock hour.
var dayparts = map[string]int{
	"morning":   9,
	"afternoon": 14,
	"evening":   18,
	"night":     21,
}

// FixedOffset returns now+15m in loc with seconds and sub-seconds zeroed.
func FixedOffset(now time.Time, loc *time.Location) time.Time {
	return truncateMinute(now.In(loc).Add(fixedLead))
}

// FormatDateTime renders t in DateTimeLayout.
func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// Resolved is a Mode B result.
type Resolved struct {
	At   time.Time
	Date string // YYYY-MM-DD
	Time string // HH:mm:ss
}

// Resolve combines a date and a time expression into an instant strictly
// after now in loc. "null" (or empty) selects the defaults: today for the
// date, now+30m for the time. Unparseable expressions fall back to the same
// defaults. A combined instant at or before now is moved forward by whole
// calendar days, keeping its wall-clock time, until it is after now.
func Resolve(now time.Time, loc *time.Location, dateExpr, timeExpr string) Resolved {
	now = now.In(loc)
	p := datemath.NewParserIn(loc)

	day := resolveDate(p, now, dateExpr)
	clock := resolveClock(p, now, timeExpr)

	at := rollForward(time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), clock.Second(), 0, loc), now)

	return Resolved{
		At:   at,
		Date: at.Format(DateLayout),
		Time: at.Format(TimeLayout),
	}
}

func resolveDate(p *datemath.Parser, now time.Time, expr string) time.Time {
	expr = strings.TrimSpace(expr)
	if isNull(expr) {
		return p.StartOfDay(now)
	}
	if d, err := p.Parse(expr, now); err == nil {
		return d
	}
	if r, err := p.ParseExpression(expr, now); err == nil {
		return p.StartOfDay(r.AbsoluteTime)
	}
	return p.StartOfDay(now)
}

func resolveClock(p *datemath.Parser, now time.Time, expr string) time.Time {
	expr = strings.TrimSpace(expr)
	fallback := truncateMinute(now.Add(defaultLead))

	if isNull(expr) {
		return fallback
	}
	if hour, ok := dayparts[strings.ToLower(expr)]; ok {
		return p.At(now, hour)
	}
	if t, err := p.ParseTime(expr, now); err == nil {
		return t
	}
	if r, err := p.ParseExpression(expr, now); err == nil && !r.IsAllDay {
		return r.AbsoluteTime.In(p.Location())
	}
	return fallback
}

// rollForward is the single final correction step. An instant at or before
// now advances by the smallest number of whole calendar days, wall-clock
// time kept, that puts it after now: one day for today's date, more for
// dates further back.
func rollForward(at, now time.Time) time.Time {
	if at.After(now) {
		return at
	}
	days := int(now.Sub(at)/(24*time.Hour)) + 1
	at = at.AddDate(0, 0, days)
	for !at.After(now) {
		at = at.AddDate(0, 0, 1)
	}
	return at
}

func isNull(expr string) bool {
	return expr == "" || strings.EqualFold(expr, nullExpr)
}

func truncateMinute(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())
}

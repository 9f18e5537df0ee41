package datemath

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrUnrecognized is returned when an expression matches none of the known patterns.
var ErrUnrecognized = errors.New("datemath: unrecognized expression")

var (
	inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)
	isoDateRe    = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	slashDateRe  = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})(?:/(\d{4}))?$`)
	monthDayRe   = regexp.MustCompile(`^([a-z]+)\.? (\d{1,2})(?:st|nd|rd|th)?(?:,? (\d{4}))?$`)
	dayMonthRe   = regexp.MustCompile(`^(\d{1,2})(?:st|nd|rd|th)? (?:of )?([a-z]+)\.?(?:,? (\d{4}))?$`)
	clockRe      = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?(?::(\d{2}))?\s*(am|pm|a\.m\.|p\.m\.)?$`)
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

var months = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "sept": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

// Parser converts relative date strings to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// NewParserIn creates a parser for an already loaded location.
func NewParserIn(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.UTC
	}
	return &Parser{location: loc}
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Parse converts a relative date string to an absolute time.Time.
// The baseTime is used as the reference point (usually time.Now()).
// The result is midnight of the resolved day in the parser's timezone.
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = normalize(relative)
	relative = strings.TrimPrefix(relative, "on ")

	switch relative {
	case "today", "tonight", "this morning", "this afternoon", "this evening":
		return p.startOfDay(baseTime), nil
	case "tomorrow", "tmr", "tomorrow morning", "tomorrow evening":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "day after tomorrow", "the day after tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 2)), nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	case "next week":
		return p.startOfDay(baseTime.AddDate(0, 0, 7)), nil
	case "next month":
		return p.startOfDay(baseTime.AddDate(0, 1, 0)), nil
	}

	// Handle "in X days/weeks/months"
	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	// Handle "next <weekday>"
	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, baseTime)
	}

	// "friday", "this friday": the coming occurrence, today included
	if wd, ok := weekdays[strings.TrimPrefix(relative, "this ")]; ok {
		daysUntil := int(wd - baseTime.In(p.location).Weekday())
		if daysUntil < 0 {
			daysUntil += 7
		}
		return p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
	}

	if t, ok := p.parseCalendarDate(relative, baseTime); ok {
		return t, nil
	}

	return baseTime, fmt.Errorf("%w: %q", ErrUnrecognized, relative)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return baseTime, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	case strings.HasPrefix(unit, "month"):
		return p.startOfDay(baseTime.AddDate(0, amount, 0)), nil
	}

	return baseTime, fmt.Errorf("unknown time unit: %q", unit)
}

// parseNextWeekday handles patterns like "next monday", "next friday".
func (p *Parser) parseNextWeekday(relative string, baseTime time.Time) (time.Time, error) {
	dayName := strings.TrimPrefix(relative, "next ")
	targetWeekday, ok := weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}

	currentWeekday := baseTime.In(p.location).Weekday()
	daysUntil := int(targetWeekday - currentWeekday)
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.startOfDay(baseTime.AddDate(0, 0, daysUntil)), nil
}

// parseCalendarDate handles absolute dates: "2024-05-03", "5/3", "5/3/2024",
// "may 3", "may 3rd, 2025", "3 may". Dates without a year that already passed
// resolve to the following year.
func (p *Parser) parseCalendarDate(s string, baseTime time.Time) (time.Time, bool) {
	base := p.startOfDay(baseTime)

	if m := isoDateRe.FindStringSubmatch(s); m != nil {
		y, _ := strconv.Atoi(m[1])
		mo, _ := strconv.Atoi(m[2])
		d, _ := strconv.Atoi(m[3])
		return p.date(y, time.Month(mo), d)
	}

	var (
		month   time.Month
		day     int
		year    int
		hasYear bool
	)

	switch {
	case slashDateRe.MatchString(s):
		m := slashDateRe.FindStringSubmatch(s)
		mo, _ := strconv.Atoi(m[1])
		month = time.Month(mo)
		day, _ = strconv.Atoi(m[2])
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
			hasYear = true
		}
	case monthDayRe.MatchString(s):
		m := monthDayRe.FindStringSubmatch(s)
		mo, ok := months[m[1]]
		if !ok {
			return time.Time{}, false
		}
		month = mo
		day, _ = strconv.Atoi(m[2])
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
			hasYear = true
		}
	case dayMonthRe.MatchString(s):
		m := dayMonthRe.FindStringSubmatch(s)
		mo, ok := months[m[2]]
		if !ok {
			return time.Time{}, false
		}
		month = mo
		day, _ = strconv.Atoi(m[1])
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
			hasYear = true
		}
	default:
		return time.Time{}, false
	}

	if !hasYear {
		year = base.Year()
	}
	t, ok := p.date(year, month, day)
	if !ok {
		return time.Time{}, false
	}
	if !hasYear && t.Before(base) {
		t, ok = p.date(year+1, month, day)
	}
	return t, ok
}

// date builds midnight of y-m-d, rejecting out-of-range components instead of normalising them.
func (p *Parser) date(y int, m time.Month, d int) (time.Time, bool) {
	if m < time.January || m > time.December || d < 1 || d > 31 {
		return time.Time{}, false
	}
	t := time.Date(y, m, d, 0, 0, 0, 0, p.location)
	if t.Month() != m || t.Day() != d {
		return time.Time{}, false
	}
	return t, true
}

// ParseTime parses a clock expression ("5pm", "5:30 p.m.", "17:00", "noon",
// "at 9am") and returns that wall-clock time on baseTime's day in the
// parser's timezone.
func (p *Parser) ParseTime(expr string, baseTime time.Time) (time.Time, error) {
	s := normalize(expr)
	s = strings.TrimPrefix(s, "at ")
	s = strings.TrimSuffix(s, " o'clock")

	day := p.startOfDay(baseTime)

	switch s {
	case "noon", "midday":
		return p.At(day, 12), nil
	case "midnight":
		return day, nil
	}

	m := clockRe.FindStringSubmatch(s)
	if m == nil {
		return baseTime, fmt.Errorf("%w: %q", ErrUnrecognized, expr)
	}

	hour, _ := strconv.Atoi(m[1])
	minute, sec := 0, 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	if m[3] != "" {
		sec, _ = strconv.Atoi(m[3])
	}
	meridiem := strings.ReplaceAll(m[4], ".", "")

	switch meridiem {
	case "am", "pm":
		if hour < 1 || hour > 12 {
			return baseTime, fmt.Errorf("invalid hour %d for %s", hour, meridiem)
		}
		hour %= 12
		if meridiem == "pm" {
			hour += 12
		}
	default:
		// A bare number like "5" is ambiguous; require minutes for 24h clock.
		if m[2] == "" || hour > 23 {
			return baseTime, fmt.Errorf("%w: %q", ErrUnrecognized, expr)
		}
	}
	if minute > 59 || sec > 59 {
		return baseTime, fmt.Errorf("invalid clock value: %q", expr)
	}

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, sec, 0, p.location), nil
}

// ParseExpression parses "<date> at <time>", "<date> <time>", a lone date or a
// lone time. IsAllDay is set when no clock time was present.
func (p *Parser) ParseExpression(expr string, baseTime time.Time) (ParseResult, error) {
	s := normalize(expr)

	if t, err := p.ParseTime(s, baseTime); err == nil {
		return ParseResult{AbsoluteTime: t}, nil
	}
	if d, err := p.Parse(s, baseTime); err == nil {
		return ParseResult{AbsoluteTime: d, IsAllDay: true}, nil
	}

	datePart, timePart, found := strings.Cut(s, " at ")
	if !found {
		idx := strings.LastIndex(s, " ")
		if idx < 0 {
			return ParseResult{}, fmt.Errorf("%w: %q", ErrUnrecognized, expr)
		}
		datePart, timePart = s[:idx], s[idx+1:]
	}

	d, err := p.Parse(datePart, baseTime)
	if err != nil {
		return ParseResult{}, err
	}
	t, err := p.ParseTime(timePart, d)
	if err != nil {
		return ParseResult{}, err
	}
	return ParseResult{AbsoluteTime: t}, nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// StartOfDay is the exported form of startOfDay.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	return p.startOfDay(t)
}

// At returns hour:00:00 wall-clock time on t's day in the parser's timezone.
func (p *Parser) At(t time.Time, hour int) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, p.location)
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

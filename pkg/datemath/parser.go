package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	re12Hour  = regexp.MustCompile(`(?:\bat\s*)?(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`)
	re24Hour  = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`)
	reInDays  = regexp.MustCompile(`in (\d+) days?`)
	reInHours = regexp.MustCompile(`in (\d+) hours?`)

	// Checked in this order; first future match wins.
	reSlashDate = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})`)
	reISODate   = regexp.MustCompile(`(\d{4})-(\d{1,2})-(\d{1,2})`)
	reDashDate  = regexp.MustCompile(`(\d{1,2})-(\d{1,2})-(\d{4})`)
)

// weekdayNames in Monday-first order. The index math below mirrors the
// original planner exactly, including its "next monday" distance quirk.
var weekdayNames = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// Parser converts free-text due-date expressions to absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string,
// e.g. "America/New_York".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// ParseDueDate scans free text for a due date relative to base. An explicit
// clock time ("6pm", "18:30") makes the result timed; otherwise relative and
// literal dates are all-day, except "in N hours" which is always timed.
func (p *Parser) ParseDueDate(input string, base time.Time) DueDate {
	text := strings.ToLower(input)
	base = base.In(p.location)

	explicit, hasTime := extractClockTime(text)

	finish := func(day time.Time) DueDate {
		if hasTime {
			return DueDate{At: p.atClock(day, explicit), AllDay: false, Found: true}
		}
		return DueDate{At: p.startOfDay(day), AllDay: true, Found: true}
	}

	if strings.Contains(text, "tomorrow") {
		return finish(base.AddDate(0, 0, 1))
	}

	if strings.Contains(text, "next week") {
		return finish(base.AddDate(0, 0, 7))
	}

	if strings.Contains(text, "this week") {
		return finish(base.AddDate(0, 0, 3))
	}

	if m := reInDays.FindStringSubmatch(text); m != nil {
		days, _ := strconv.Atoi(m[1])
		return finish(base.AddDate(0, 0, days))
	}

	// Time-of-day arithmetic: always timed, never all-day.
	if m := reInHours.FindStringSubmatch(text); m != nil {
		hours, _ := strconv.Atoi(m[1])
		return DueDate{At: base.Add(time.Duration(hours) * time.Hour).Truncate(time.Minute), Found: true}
	}

	for i, name := range weekdayNames {
		if strings.Contains(text, "next "+name) {
			daysUntil := weekdayTarget(i) - int(base.Weekday())
			return finish(base.AddDate(0, 0, daysUntil))
		}
	}

	for i, name := range weekdayNames {
		if strings.Contains(text, "this "+name) {
			daysUntil := weekdayTarget(i) - int(base.Weekday())
			if daysUntil <= 0 {
				daysUntil += 7 // already passed this week, roll to next
			}
			return finish(base.AddDate(0, 0, daysUntil))
		}
	}

	if due, ok := p.parseDateLiteral(text, base, explicit, hasTime); ok {
		return due
	}

	return DueDate{}
}

// weekdayTarget maps a Monday-first index to the Monday=1..Sunday=7 day
// number, with plain "monday" treated as day 7 for the distance math.
func weekdayTarget(i int) int {
	if i == 0 {
		return 7
	}
	return i + 1
}

// parseDateLiteral handles MM/DD/YYYY, YYYY-MM-DD, and MM-DD-YYYY.
// Only dates strictly in the future are accepted.
func (p *Parser) parseDateLiteral(text string, base time.Time, explicit clockTime, hasTime bool) (DueDate, bool) {
	type literal struct {
		re  *regexp.Regexp
		iso bool // year-first capture order
	}
	literals := []literal{
		{reSlashDate, false},
		{reISODate, true},
		{reDashDate, false},
	}

	for _, l := range literals {
		m := l.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		var year, month, day int
		if l.iso {
			year, _ = strconv.Atoi(m[1])
			month, _ = strconv.Atoi(m[2])
			day, _ = strconv.Atoi(m[3])
		} else {
			month, _ = strconv.Atoi(m[1])
			day, _ = strconv.Atoi(m[2])
			year, _ = strconv.Atoi(m[3])
		}

		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.location)
		if !date.After(base) {
			continue
		}

		if hasTime {
			return DueDate{At: p.atClock(date, explicit), Found: true}, true
		}
		return DueDate{At: date, AllDay: true, Found: true}, true
	}

	return DueDate{}, false
}

// extractClockTime pulls an explicit time-of-day out of the text:
// 12-hour form first ("6pm", "at 7:15am"), then 24-hour "18:30".
func extractClockTime(text string) (clockTime, bool) {
	if m := re12Hour.FindStringSubmatch(text); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes := 0
		if m[2] != "" {
			minutes, _ = strconv.Atoi(m[2])
		}
		if hours == 12 {
			hours = 0
		}
		if m[3] == "pm" {
			hours += 12
		}
		return clockTime{hours: hours, minutes: minutes}, true
	}

	if m := re24Hour.FindStringSubmatch(text); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		if hours > 23 {
			hours = 23
		}
		if minutes > 59 {
			minutes = 59
		}
		return clockTime{hours: hours, minutes: minutes}, true
	}

	return clockTime{}, false
}

// atClock places the given clock time onto the given day.
func (p *Parser) atClock(day time.Time, ct clockTime) time.Time {
	day = day.In(p.location)
	return time.Date(day.Year(), day.Month(), day.Day(), ct.hours, ct.minutes, 0, 0, p.location)
}

// startOfDay returns midnight at the start of the given day.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// Package ics renders iCalendar (RFC 5545) files for task export.
package ics

import (
	"fmt"
	"strings"
	"time"
)

const (
	version  = "2.0"
	prodID   = "-//Lunchbox AI//Task Calendar//EN"
	calScale = "GREGORIAN"
	method   = "PUBLISH"
)

// Event is a single VEVENT entry.
type Event struct {
	UID         string
	Summary     string
	Description string
	Location    string
	Start       time.Time
	Duration    time.Duration // ignored for all-day events
	AllDay      bool
	Priority    int // 1 (lowest) to 5 (highest), 0 to omit
	Created     time.Time
	Updated     time.Time
}

// Generator renders calendars.
type Generator struct {
	now func() time.Time
}

// NewGenerator creates a Generator.
func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// Generate renders a full VCALENDAR document with CRLF line endings.
func (g *Generator) Generate(calName string, events []Event) string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:" + version,
		"PRODID:" + prodID,
		"CALSCALE:" + calScale,
		"METHOD:" + method,
		"DTSTAMP:" + formatUTC(g.now()),
		"X-WR-CALNAME:" + calName,
		"X-WR-CALDESC:Tasks from Lunchbox AI",
		"X-WR-TIMEZONE:UTC",
	}

	for _, ev := range events {
		lines = append(lines, g.renderEvent(ev)...)
	}

	lines = append(lines, "END:VCALENDAR")
	return strings.Join(lines, "\r\n")
}

// renderEvent renders one VEVENT. All-day events use VALUE=DATE with an
// exclusive DTEND on the following day.
func (g *Generator) renderEvent(ev Event) []string {
	lines := []string{
		"BEGIN:VEVENT",
		"UID:" + ev.UID,
	}

	if ev.AllDay {
		end := ev.Start.AddDate(0, 0, 1)
		lines = append(lines,
			"DTSTART;VALUE=DATE:"+formatDateOnly(ev.Start),
			"DTEND;VALUE=DATE:"+formatDateOnly(end),
		)
	} else {
		dur := ev.Duration
		if dur <= 0 {
			dur = time.Hour
		}
		lines = append(lines,
			"DTSTART:"+formatUTC(ev.Start),
			"DTEND:"+formatUTC(ev.Start.Add(dur)),
		)
	}

	location := ev.Location
	if location == "" {
		location = "General"
	}

	lines = append(lines,
		"SUMMARY:"+EscapeText(ev.Summary),
		"DESCRIPTION:"+EscapeText(ev.Description),
		"LOCATION:"+EscapeText(location),
		"STATUS:CONFIRMED",
		"TRANSP:OPAQUE",
		"CREATED:"+formatUTC(ev.Created),
		"LAST-MODIFIED:"+formatUTC(ev.Updated),
	)

	if ev.Priority > 0 {
		lines = append(lines, fmt.Sprintf("PRIORITY:%d", icsPriority(ev.Priority)))
	}

	// Display reminder one hour before the event.
	lines = append(lines,
		"BEGIN:VALARM",
		"TRIGGER:-PT1H",
		"ACTION:DISPLAY",
		"DESCRIPTION:Reminder: "+EscapeText(ev.Summary),
		"END:VALARM",
		"END:VEVENT",
	)

	return lines
}

// icsPriority maps task priority 1-5 onto the inverted RFC 5545 scale
// where 1 is the highest priority and 9 the lowest.
func icsPriority(p int) int {
	switch p {
	case 1:
		return 9
	case 2:
		return 7
	case 3:
		return 5
	case 4:
		return 3
	case 5:
		return 1
	default:
		return 5
	}
}

func formatUTC(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

func formatDateOnly(t time.Time) string {
	return t.UTC().Format("20060102")
}

// EscapeText escapes iCalendar special characters in a text value.
func EscapeText(text string) string {
	r := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\r", "",
		"\n", "\\n",
	)
	return r.Replace(text)
}

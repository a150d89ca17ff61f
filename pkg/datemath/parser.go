package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar date format produced by Today and WeekBounds.
const DateLayout = "2006-01-02"

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

// Parse converts a relative date string to an absolute time.Time.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	if strings.HasPrefix(relative, "by ") {
		return p.Parse(strings.TrimPrefix(relative, "by "), baseTime)
	}

	switch relative {
	case "today":
		return p.startOfDay(baseTime), nil
	case "tomorrow":
		return p.startOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	// Handle "in X days/weeks/months"
	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}

	// Handle "next week"
	if relative == "next week" {
		return p.startOfDay(baseTime.AddDate(0, 0, 7)), nil
	}

	// Handle "next <weekday>", "this <weekday>"
	for _, prefix := range []string{"next ", "this "} {
		if strings.HasPrefix(relative, prefix) {
			return p.parseNextWeekday(strings.TrimPrefix(relative, prefix), baseTime)
		}
	}

	// Handle a bare "<weekday>"
	if _, ok := weekdays[relative]; ok {
		return p.parseNextWeekday(relative, baseTime)
	}

	// Fallback: treat unknown as today
	return p.startOfDay(baseTime), nil
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

var inDurationPattern = regexp.MustCompile(`in (\d+) (day|days|week|weeks|month|months)`)

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationPattern.FindStringSubmatch(relative)
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

// parseNextWeekday resolves a weekday name to its next occurrence after baseTime.
func (p *Parser) parseNextWeekday(dayName string, baseTime time.Time) (time.Time, error) {
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

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// Today returns the calendar date of now in the parser's timezone as YYYY-MM-DD.
func (p *Parser) Today(now time.Time) string {
	return p.startOfDay(now).Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string as midnight in the parser's timezone.
func (p *Parser) ParseDate(date string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, date, p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t, nil
}

// WeekBounds returns the Monday and Sunday (YYYY-MM-DD) of the week containing now.
func (p *Parser) WeekBounds(now time.Time) (string, string) {
	start := p.startOfDay(now)
	offset := (int(start.Weekday()) + 6) % 7
	monday := start.AddDate(0, 0, -offset)
	return monday.Format(DateLayout), monday.AddDate(0, 0, 6).Format(DateLayout)
}

package chatbot

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrUnrecognizedDate is returned when a deadline phrase matches none of
// the recognized forms. Callers turn it into a format-hint reply; it is
// never surfaced as a raw error.
var ErrUnrecognizedDate = errors.New("unrecognized date phrase")

var (
	nextDayRe = regexp.MustCompile(`^next (monday|tuesday|wednesday|thursday|friday|saturday|sunday)$`)
	inDaysRe  = regexp.MustCompile(`^in (\d+) days?$`)
)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseNaturalDate resolves a human-friendly date phrase relative to now.
// Recognized forms, first match wins: "today", "tomorrow", "next week",
// "next <weekday>", "in N days", ISO 2006-01-02, then 1/2/2006.
//
// "next <weekday>" lands 7-13 days out: the offset to the named weekday
// within the current week plus a full extra week, even when that weekday
// is still ahead this week. Kept as observed behavior.
func ParseNaturalDate(raw string, now time.Time) (time.Time, error) {
	phrase := strings.ToLower(strings.TrimSpace(raw))

	switch phrase {
	case "today":
		return now, nil
	case "tomorrow":
		return now.AddDate(0, 0, 1), nil
	case "next week":
		return now.AddDate(0, 0, 7), nil
	}

	if m := nextDayRe.FindStringSubmatch(phrase); m != nil {
		target := weekdays[m[1]]
		until := (int(target) - int(now.Weekday()) + 7) % 7
		return now.AddDate(0, 0, until+7), nil
	}

	if m := inDaysRe.FindStringSubmatch(phrase); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, ErrUnrecognizedDate
		}
		return now.AddDate(0, 0, n), nil
	}

	raw = strings.TrimSpace(raw)
	if t, err := time.ParseInLocation("2006-01-02", raw, now.Location()); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("1/2/2006", raw, now.Location()); err == nil {
		return t, nil
	}

	return time.Time{}, ErrUnrecognizedDate
}

// Package eventdate renders invitation and wish timestamps in the couple's
// local time zone.
package eventdate

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"
)

// Layout selects the rendering style.
type Layout string

const (
	// Full renders "Monday, January 1, 2024".
	Full Layout = "full"
	// Short renders "January 1, 2024".
	Short Layout = "short"
	// Time renders 24-hour "15:04".
	Time Layout = "time"
)

// ErrUnparsable is returned when the input is not a recognised timestamp.
var ErrUnparsable = errors.New("eventdate: unparsable timestamp")

// Jakarta is the zone all event dates are shown in.
var Jakarta = loadJakarta()

func loadJakarta() *time.Location {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		return time.FixedZone("WIB", 7*60*60)
	}
	return loc
}

// Inputs without an offset are read as UTC.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Parse reads an RFC 3339 timestamp or one of the naive forms the API emits.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrUnparsable
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparsable, s)
}

// Format parses s and renders it with layout in the Jakarta zone. An unknown
// layout falls back to Full.
func Format(s string, layout Layout) (string, error) {
	t, err := Parse(s)
	if err != nil {
		return "", err
	}
	return FormatTime(t, layout), nil
}

// FormatTime renders t with layout in the Jakarta zone.
func FormatTime(t time.Time, layout Layout) string {
	t = t.In(Jakarta)
	switch layout {
	case Short:
		return t.Format("January 2, 2006")
	case Time:
		return t.Format("15:04")
	default:
		return t.Format("Monday, January 2, 2006")
	}
}

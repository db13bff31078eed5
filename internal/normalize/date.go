package normalize

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DateFormat is the canonical output layout.
const DateFormat = "2006-01-02"

// nativeLayouts are unambiguous layouts tried before the day/month heuristic.
// Slash or dash dates that start with the day are left to the heuristic so
// they are never read month-first.
var nativeLayouts = []string{
	DateFormat,
	"2006/01/02",
	"2006-1-2",
	"2006/1/2",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02 15:04:05",
	"2 Jan 2006",
	"02 Jan 2006",
	"2 January 2006",
	"02-Jan-2006",
	"2-Jan-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"Mon, 02 Jan 2006",
	"20060102",
}

var dateSeparator = regexp.MustCompile(`[/\-]`)

// ParseDate converts a statement date cell to YYYY-MM-DD. Known layouts are
// tried first; otherwise the cell is split on '/' or '-' into three parts and
// read as YYYY-MM-DD when the first part has four digits, else DD-MM-YYYY.
func ParseDate(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("empty date")
	}

	for _, layout := range nativeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DateFormat), nil
		}
	}

	parts := dateSeparator.Split(s, -1)
	if len(parts) != 3 {
		return "", fmt.Errorf("parsing date %q: expected 3 parts, got %d", s, len(parts))
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	var year, month, day string
	if len(parts[0]) == 4 {
		year, month, day = parts[0], parts[1], parts[2]
	} else {
		day, month, year = parts[0], parts[1], parts[2]
	}

	candidate := fmt.Sprintf("%s-%s-%s", year, pad2(month), pad2(day))
	t, err := time.Parse(DateFormat, candidate)
	if err != nil {
		return "", fmt.Errorf("parsing date %q: %w", s, err)
	}
	return t.Format(DateFormat), nil
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

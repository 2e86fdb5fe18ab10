package report

import (
	"strconv"
	"strings"
	"time"
)

// standardLayouts are tried in order before falling back to the locale
// pattern. New feedback rows are written as RFC3339, but rows imported
// from the legacy portal arrive in several shapes.
var standardLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp normalizes a feedback timestamp string into an instant.
// It returns false instead of an error: a record whose timestamp cannot
// be read is excluded from date-windowed views, never fatal.
func ParseTimestamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	for _, layout := range standardLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}

	if strings.Contains(raw, "/") {
		return parseLocale(raw)
	}
	return time.Time{}, false
}

// parseLocale handles the "MM/DD/YY, HH:MM:SS AM/PM" shape produced by
// the legacy portal's locale formatter. The time part is optional.
func parseLocale(raw string) (time.Time, bool) {
	datePart := raw
	timePart := ""
	if idx := strings.Index(raw, ", "); idx >= 0 {
		datePart = raw[:idx]
		timePart = strings.TrimSpace(raw[idx+2:])
	}

	fields := strings.Split(strings.TrimSpace(datePart), "/")
	if len(fields) != 3 {
		return time.Time{}, false
	}
	month, err1 := strconv.Atoi(fields[0])
	day, err2 := strconv.Atoi(fields[1])
	year, err3 := strconv.Atoi(fields[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	if len(fields[2]) <= 2 {
		year += 2000
	}

	hour, minute, second := 0, 0, 0
	if timePart != "" {
		var ok bool
		hour, minute, second, ok = parseClock(timePart)
		if !ok {
			return time.Time{}, false
		}
	}

	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
	// time.Date normalizes out-of-range days (Feb 30 becomes Mar 2);
	// reject those instead of silently shifting the record.
	if t.Day() != day || t.Month() != time.Month(month) {
		return time.Time{}, false
	}
	return t, true
}

func parseClock(raw string) (hour, minute, second int, ok bool) {
	meridiem := ""
	upper := strings.ToUpper(raw)
	switch {
	case strings.HasSuffix(upper, "AM"):
		meridiem = "AM"
	case strings.HasSuffix(upper, "PM"):
		meridiem = "PM"
	}
	if meridiem != "" {
		raw = strings.TrimSpace(raw[:len(raw)-2])
	}

	fields := strings.Split(raw, ":")
	if len(fields) < 2 || len(fields) > 3 {
		return 0, 0, 0, false
	}
	var err error
	if hour, err = strconv.Atoi(strings.TrimSpace(fields[0])); err != nil {
		return 0, 0, 0, false
	}
	if minute, err = strconv.Atoi(strings.TrimSpace(fields[1])); err != nil {
		return 0, 0, 0, false
	}
	if len(fields) == 3 {
		if second, err = strconv.Atoi(strings.TrimSpace(fields[2])); err != nil {
			return 0, 0, 0, false
		}
	}
	if minute < 0 || minute > 59 || second < 0 || second > 59 {
		return 0, 0, 0, false
	}

	switch meridiem {
	case "AM":
		if hour < 1 || hour > 12 {
			return 0, 0, 0, false
		}
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour < 1 || hour > 12 {
			return 0, 0, 0, false
		}
		if hour != 12 {
			hour += 12
		}
	default:
		if hour < 0 || hour > 23 {
			return 0, 0, 0, false
		}
	}
	return hour, minute, second, true
}

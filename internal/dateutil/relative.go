package dateutil

import (
	"strconv"
	"strings"
	"time"
)

// weekdayMap maps weekday names and their short forms to time.Weekday.
var weekdayMap = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"sun":       time.Sunday,
	"monday":    time.Monday,
	"mon":       time.Monday,
	"tuesday":   time.Tuesday,
	"tue":       time.Tuesday,
	"wednesday": time.Wednesday,
	"wed":       time.Wednesday,
	"thursday":  time.Thursday,
	"thu":       time.Thursday,
	"friday":    time.Friday,
	"fri":       time.Friday,
	"saturday":  time.Saturday,
	"sat":       time.Saturday,
}

// ExpandShortcut resolves relative-date shortcuts against relativeTo:
//
//   - "t", "today": relativeTo
//   - "tomorrow": relativeTo + 1 day
//   - "+Nd": relativeTo + N days
//   - weekday names ("monday", "mon", ...): the next occurrence,
//     always strictly in the future
//
// The second return is false when the input is not a shortcut; callers
// should then parse it as a literal date. Matching is case-insensitive.
func ExpandShortcut(s string, relativeTo time.Time) (time.Time, bool) {
	today := Truncate(relativeTo)
	input := strings.ToLower(strings.TrimSpace(s))

	switch input {
	case "t", "today":
		return today, true
	case "tomorrow":
		return today.AddDate(0, 0, 1), true
	}

	if strings.HasPrefix(input, "+") && strings.HasSuffix(input, "d") {
		n, err := strconv.Atoi(input[1 : len(input)-1])
		if err == nil && n >= 0 {
			return today.AddDate(0, 0, n), true
		}
		return time.Time{}, false
	}

	if wd, ok := weekdayMap[input]; ok {
		days := (int(wd) - int(today.Weekday()) + 7) % 7
		if days == 0 {
			days = 7
		}
		return today.AddDate(0, 0, days), true
	}

	return time.Time{}, false
}

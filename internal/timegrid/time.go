// Package timegrid builds the daily grid of teaching blocks and breaks
// from a level configuration.
package timegrid

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeToMinutes converts "HH:MM" to minutes since midnight.
// Malformed input yields 0 for the unparsable part; callers pass validated strings.
func TimeToMinutes(t string) int {
	h, m, _ := strings.Cut(strings.TrimSpace(t), ":")
	hours, _ := strconv.Atoi(h)
	mins, _ := strconv.Atoi(m)
	return hours*60 + mins
}

// MinutesToTime converts minutes since midnight to "HH:MM".
// Values past 23:59 are not wrapped.
func MinutesToTime(m int) string {
	if m < 0 {
		m = 0
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// CalculateDuration returns end minus start in minutes. Negative when end is before start.
func CalculateDuration(start, end string) int {
	return TimeToMinutes(end) - TimeToMinutes(start)
}

// TimesOverlap reports whether [start1, end1) and [start2, end2) intersect.
func TimesOverlap(start1, end1, start2, end2 string) bool {
	s1 := TimeToMinutes(start1)
	e1 := TimeToMinutes(end1)
	s2 := TimeToMinutes(start2)
	e2 := TimeToMinutes(end2)

	return s1 < e2 && e1 > s2
}

// ParseClock strictly parses a 24h "HH:MM" value into minutes since midnight.
func ParseClock(t string) (int, error) {
	if len(t) != 5 || t[2] != ':' {
		return 0, fmt.Errorf("%q is not in HH:MM format", t)
	}

	hours, err := strconv.Atoi(t[:2])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("%q has an invalid hour", t)
	}

	mins, err := strconv.Atoi(t[3:])
	if err != nil || mins < 0 || mins > 59 {
		return 0, fmt.Errorf("%q has an invalid minute", t)
	}

	return hours*60 + mins, nil
}

package lighting

import (
	"errors"
	"fmt"
	gomath "math"
	"strconv"
	"strings"
)

// ErrInvalidTime is returned by ParseTime for anything other than "HH:MM".
var ErrInvalidTime = errors.New("invalid time of day")

const minutesPerDay = 24 * 60

// FormatTime renders an hour value as "HH:MM", rounded to the nearest minute.
func FormatTime(hour float64) string {
	minutes := int(gomath.Round(NormalizeHour(hour)*60)) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseTime parses "HH:MM" (24-hour clock) into fractional hours.
func ParseTime(s string) (float64, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("%w: hour in %q", ErrInvalidTime, s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 || len(mm) != 2 {
		return 0, fmt.Errorf("%w: minute in %q", ErrInvalidTime, s)
	}
	return float64(h) + float64(m)/60, nil
}

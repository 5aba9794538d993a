// Package reporting holds the pure aggregation logic behind the analytics
// endpoints: reporting windows and summary computation over raw bill/order
// rows. Everything here is side-effect free and unit tested in isolation.
package reporting

import (
	"fmt"
	"strings"
	"time"
)

// cutoverHour is when one business day rolls into the next. Late-night
// service means a 01:00 sale belongs to the previous day's report, so the
// day runs noon to noon instead of midnight to midnight.
const cutoverHour = 12

// BusinessDayWindow returns the [from, to) reporting window containing now:
// [today 12:00, tomorrow 12:00) once past noon, else
// [yesterday 12:00, today 12:00).
func BusinessDayWindow(now time.Time) (from, to time.Time) {
	noon := time.Date(now.Year(), now.Month(), now.Day(), cutoverHour, 0, 0, 0, now.Location())
	if now.Before(noon) {
		noon = noon.AddDate(0, 0, -1)
	}
	return noon, noon.AddDate(0, 0, 1)
}

// MonthWindow returns the [from, to) window covering one calendar month.
func MonthWindow(month time.Month, year int, loc *time.Location) (from, to time.Time) {
	from = time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return from, from.AddDate(0, 1, 0)
}

// YearWindow returns the [from, to) window covering one calendar year.
func YearWindow(year int, loc *time.Location) (from, to time.Time) {
	from = time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	return from, from.AddDate(1, 0, 0)
}

// ParseMonth resolves a full English month name ("March", case-insensitive)
// to its time.Month.
func ParseMonth(name string) (time.Month, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "" {
		return 0, fmt.Errorf("month name is empty")
	}
	s = strings.ToUpper(s[:1]) + s[1:]
	t, err := time.Parse("January", s)
	if err != nil {
		return 0, fmt.Errorf("unknown month %q", name)
	}
	return t.Month(), nil
}

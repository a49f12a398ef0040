// Package timecalc provides the pure duration, week and rollup arithmetic
// used by timesheet generation. All functions are stateless.
package timecalc

import (
	"fmt"
	"math"
	"time"

	"backoffice/internal/domain"
)

// Minutes returns the rounded number of minutes between start and end.
// Callers guarantee end >= start for meaningful results; negative or zero
// results pass through unmodified.
func Minutes(start, end time.Time) int {
	return int(math.Round(end.Sub(start).Minutes()))
}

// FormatMinutes formats a minute count as "HH:MM", zero-padded.
// Negative input is not a supported value.
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// WeekStart returns the Monday of the week containing t, at midnight in t's
// location. A Sunday counts as the last day of the week ending on it, so it
// maps to the preceding Monday.
func WeekStart(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	monday := t.AddDate(0, 0, -(wd - 1))
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, t.Location())
}

// WeekEnd returns the Sunday of the week containing t, at midnight in t's
// location. Always WeekStart plus six days.
func WeekEnd(t time.Time) time.Time {
	return WeekStart(t).AddDate(0, 0, 6)
}

// WeekStartDate returns the Monday of the week containing t as YYYY-MM-DD.
func WeekStartDate(t time.Time) string {
	return WeekStart(t).Format("2006-01-02")
}

// WeekEndDate returns the Sunday of the week containing t as YYYY-MM-DD.
func WeekEndDate(t time.Time) string {
	return WeekEnd(t).Format("2006-01-02")
}

// entryMinutes returns the minutes an entry contributes to a rollup. An
// explicit duration wins; otherwise the span between start and end is used
// when both are present; otherwise the entry contributes nothing.
func entryMinutes(entry domain.TimeEntry) int {
	if entry.DurationMinutes != nil {
		return *entry.DurationMinutes
	}
	if !entry.StartTime.IsZero() && entry.EndTime != nil {
		return Minutes(entry.StartTime, *entry.EndTime)
	}
	return 0
}

// TotalHours sums the hours across all entries. The result is not
// pre-rounded; rounding to two decimals happens where a timesheet is
// constructed, via RoundHours.
func TotalHours(entries []domain.TimeEntry) float64 {
	totalMinutes := 0
	for _, entry := range entries {
		totalMinutes += entryMinutes(entry)
	}
	return float64(totalMinutes) / 60
}

// BillableHours sums the hours across billable entries only.
func BillableHours(entries []domain.TimeEntry) float64 {
	billable := make([]domain.TimeEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Billable {
			billable = append(billable, entry)
		}
	}
	return TotalHours(billable)
}

// RoundHours rounds an hour total to two decimal places.
func RoundHours(hours float64) float64 {
	return math.Round(hours*100) / 100
}

// Package report is the reporting core: pure, single-pass
// computations over an event snapshot. Nothing here mutates its
// input, performs I/O, or depends on anything but the snapshot and an
// explicit clock value.
package report

import (
	"time"

	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/domain/event"
)

// Window selects the calendar period a snapshot is filtered to.
type Window string

const (
	WindowAll     Window = "ALL"
	WindowWeekly  Window = "WEEKLY"
	WindowMonthly Window = "MONTHLY"
	WindowYearly  Window = "YEARLY"
)

// WindowFromString maps a selector string to a Window. Unrecognized
// selectors behave as ALL (fail-open).
func WindowFromString(s string) Window {
	switch Window(s) {
	case WindowWeekly, WindowMonthly, WindowYearly:
		return Window(s)
	default:
		return WindowAll
	}
}

// FilterWindow returns the events whose start date falls inside the
// calendar window anchored at now. Boundaries are closed: the first
// and last day of the period are both included. Weeks start on
// Sunday. Membership is decided by civil date, so the locations of
// the event dates and of the clock never shift a boundary.
func FilterWindow(events []event.Event, w Window, now time.Time) []event.Event {
	if w == WindowAll {
		return events
	}

	first, last := windowBounds(w, now)
	out := make([]event.Event, 0, len(events))
	for _, e := range events {
		d := dayOf(e.Date)
		if !d.Before(first) && !d.After(last) {
			out = append(out, e)
		}
	}
	return out
}

// FilterDistrict returns the events belonging to the given district,
// or the input unchanged when district is empty.
func FilterDistrict(events []event.Event, district string) []event.Event {
	if district == "" {
		return events
	}
	out := make([]event.Event, 0, len(events))
	for _, e := range events {
		if e.District == district {
			out = append(out, e)
		}
	}
	return out
}

// windowBounds returns the first and last day of the period, both
// truncated to day granularity.
func windowBounds(w Window, now time.Time) (time.Time, time.Time) {
	today := dayOf(now)
	switch w {
	case WindowWeekly:
		first := today.AddDate(0, 0, -int(today.Weekday()))
		return first, first.AddDate(0, 0, 6)
	case WindowMonthly:
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return first, first.AddDate(0, 1, -1)
	case WindowYearly:
		first := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location())
		return first, time.Date(today.Year(), time.December, 31, 0, 0, 0, 0, today.Location())
	default:
		return time.Time{}, time.Time{}
	}
}

// dayOf reduces t to its civil calendar date, anchored in UTC so that
// dates taken from differently-located values compare correctly.
func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

package report

import (
	"time"

	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/domain/event"
)

// Overdue selects UPCOMING events whose start date lies strictly
// before the start of the current calendar day. They are surfaced as
// pending review; a human must transition them to COMPLETED or
// CANCELLED, the system never does so automatically.
func Overdue(events []event.Event, now time.Time) []event.Event {
	today := dayOf(now)
	out := make([]event.Event, 0)
	for _, e := range events {
		if e.Status == event.StatusUpcoming && dayOf(e.Date).Before(today) {
			out = append(out, e)
		}
	}
	return out
}

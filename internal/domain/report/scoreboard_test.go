package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/domain/event"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(y int, m time.Month, d int) *time.Time {
	t := day(y, m, d)
	return &t
}

func completed(district, seminarType string, date time.Time, endDate *time.Time) event.Event {
	return event.Event{
		District: district,
		Type:     seminarType,
		Date:     date,
		EndDate:  endDate,
		Status:   event.StatusCompleted,
	}
}

func TestScoreboard_TypeAndDurationBuckets(t *testing.T) {
	events := []event.Event{
		completed("Galle", event.TypePaper, day(2024, 11, 20), nil),
		completed("Galle", event.TypeRemedial, day(2024, 12, 1), dayPtr(2024, 12, 2)),
	}

	rows := Scoreboard(events)
	require.Len(t, rows, 1)

	galle := rows[0]
	assert.Equal(t, "Galle", galle.District)
	assert.Equal(t, 1, galle.PaperCount)
	assert.Equal(t, 1, galle.RemedialCount)
	assert.Equal(t, 1, galle.OneDayCount)
	assert.Equal(t, 1, galle.TwoDayCount)
	assert.Equal(t, 0, galle.ThreeDayPlusCount)
	assert.Equal(t, 2, galle.TotalCount)
}

func TestScoreboard_IgnoresNonCompletedEvents(t *testing.T) {
	events := []event.Event{
		{District: "Kandy", Type: event.TypePaper, Date: day(2024, 11, 20), Status: event.StatusUpcoming},
		{District: "Kandy", Type: event.TypePaper, Date: day(2024, 11, 21), Status: event.StatusCancelled},
	}

	rows := Scoreboard(events)
	assert.Empty(t, rows, "districts without completed events produce no row")
}

func TestScoreboard_UnknownTypeGoesToOtherBucket(t *testing.T) {
	events := []event.Event{
		completed("Matara", "Workshop", day(2024, 11, 20), nil),
	}

	rows := Scoreboard(events)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, 0, row.PaperCount)
	assert.Equal(t, 0, row.RemedialCount)
	assert.Equal(t, 1, row.OtherTypeCount)
	assert.Equal(t, 1, row.TotalCount)
}

func TestScoreboard_InconsistentEndDateGoesToOtherDurationBucket(t *testing.T) {
	// End date before start: non-positive duration.
	events := []event.Event{
		completed("Badulla", event.TypePaper, day(2024, 11, 20), dayPtr(2024, 11, 18)),
	}

	rows := Scoreboard(events)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, 0, row.OneDayCount)
	assert.Equal(t, 0, row.TwoDayCount)
	assert.Equal(t, 0, row.ThreeDayPlusCount)
	assert.Equal(t, 1, row.OtherDurationCount)
	assert.Equal(t, 1, row.TotalCount)
}

func TestScoreboard_BucketSumsReconcileWithTotal(t *testing.T) {
	events := []event.Event{
		completed("Galle", event.TypePaper, day(2024, 11, 20), nil),
		completed("Galle", "Workshop", day(2024, 11, 21), dayPtr(2024, 11, 19)),
		completed("Galle", event.TypeRemedial, day(2024, 11, 22), dayPtr(2024, 11, 25)),
	}

	rows := Scoreboard(events)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, row.TotalCount, row.PaperCount+row.RemedialCount+row.OtherTypeCount)
	assert.Equal(t, row.TotalCount, row.OneDayCount+row.TwoDayCount+row.ThreeDayPlusCount+row.OtherDurationCount)
}

func TestScoreboard_SortsByTotalDescending(t *testing.T) {
	events := []event.Event{
		completed("Jaffna", event.TypePaper, day(2024, 10, 1), nil),
		completed("Colombo", event.TypePaper, day(2024, 10, 2), nil),
		completed("Colombo", event.TypeRemedial, day(2024, 10, 3), nil),
	}

	rows := Scoreboard(events)
	require.Len(t, rows, 2)
	assert.Equal(t, "Colombo", rows[0].District)
	assert.Equal(t, "Jaffna", rows[1].District)
}

func TestScoreboard_TieKeepsFirstEncounteredOrder(t *testing.T) {
	events := []event.Event{
		completed("Jaffna", event.TypePaper, day(2024, 10, 1), nil),
		completed("Colombo", event.TypePaper, day(2024, 10, 2), nil),
	}

	rows := Scoreboard(events)
	require.Len(t, rows, 2)
	assert.Equal(t, "Jaffna", rows[0].District)
	assert.Equal(t, "Colombo", rows[1].District)
}

func TestScoreboard_IsIdempotentAndDoesNotMutateInput(t *testing.T) {
	events := []event.Event{
		completed("Galle", event.TypePaper, day(2024, 11, 20), nil),
		{District: "Kandy", Type: event.TypePaper, Date: day(2024, 11, 21), Status: event.StatusUpcoming},
	}

	first := Scoreboard(events)
	second := Scoreboard(events)

	assert.Equal(t, first, second)
	assert.Equal(t, event.StatusUpcoming, events[1].Status)
	assert.Equal(t, "Galle", events[0].District)
}

func TestScoreboard_EmptySnapshot(t *testing.T) {
	assert.Empty(t, Scoreboard(nil))
	assert.Empty(t, Scoreboard([]event.Event{}))
}

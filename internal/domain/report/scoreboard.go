package report

import (
	"sort"

	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/domain/event"
)

// Row is one district's scoreboard line, derived freshly on every
// query. The Other buckets absorb unknown seminar types and
// inconsistent durations, so within each dimension the bucket counts
// always sum exactly to TotalCount.
type Row struct {
	District           string `json:"district"`
	PaperCount         int    `json:"paperCount"`
	RemedialCount      int    `json:"remedialCount"`
	OtherTypeCount     int    `json:"otherTypeCount"`
	OneDayCount        int    `json:"oneDayCount"`
	TwoDayCount        int    `json:"twoDayCount"`
	ThreeDayPlusCount  int    `json:"threeDayPlusCount"`
	OtherDurationCount int    `json:"otherDurationCount"`
	TotalCount         int    `json:"totalCount"`
}

// Scoreboard groups the COMPLETED events of the snapshot by district
// and counts them by seminar type and duration bucket. Districts with
// no completed event produce no row. Rows are ordered by total
// descending, ties kept in first-encountered order.
func Scoreboard(events []event.Event) []Row {
	byDistrict := make(map[string]*Row)
	var order []string

	for i := range events {
		e := &events[i]
		if e.Status != event.StatusCompleted {
			continue
		}

		row, ok := byDistrict[e.District]
		if !ok {
			row = &Row{District: e.District}
			byDistrict[e.District] = row
			order = append(order, e.District)
		}

		switch e.Type {
		case event.TypePaper:
			row.PaperCount++
		case event.TypeRemedial:
			row.RemedialCount++
		default:
			row.OtherTypeCount++
		}

		switch d := e.DurationDays(); {
		case d == 1:
			row.OneDayCount++
		case d == 2:
			row.TwoDayCount++
		case d >= 3:
			row.ThreeDayPlusCount++
		default:
			row.OtherDurationCount++
		}

		row.TotalCount++
	}

	rows := make([]Row, 0, len(order))
	for _, name := range order {
		rows = append(rows, *byDistrict[name])
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalCount > rows[j].TotalCount
	})
	return rows
}

package report

import (
	"sort"

	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/domain/event"
)

// DistrictCount feeds the per-district completed-seminar chart.
type DistrictCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Headline is the dashboard's hero-stat block. Volunteer counts are
// participations, not distinct people: a volunteer assigned to three
// seminars counts three times. Recent and upcoming lists keep the
// snapshot's existing order.
type Headline struct {
	CompletedCount              int             `json:"completedCount"`
	UpcomingCount               int             `json:"upcomingCount"`
	DistrictCount               int             `json:"districtCount"`
	SchoolCount                 int             `json:"schoolCount"`
	VolunteerParticipationCount int             `json:"volunteerParticipationCount"`
	RecentEvents                []event.Event   `json:"recentEvents"`
	UpcomingEvents              []event.Event   `json:"upcomingEvents"`
	DistrictList                []string        `json:"districtList"`
	SchoolList                  []string        `json:"schoolList"`
	ChartData                   []DistrictCount `json:"chartData"`
}

// Headlines computes the dashboard statistics for a (possibly
// filtered) snapshot in a single pass.
func Headlines(events []event.Event) Headline {
	h := Headline{
		RecentEvents:   []event.Event{},
		UpcomingEvents: []event.Event{},
		ChartData:      []DistrictCount{},
	}

	districts := make(map[string]struct{})
	schools := make(map[string]struct{})
	chartIndex := make(map[string]int)

	for _, e := range events {
		switch e.Status {
		case event.StatusCompleted:
			h.CompletedCount++
			h.VolunteerParticipationCount += len(e.Volunteers)
			districts[e.District] = struct{}{}
			schools[e.Location] = struct{}{}
			if len(h.RecentEvents) < 3 {
				h.RecentEvents = append(h.RecentEvents, e)
			}
			if idx, ok := chartIndex[e.District]; ok {
				h.ChartData[idx].Value++
			} else {
				chartIndex[e.District] = len(h.ChartData)
				h.ChartData = append(h.ChartData, DistrictCount{Name: e.District, Value: 1})
			}
		case event.StatusUpcoming:
			h.UpcomingCount++
			if len(h.UpcomingEvents) < 3 {
				h.UpcomingEvents = append(h.UpcomingEvents, e)
			}
		}
	}

	h.DistrictCount = len(districts)
	h.SchoolCount = len(schools)
	h.DistrictList = sortedKeys(districts)
	h.SchoolList = sortedKeys(schools)
	return h
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

package event

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDurationDays(t *testing.T) {
	start := day(2024, 12, 1)

	noEnd := Event{Date: start}
	assert.Equal(t, 1, noEnd.DurationDays())

	sameDay := day(2024, 12, 1)
	assert.Equal(t, 1, (&Event{Date: start, EndDate: &sameDay}).DurationDays())

	nextDay := day(2024, 12, 2)
	assert.Equal(t, 2, (&Event{Date: start, EndDate: &nextDay}).DurationDays())

	threeDays := day(2024, 12, 3)
	assert.Equal(t, 3, (&Event{Date: start, EndDate: &threeDays}).DurationDays())

	// Inconsistent end date yields a non-positive span.
	before := day(2024, 11, 29)
	assert.Equal(t, -1, (&Event{Date: start, EndDate: &before}).DurationDays())
}

func TestDurationDaysIgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2024, 12, 1, 22, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 2, 1, 0, 0, 0, time.UTC)

	e := Event{Date: start, EndDate: &end}
	assert.Equal(t, 2, e.DurationDays())
}

func TestDurationDaysIgnoresTimeZoneOffsets(t *testing.T) {
	// The span is counted in civil dates: a Dec 1 start in UTC and a
	// Dec 2 end submitted with a +05:30 offset still cover two days,
	// even though the instants are less than 24 hours apart.
	colombo := time.FixedZone("UTC+5:30", 5*3600+1800)
	start := day(2024, 12, 1)
	end := time.Date(2024, 12, 2, 0, 0, 0, 0, colombo)

	e := Event{Date: start, EndDate: &end}
	assert.Equal(t, 2, e.DurationDays())
}

func TestStatusCodec(t *testing.T) {
	for _, s := range []Status{StatusUpcoming, StatusCompleted, StatusCancelled} {
		data, err := json.Marshal(s)
		require.NoError(t, err)

		var decoded Status
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, s, decoded)
	}

	var s Status
	assert.Error(t, json.Unmarshal([]byte(`"ARCHIVED"`), &s))

	parsed, ok := StatusFromString("COMPLETED")
	assert.True(t, ok)
	assert.Equal(t, StatusCompleted, parsed)

	_, ok = StatusFromString("completed")
	assert.False(t, ok)
}

func TestStatusScanValue(t *testing.T) {
	var s Status
	require.NoError(t, s.Scan("CANCELLED"))
	assert.Equal(t, StatusCancelled, s)

	require.NoError(t, s.Scan([]byte("UPCOMING")))
	assert.Equal(t, StatusUpcoming, s)

	assert.Error(t, s.Scan("bogus"))
	assert.Error(t, s.Scan(42))

	v, err := StatusCompleted.Value()
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", v)
}

func TestEventValidate(t *testing.T) {
	valid := Event{
		Title:    "Ganitha Sawiya - Galle",
		Date:     day(2024, 11, 20),
		Type:     TypePaper,
		Location: "Mahinda College",
		District: "Galle",
		Status:   StatusCompleted,
	}
	assert.NoError(t, valid.Validate())

	missingTitle := valid
	missingTitle.Title = ""
	assert.Error(t, missingTitle.Validate())

	badDistrict := valid
	badDistrict.District = "Atlantis"
	assert.Error(t, badDistrict.Validate())

	endBeforeStart := valid
	before := day(2024, 11, 18)
	endBeforeStart.EndDate = &before
	assert.Error(t, endBeforeStart.Validate())

	namelessVolunteer := valid
	namelessVolunteer.Volunteers = []Volunteer{{Role: RoleLecturer}}
	assert.Error(t, namelessVolunteer.Validate())
}

func TestVolunteerNormalize(t *testing.T) {
	v := Volunteer{Name: "Kasun Perera"}
	v.Normalize()
	assert.Equal(t, RoleMember, v.Role)

	lecturer := Volunteer{Name: "Kasun Perera", Role: RoleLecturer}
	lecturer.Normalize()
	assert.Equal(t, RoleLecturer, lecturer.Role)
}

package subjects

import (
	"testing"

	"brightwood-schools/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEntry() models.ScheduleEntry {
	return models.ScheduleEntry{
		Day:       "Monday",
		StartTime: "08:00",
		EndTime:   "08:40",
		Room:      "R1",
		Slot:      "0",
		Grade:     "Grade 1",
		Section:   "A",
	}
}

func TestValidateEntriesAcceptsValidBatch(t *testing.T) {
	roomSlots := map[string]int{"R1": 3}

	status, resp := validateEntries([]models.ScheduleEntry{validEntry()}, roomSlots)

	assert.Equal(t, 0, status)
	assert.Nil(t, resp)
}

func TestValidateEntriesRejectsFirstBadEntry(t *testing.T) {
	roomSlots := map[string]int{"R1": 3}

	cases := []struct {
		name   string
		mutate func(*models.ScheduleEntry)
	}{
		{"bad day", func(e *models.ScheduleEntry) { e.Day = "Mon" }},
		{"missing grade", func(e *models.ScheduleEntry) { e.Grade = "" }},
		{"missing section", func(e *models.ScheduleEntry) { e.Section = "" }},
		{"missing room", func(e *models.ScheduleEntry) { e.Room = "" }},
		{"bad time", func(e *models.ScheduleEntry) { e.StartTime = "8am" }},
		{"unknown room", func(e *models.ScheduleEntry) { e.Room = "R9" }},
		{"missing slot", func(e *models.ScheduleEntry) { e.Slot = "" }},
		{"slot out of range", func(e *models.ScheduleEntry) { e.Slot = "3" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bad := validEntry()
			tc.mutate(&bad)
			// one bad entry rejects the batch even with valid entries around it
			batch := []models.ScheduleEntry{validEntry(), bad}
			batch[0].Slot = "1"

			status, resp := validateEntries(batch, roomSlots)

			assert.Equal(t, 400, status)
			require.NotNil(t, resp)
			assert.Contains(t, resp["error"], "Entry 2")
		})
	}
}

func TestValidateEntriesLegacyRoomWithoutSlots(t *testing.T) {
	roomSlots := map[string]int{"HALL": 0}

	unslotted := validEntry()
	unslotted.Room = "HALL"
	unslotted.Slot = ""
	status, resp := validateEntries([]models.ScheduleEntry{unslotted}, roomSlots)
	assert.Equal(t, 0, status)
	assert.Nil(t, resp)

	slotted := validEntry()
	slotted.Room = "HALL"
	status, resp = validateEntries([]models.ScheduleEntry{slotted}, roomSlots)
	assert.Equal(t, 400, status)
	require.NotNil(t, resp)
}

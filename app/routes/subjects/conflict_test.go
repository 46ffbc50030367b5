package subjects

import (
	"testing"

	"brightwood-schools/app/models"

	"github.com/stretchr/testify/require"
)

func entry(room, slot, day, teacherID string) models.ScheduleEntry {
	return models.ScheduleEntry{
		Day:       day,
		StartTime: "08:00",
		EndTime:   "09:00",
		Room:      room,
		Slot:      slot,
		Grade:     "Grade 1",
		Section:   "A",
		TeacherID: teacherID,
	}
}

func TestNormalizeSlot(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		slotted bool
	}{
		{"0", "0", true},
		{"1", "1", true},
		{"01", "1", true},
		{" 2 ", "2", true},
		{"", "", false},
		{"abc", "", false},
		{"-1", "", false},
	}

	for _, tt := range tests {
		got, ok := NormalizeSlot(tt.input)
		require.Equal(t, tt.slotted, ok, "input %q", tt.input)
		require.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestRoomConflict(t *testing.T) {
	others := []OwnedSchedule{
		{Label: "MATH1", Entries: []models.ScheduleEntry{entry("R1", "0", "Monday", "")}},
	}

	conflict := CheckConflict(entry("R1", "0", "Monday", ""), others)
	require.NotNil(t, conflict)
	require.Equal(t, "room", conflict.Kind)
	require.Equal(t, "MATH1", conflict.Subject)
	require.Equal(t, "R1", conflict.Room)
	require.Equal(t, "Monday", conflict.Day)

	// A different slot in the same room on the same day is free.
	require.Nil(t, CheckConflict(entry("R1", "1", "Monday", ""), others))
	// Same slot on a different day is free.
	require.Nil(t, CheckConflict(entry("R1", "0", "Tuesday", ""), others))
	// Non-canonical slot form still collides.
	require.NotNil(t, CheckConflict(entry("R1", "00", "Monday", ""), others))
}

func TestTeacherConflictIgnoresRoom(t *testing.T) {
	others := []OwnedSchedule{
		{Label: "SCI2", Entries: []models.ScheduleEntry{entry("R1", "2", "Tuesday", "T9")}},
	}

	conflict := CheckConflict(entry("R2", "2", "Tuesday", "T9"), others)
	require.NotNil(t, conflict)
	require.Equal(t, "teacher", conflict.Kind)
	require.Equal(t, "SCI2", conflict.Subject)
}

func TestDifferingRoomOrTeacherDoesNotConflict(t *testing.T) {
	others := []OwnedSchedule{
		{Label: "MATH1", Entries: []models.ScheduleEntry{entry("R1", "0", "Monday", "T1")}},
	}

	// Two entries differing only by room never produce a room conflict,
	// and with no proposed teacher the teacher pass never runs.
	require.Nil(t, CheckConflict(entry("R2", "0", "Monday", ""), others))

	// One teacher set, one absent: no teacher conflict.
	unstaffed := []OwnedSchedule{
		{Label: "MATH1", Entries: []models.ScheduleEntry{entry("R1", "0", "Monday", "")}},
	}
	require.Nil(t, CheckConflict(entry("R2", "0", "Monday", "T1"), unstaffed))
}

func TestUnslottedEntriesNeverConflict(t *testing.T) {
	others := []OwnedSchedule{
		{Label: "MATH1", Entries: []models.ScheduleEntry{entry("R1", "", "Monday", "T1")}},
	}

	// Legacy unslotted entries pass both directions.
	require.Nil(t, CheckConflict(entry("R1", "", "Monday", "T1"), others))
	require.Nil(t, CheckConflict(entry("R1", "0", "Monday", "T1"), others))
	// Non-numeric slot values always pass too.
	require.Nil(t, CheckConflict(entry("R1", "first", "Monday", "T1"), others))
}

// Checking an entry against a set of schedules must report the same conflict
// regardless of scan order, and only the first match even when several
// entries would conflict.
func TestFirstMatchOnlyAndOrderStability(t *testing.T) {
	b := OwnedSchedule{Label: "B", Entries: []models.ScheduleEntry{entry("R1", "0", "Monday", "T9")}}
	c := OwnedSchedule{Label: "C", Entries: []models.ScheduleEntry{entry("R1", "0", "Monday", "T9")}}

	first := CheckConflict(entry("R1", "0", "Monday", "T9"), []OwnedSchedule{b, c})
	require.NotNil(t, first)
	require.Equal(t, "room", first.Kind)

	swapped := CheckConflict(entry("R1", "0", "Monday", "T9"), []OwnedSchedule{c, b})
	require.NotNil(t, swapped)
	require.Equal(t, first.Kind, swapped.Kind)

	// First match only: the owner reported is the first schedule scanned,
	// never a list of every offender.
	require.Equal(t, "B", first.Subject)
	require.Equal(t, "C", swapped.Subject)
}

// The room pass runs to completion before the teacher pass: a room match in
// a later schedule outranks a teacher-only match in an earlier one.
func TestRoomPassPrecedesTeacherPass(t *testing.T) {
	teacherOnly := OwnedSchedule{Label: "T-ONLY", Entries: []models.ScheduleEntry{entry("R9", "0", "Monday", "T1")}}
	roomMatch := OwnedSchedule{Label: "ROOM", Entries: []models.ScheduleEntry{entry("R1", "0", "Monday", "")}}

	conflict := CheckConflict(entry("R1", "0", "Monday", "T1"), []OwnedSchedule{teacherOnly, roomMatch})
	require.NotNil(t, conflict)
	require.Equal(t, "room", conflict.Kind)
	require.Equal(t, "ROOM", conflict.Subject)
}

func TestCheckDraftConflicts(t *testing.T) {
	// Two drafts claiming the same room/slot/day collide before save.
	drafts := []models.ScheduleEntry{
		entry("R1", "0", "Monday", ""),
		entry("R1", "0", "Monday", ""),
	}
	conflict := CheckDraftConflicts(drafts, "NEW")
	require.NotNil(t, conflict)
	require.Equal(t, "room", conflict.Kind)
	require.Equal(t, "NEW", conflict.Subject)

	// Same slot on different days is a normal multi-day save.
	ok := []models.ScheduleEntry{
		entry("R1", "0", "Monday", "T1"),
		entry("R1", "0", "Tuesday", "T1"),
	}
	require.Nil(t, CheckDraftConflicts(ok, "NEW"))

	// Removing the offending draft frees the combination: checks are
	// computed fresh, nothing sticks.
	require.Nil(t, CheckDraftConflicts(drafts[:1], "NEW"))
}

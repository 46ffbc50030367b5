package subjects

import (
	"strconv"
	"strings"

	"brightwood-schools/app/models"
)

// Conflict describes one double-booking found while checking a proposed
// schedule entry. Kind distinguishes a room clash from a teacher clash since
// the fix differs: a room clash needs another room or slot, a teacher clash
// needs another teacher or time.
type Conflict struct {
	Kind    string `json:"kind"`
	Subject string `json:"subject"`
	Room    string `json:"room"`
	Slot    string `json:"slot"`
	Day     string `json:"day"`
}

// OwnedSchedule pairs a subject's display label with its persisted schedule
// entries, forming the read set a conflict check scans.
type OwnedSchedule struct {
	Label   string
	Entries []models.ScheduleEntry
}

// NormalizeSlot canonicalizes a slot reference to the decimal string of its
// non-negative integer index ("01" -> "1"). The second return is false for
// empty or non-numeric slots; such entries are unslotted (legacy
// single-window rooms) and never participate in slot conflicts.
func NormalizeSlot(slot string) (string, bool) {
	s := strings.TrimSpace(slot)
	if s == "" {
		return "", false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return "", false
	}
	return strconv.Itoa(n), true
}

// CheckConflict verifies that proposed does not claim a (room, slot, day)
// or (teacher, slot, day) combination already owned by another subject.
// The room pass runs first across every entry of every other subject; only
// if it finds nothing and a teacher is set does the teacher pass run, which
// ignores rooms entirely (a teacher cannot teach two rooms at once). The
// first match wins and is the only conflict reported. Day comparison is an
// exact match on the canonical capitalized day name. Results are computed
// fresh on every call; nothing is cached, so removing an entry immediately
// frees its combinations for reuse.
func CheckConflict(proposed models.ScheduleEntry, others []OwnedSchedule) *Conflict {
	slot, slotted := NormalizeSlot(proposed.Slot)
	if !slotted {
		return nil
	}

	if proposed.Room != "" {
		for _, owned := range others {
			for _, entry := range owned.Entries {
				otherSlot, ok := NormalizeSlot(entry.Slot)
				if !ok {
					continue
				}
				if entry.Room == proposed.Room && otherSlot == slot && entry.Day == proposed.Day {
					return &Conflict{
						Kind:    "room",
						Subject: owned.Label,
						Room:    proposed.Room,
						Slot:    slot,
						Day:     proposed.Day,
					}
				}
			}
		}
	}

	teacherID := strings.TrimSpace(proposed.TeacherID)
	if teacherID == "" {
		return nil
	}

	for _, owned := range others {
		for _, entry := range owned.Entries {
			otherSlot, ok := NormalizeSlot(entry.Slot)
			if !ok {
				continue
			}
			if strings.TrimSpace(entry.TeacherID) == teacherID && otherSlot == slot && entry.Day == proposed.Day {
				return &Conflict{
					Kind:    "teacher",
					Subject: owned.Label,
					Room:    entry.Room,
					Slot:    slot,
					Day:     proposed.Day,
				}
			}
		}
	}

	return nil
}

// CheckDraftConflicts runs the same comparison rules across the entries of a
// single save batch, so two drafts in one editing session cannot claim the
// same combination before either is persisted.
func CheckDraftConflicts(entries []models.ScheduleEntry, label string) *Conflict {
	for i := range entries {
		siblings := []OwnedSchedule{{Label: label, Entries: entries[:i]}}
		if conflict := CheckConflict(entries[i], siblings); conflict != nil {
			return conflict
		}
	}
	return nil
}

package models

import "time"

// ScheduleEntry is one atomic teaching slot belonging to a subject: one day,
// one time window, one room, one grade/section, optionally one teacher. The
// persisted schedule keeps one entry per day; multi-day merging happens at
// the client. Slot is the decimal-string index into the room's configured
// time slots; rooms without configured slots leave it empty (legacy
// single-window rooms).
type ScheduleEntry struct {
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Room      string `json:"room"`
	Slot      string `json:"slot"`
	Grade     string `json:"grade"`
	Section   string `json:"section"`
	TeacherID string `json:"teacher_id,omitempty"`
}

// Subject represents a taught subject and its full schedule. The schedule
// array is replaced wholesale on every save; there is no per-entry patching.
type Subject struct {
	ID        string          `json:"id"`
	Code      string          `json:"code"`
	Name      string          `json:"name" validate:"required"`
	Grade     string          `json:"grade"`
	Status    RecordStatus    `json:"status"`
	Schedule  []ScheduleEntry `json:"schedule"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Label returns the display label used when reporting this subject as the
// owner of a conflicting slot: the code when present, otherwise the name.
func (s *Subject) Label() string {
	if s.Code != "" {
		return s.Code
	}
	return s.Name
}

package models

import "time"

// AttendanceMark is one student's persisted mark inside an attendance
// document.
type AttendanceMark struct {
	StudentID string           `json:"student_id"`
	Status    AttendanceStatus `json:"status"`
	Remarks   string           `json:"remarks,omitempty"`
}

// AttendanceDocument holds all marks for one class on one date. At most one
// document exists per (class, date) pair; a second create for the same pair
// is reconciled into an update of the existing document.
type AttendanceDocument struct {
	ID        string           `json:"id"`
	ClassName string           `json:"class"`
	Date      string           `json:"date"`
	Students  []AttendanceMark `json:"students"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// RosterRow is one line of the attendance-taking roster handed to the
// client: the student plus their current UI status ("present", "absent",
// "late", "leave").
type RosterRow struct {
	StudentID   string `json:"student_id"`
	StudentCode string `json:"student_code"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	Remarks     string `json:"remarks,omitempty"`
}

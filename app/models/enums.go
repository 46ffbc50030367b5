package models

import "strings"

// AttendanceStatus defines the persisted status values for attendance marks.
type AttendanceStatus string

const (
	Present AttendanceStatus = "Present"
	Absent  AttendanceStatus = "Absent"
	Late    AttendanceStatus = "Late"
	Excused AttendanceStatus = "Excused"
)

// IsValidAttendanceStatus reports whether s is one of the persisted statuses.
func IsValidAttendanceStatus(s AttendanceStatus) bool {
	switch s {
	case Present, Absent, Late, Excused:
		return true
	}
	return false
}

// RecordStatus defines the active/inactive lifecycle of persisted records.
type RecordStatus string

const (
	StatusActive   RecordStatus = "Active"
	StatusInactive RecordStatus = "Inactive"
)

// DayOfWeek defines the canonical capitalized day names used by schedules.
type DayOfWeek string

const (
	Monday    DayOfWeek = "Monday"
	Tuesday   DayOfWeek = "Tuesday"
	Wednesday DayOfWeek = "Wednesday"
	Thursday  DayOfWeek = "Thursday"
	Friday    DayOfWeek = "Friday"
	Saturday  DayOfWeek = "Saturday"
	Sunday    DayOfWeek = "Sunday"
)

// NormalizeDay maps any casing of a day name to its canonical capitalized
// form. Unknown inputs are returned trimmed but otherwise untouched.
func NormalizeDay(day string) string {
	trimmed := strings.TrimSpace(day)
	if trimmed == "" {
		return ""
	}
	lower := strings.ToLower(trimmed)
	for _, d := range []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday} {
		if lower == strings.ToLower(string(d)) {
			return string(d)
		}
	}
	return trimmed
}

// IsValidDay reports whether day is a canonical capitalized day name.
func IsValidDay(day string) bool {
	switch DayOfWeek(day) {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

// Gender defines the possible gender values for a student.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)

// FeeStatus defines the lifecycle of a fee record.
type FeeStatus string

const (
	FeePending FeeStatus = "pending"
	FeePaid    FeeStatus = "paid"
	FeeOverdue FeeStatus = "overdue"
)

// ExamStatus defines the lifecycle of an exam.
type ExamStatus string

const (
	ExamScheduled ExamStatus = "scheduled"
	ExamCompleted ExamStatus = "completed"
	ExamCancelled ExamStatus = "cancelled"
)

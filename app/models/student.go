package models

import "time"

// Student represents an enrolled student. StudentID is the human-readable
// code (e.g. "S001"); ID is the store-assigned identifier. Lookups accept
// either key. ClassName is the free-text class label as entered at admission
// ("Grade 1 Section A", "Grade 1A", ...); grade/section matching against
// class records goes through the grades package rather than string equality.
type Student struct {
	ID            string       `json:"id"`
	StudentID     string       `json:"student_id"`
	FirstName     string       `json:"first_name" validate:"required"`
	LastName      string       `json:"last_name" validate:"required"`
	Gender        *Gender      `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	ClassName     string       `json:"class"`
	Status        RecordStatus `json:"status"`
	AdmissionDate *time.Time   `json:"admission_date,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

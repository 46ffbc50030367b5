package models

import "time"

// Teacher represents a teaching staff record. TeacherID is the human-readable
// code (e.g. "T001") accepted interchangeably with ID in lookups.
type Teacher struct {
	ID        string       `json:"id"`
	TeacherID string       `json:"teacher_id"`
	FirstName string       `json:"first_name" validate:"required"`
	LastName  string       `json:"last_name" validate:"required"`
	Email     string       `json:"email" validate:"omitempty,email"`
	Phone     string       `json:"phone"`
	Status    RecordStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

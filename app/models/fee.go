package models

import "time"

// Fee represents one fee charged to a student. FeeID is the human-readable
// code (e.g. "F001") accepted interchangeably with ID in lookups.
type Fee struct {
	ID        string     `json:"id"`
	FeeID     string     `json:"fee_id"`
	StudentID string     `json:"student_id" validate:"required"`
	Name      string     `json:"name" validate:"required"`
	Amount    int64      `json:"amount" validate:"gte=0"`
	DueDate   string     `json:"due_date"`
	PaidDate  *string    `json:"paid_date,omitempty"`
	Status    FeeStatus  `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

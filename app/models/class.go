package models

import "time"

// ClassSection represents one grade+section offering. Grade is derived from
// the free-text Name ("Grade N ..."); records whose name yields no grade are
// excluded from grade-based grouping. StudentCount is recomputed on every
// list request by matching student class labels and is never stored.
type ClassSection struct {
	ID           string       `json:"id"`
	Name         string       `json:"name" validate:"required"`
	Grade        string       `json:"grade"`
	Section      string       `json:"section"`
	Status       RecordStatus `json:"status"`
	Capacity     int          `json:"capacity" validate:"gte=0"`
	StudentCount int          `json:"current_students"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

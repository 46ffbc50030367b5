package models

import "time"

// Exam represents a scheduled examination. ExamID is the human-readable code
// (e.g. "E001") accepted interchangeably with ID in lookups.
type Exam struct {
	ID        string     `json:"id"`
	ExamID    string     `json:"exam_id"`
	Name      string     `json:"name" validate:"required"`
	Grade     string     `json:"grade"`
	SubjectID string     `json:"subject_id"`
	Date      string     `json:"date" validate:"required"`
	Status    ExamStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ExamResult is one student's marks for one exam.
type ExamResult struct {
	ID          string    `json:"id"`
	ExamID      string    `json:"exam_id"`
	StudentID   string    `json:"student_id"`
	Marks       float64   `json:"marks" validate:"gte=0"`
	GradeLetter string    `json:"grade_letter"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

package subjects

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"brightwood-schools/app/models"
)

func scanSubject(row interface {
	Scan(dest ...interface{}) error
}) (*models.Subject, error) {
	var subject models.Subject
	var scheduleJSON []byte

	err := row.Scan(
		&subject.ID, &subject.Code, &subject.Name, &subject.Grade,
		&subject.Status, &scheduleJSON, &subject.CreatedAt, &subject.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(scheduleJSON, &subject.Schedule); err != nil {
		return nil, fmt.Errorf("failed to decode schedule for subject %s: %v", subject.ID, err)
	}
	if subject.Schedule == nil {
		subject.Schedule = []models.ScheduleEntry{}
	}
	return &subject, nil
}

const subjectColumns = `id, code, name, grade, status, schedule, created_at, updated_at`

// GetAllSubjects returns every subject with its full schedule array. This is
// the read set every conflict check scans.
func GetAllSubjects(db *sql.DB) ([]*models.Subject, error) {
	query := `SELECT ` + subjectColumns + ` FROM subjects ORDER BY code`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subjects := make([]*models.Subject, 0)
	for rows.Next() {
		subject, err := scanSubject(rows)
		if err != nil {
			return nil, err
		}
		subjects = append(subjects, subject)
	}
	return subjects, rows.Err()
}

// GetSubjectByID retrieves a single subject by object ID.
func GetSubjectByID(db *sql.DB, id string) (*models.Subject, error) {
	query := `SELECT ` + subjectColumns + ` FROM subjects WHERE id = $1`
	return scanSubject(db.QueryRow(query, id))
}

// CreateSubject inserts a new subject with an empty schedule.
func CreateSubject(db *sql.DB, subject *models.Subject) error {
	subject.ID = models.NewObjectID()
	if subject.Schedule == nil {
		subject.Schedule = []models.ScheduleEntry{}
	}
	scheduleJSON, err := json.Marshal(subject.Schedule)
	if err != nil {
		return err
	}

	query := `INSERT INTO subjects (id, code, name, grade, status, schedule, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())`
	_, err = db.Exec(query, subject.ID, subject.Code, subject.Name, subject.Grade, subject.Status, scheduleJSON)
	if err != nil {
		return fmt.Errorf("failed to create subject: %v", err)
	}
	return nil
}

// UpdateSubject updates a subject's descriptive fields without touching the
// schedule array.
func UpdateSubject(db *sql.DB, subject *models.Subject) error {
	query := `UPDATE subjects SET name = $1, grade = $2, status = $3, updated_at = NOW() WHERE id = $4`
	result, err := db.Exec(query, subject.Name, subject.Grade, subject.Status, subject.ID)
	if err != nil {
		return fmt.Errorf("failed to update subject: %v", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ReplaceSubject writes the descriptive fields and the whole schedule array
// in one statement, so a save that carries both lands atomically. There is no
// per-entry patching; every save sends the full day-expanded array.
func ReplaceSubject(db *sql.DB, subject *models.Subject) error {
	if subject.Schedule == nil {
		subject.Schedule = []models.ScheduleEntry{}
	}
	scheduleJSON, err := json.Marshal(subject.Schedule)
	if err != nil {
		return err
	}

	query := `UPDATE subjects SET name = $1, grade = $2, status = $3, schedule = $4, updated_at = NOW() WHERE id = $5`
	result, err := db.Exec(query, subject.Name, subject.Grade, subject.Status, scheduleJSON, subject.ID)
	if err != nil {
		return fmt.Errorf("failed to replace subject: %v", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteSubject removes a subject and its schedule entirely.
func DeleteSubject(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM subjects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete subject: %v", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

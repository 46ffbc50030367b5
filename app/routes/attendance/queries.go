package attendance

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"brightwood-schools/app/models"

	"github.com/lib/pq"
)

const attendanceColumns = `id, class_name, to_char(date, 'YYYY-MM-DD'), students, created_at, updated_at`

func scanDocument(row interface {
	Scan(dest ...interface{}) error
}) (*models.AttendanceDocument, error) {
	var doc models.AttendanceDocument
	var studentsJSON []byte

	err := row.Scan(
		&doc.ID, &doc.ClassName, &doc.Date, &studentsJSON,
		&doc.CreatedAt, &doc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(studentsJSON, &doc.Students); err != nil {
		return nil, fmt.Errorf("failed to decode attendance marks for %s: %v", doc.ID, err)
	}
	if doc.Students == nil {
		doc.Students = []models.AttendanceMark{}
	}
	return &doc, nil
}

// GetAttendanceByClassAndDate returns the single attendance document for the
// (class, date) pair, or nil when none exists.
func GetAttendanceByClassAndDate(db *sql.DB, className string, date time.Time) (*models.AttendanceDocument, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE class_name = $1 AND date = $2`

	doc, err := scanDocument(db.QueryRow(query, className, date))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// GetAttendanceByID retrieves one attendance document by object ID.
func GetAttendanceByID(db *sql.DB, id string) (*models.AttendanceDocument, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE id = $1`
	return scanDocument(db.QueryRow(query, id))
}

// CreateAttendance inserts a new document. The UNIQUE (class_name, date)
// constraint turns a concurrent duplicate create into a unique violation the
// caller retries as an update.
func CreateAttendance(db *sql.DB, doc *models.AttendanceDocument, date time.Time) error {
	doc.ID = models.NewObjectID()
	studentsJSON, err := json.Marshal(doc.Students)
	if err != nil {
		return err
	}

	query := `INSERT INTO attendance (id, class_name, date, students, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, NOW(), NOW())`
	_, err = db.Exec(query, doc.ID, doc.ClassName, date, studentsJSON)
	return err
}

// UpdateAttendanceStudents replaces the marks array of an existing document.
// Class and date are immutable once the document exists; the update endpoint
// only ever carries marks.
func UpdateAttendanceStudents(db *sql.DB, id string, students []models.AttendanceMark) error {
	studentsJSON, err := json.Marshal(students)
	if err != nil {
		return err
	}

	result, err := db.Exec(`UPDATE attendance SET students = $1, updated_at = NOW() WHERE id = $2`, studentsJSON, id)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %v", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation (class 23505), the signal that another session created the
// document first.
func IsUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23505"
	}
	return false
}

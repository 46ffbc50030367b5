package database

import (
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is returned when neither key space yields a record.
var ErrNotFound = errors.New("record not found")

// resolveID looks a record up by its human-assigned custom ID first, then
// falls back to the store-assigned object ID. Users reference records by
// their readable codes ("S001") while internal relations carry object IDs;
// both key forms must stay accepted everywhere, so every by-ID operation
// funnels through here instead of repeating the two-step fallback inline.
func resolveID(db *sql.DB, table, customColumn, key string) (string, error) {
	if key == "" {
		return "", ErrNotFound
	}

	var id string
	query := fmt.Sprintf(`SELECT id FROM %s WHERE %s = $1`, table, customColumn)
	err := db.QueryRow(query, key).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return "", err
	}

	query = fmt.Sprintf(`SELECT id FROM %s WHERE id = $1`, table)
	err = db.QueryRow(query, key).Scan(&id)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

// ResolveStudentID resolves a student key ("S001" or object ID) to the
// student's object ID.
func ResolveStudentID(db *sql.DB, key string) (string, error) {
	return resolveID(db, "students", "student_id", key)
}

// ResolveTeacherID resolves a teacher key ("T001" or object ID).
func ResolveTeacherID(db *sql.DB, key string) (string, error) {
	return resolveID(db, "teachers", "teacher_id", key)
}

// ResolveSubjectID resolves a subject key (code or object ID).
func ResolveSubjectID(db *sql.DB, key string) (string, error) {
	return resolveID(db, "subjects", "code", key)
}

// ResolveClassID resolves a class key (full class name or object ID).
func ResolveClassID(db *sql.DB, key string) (string, error) {
	return resolveID(db, "classes", "name", key)
}

// ResolveExamID resolves an exam key ("E001" or object ID).
func ResolveExamID(db *sql.DB, key string) (string, error) {
	return resolveID(db, "exams", "exam_id", key)
}

// ResolveFeeID resolves a fee key ("F001" or object ID).
func ResolveFeeID(db *sql.DB, key string) (string, error) {
	return resolveID(db, "fees", "fee_id", key)
}

// NextCustomID returns the next sequential human-readable code for a table,
// e.g. prefix "S" and width 3 yields "S001", "S002", ... The count-based
// sequence matches how the portal has always assigned codes; gaps left by
// deletions are not reused unless the highest code was the one deleted.
func NextCustomID(db *sql.DB, table, customColumn, prefix string, width int) (string, error) {
	query := fmt.Sprintf(
		`SELECT COALESCE(MAX(NULLIF(regexp_replace(%s, '\D', '', 'g'), '')::int), 0) FROM %s`,
		customColumn, table,
	)

	var max int
	if err := db.QueryRow(query).Scan(&max); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%0*d", prefix, width, max+1), nil
}

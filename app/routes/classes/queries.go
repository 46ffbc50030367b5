package classes

import (
	"database/sql"
	"fmt"

	"brightwood-schools/app/models"
)

const classColumns = `id, name, grade, section, status, capacity, created_at, updated_at`

func scanClass(row interface {
	Scan(dest ...interface{}) error
}) (*models.ClassSection, error) {
	var cs models.ClassSection
	err := row.Scan(
		&cs.ID, &cs.Name, &cs.Grade, &cs.Section, &cs.Status,
		&cs.Capacity, &cs.CreatedAt, &cs.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &cs, nil
}

// GetAllClasses returns every class record. Ordering by grade number happens
// in the handler because grade labels sort textually ("Grade 10" before
// "Grade 2") at the SQL level.
func GetAllClasses(db *sql.DB) ([]*models.ClassSection, error) {
	query := `SELECT ` + classColumns + ` FROM classes ORDER BY name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	classes := []*models.ClassSection{}
	for rows.Next() {
		cs, err := scanClass(rows)
		if err != nil {
			return nil, err
		}
		classes = append(classes, cs)
	}
	return classes, nil
}

// GetClassByID fetches one class by object ID.
func GetClassByID(db *sql.DB, id string) (*models.ClassSection, error) {
	query := `SELECT ` + classColumns + ` FROM classes WHERE id = $1`
	return scanClass(db.QueryRow(query, id))
}

// CreateClass inserts a new class row.
func CreateClass(db *sql.DB, cs *models.ClassSection) error {
	cs.ID = models.NewObjectID()

	query := `INSERT INTO classes (id, name, grade, section, status, capacity, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())`
	_, err := db.Exec(query, cs.ID, cs.Name, cs.Grade, cs.Section, cs.Status, cs.Capacity)
	if err != nil {
		return fmt.Errorf("failed to create class: %v", err)
	}
	return nil
}

// UpdateClass persists the mutable fields of an existing class.
func UpdateClass(db *sql.DB, cs *models.ClassSection) error {
	query := `UPDATE classes SET name = $1, grade = $2, section = $3, status = $4, capacity = $5, updated_at = NOW()
			  WHERE id = $6`
	result, err := db.Exec(query, cs.Name, cs.Grade, cs.Section, cs.Status, cs.Capacity, cs.ID)
	if err != nil {
		return fmt.Errorf("failed to update class: %v", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteClass removes a class record. Students keep their free-text class
// label, so no rows reference the deleted record directly.
func DeleteClass(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM classes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete class: %v", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetActiveStudentClassNames returns the class label of every active student,
// one entry per student. Counting matches per class happens in memory with
// fuzzy grade/section matching.
func GetActiveStudentClassNames(db *sql.DB) ([]string, error) {
	rows, err := db.Query(`SELECT class_name FROM students WHERE status = 'Active'`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

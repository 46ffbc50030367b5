package teachers

import (
	"database/sql"
	"fmt"

	"brightwood-schools/app/models"
)

const teacherColumns = `id, teacher_id, first_name, last_name, email, phone, status, created_at, updated_at`

func scanTeacher(row interface {
	Scan(dest ...interface{}) error
}) (*models.Teacher, error) {
	var t models.Teacher
	err := row.Scan(
		&t.ID, &t.TeacherID, &t.FirstName, &t.LastName, &t.Email,
		&t.Phone, &t.Status, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetAllTeachers returns every teacher ordered by teacher code.
func GetAllTeachers(db *sql.DB) ([]*models.Teacher, error) {
	query := `SELECT ` + teacherColumns + ` FROM teachers ORDER BY teacher_id`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teachers := []*models.Teacher{}
	for rows.Next() {
		t, err := scanTeacher(rows)
		if err != nil {
			return nil, err
		}
		teachers = append(teachers, t)
	}
	return teachers, nil
}

// GetTeacherByID fetches one teacher by object ID.
func GetTeacherByID(db *sql.DB, id string) (*models.Teacher, error) {
	query := `SELECT ` + teacherColumns + ` FROM teachers WHERE id = $1`
	return scanTeacher(db.QueryRow(query, id))
}

// CreateTeacher inserts a new teacher row.
func CreateTeacher(db *sql.DB, t *models.Teacher) error {
	t.ID = models.NewObjectID()

	query := `INSERT INTO teachers (id, teacher_id, first_name, last_name, email, phone, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())`
	_, err := db.Exec(query, t.ID, t.TeacherID, t.FirstName, t.LastName, t.Email, t.Phone, t.Status)
	if err != nil {
		return fmt.Errorf("failed to create teacher: %v", err)
	}
	return nil
}

// UpdateTeacher persists the mutable fields of an existing teacher.
func UpdateTeacher(db *sql.DB, t *models.Teacher) error {
	query := `UPDATE teachers SET first_name = $1, last_name = $2, email = $3, phone = $4, status = $5, updated_at = NOW()
			  WHERE id = $6`
	result, err := db.Exec(query, t.FirstName, t.LastName, t.Email, t.Phone, t.Status, t.ID)
	if err != nil {
		return fmt.Errorf("failed to update teacher: %v", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeactivateTeacher marks a teacher inactive. Schedule entries keep their
// teacher reference so historical timetables stay readable.
func DeactivateTeacher(db *sql.DB, id string) error {
	result, err := db.Exec(`UPDATE teachers SET status = $1, updated_at = NOW() WHERE id = $2`, models.StatusInactive, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate teacher: %v", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

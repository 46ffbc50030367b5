package students

import (
	"database/sql"
	"fmt"

	"brightwood-schools/app/models"
)

const studentColumns = `id, student_id, first_name, last_name, gender, class_name, status, admission_date, created_at, updated_at`

func scanStudent(row interface {
	Scan(dest ...interface{}) error
}) (*models.Student, error) {
	var s models.Student
	var gender sql.NullString

	err := row.Scan(
		&s.ID, &s.StudentID, &s.FirstName, &s.LastName, &gender,
		&s.ClassName, &s.Status, &s.AdmissionDate, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if gender.Valid {
		g := models.Gender(gender.String)
		s.Gender = &g
	}
	return &s, nil
}

// GetAllStudents returns every student ordered by student code.
func GetAllStudents(db *sql.DB) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students ORDER BY student_id`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, nil
}

// GetStudentByID fetches one student by object ID.
func GetStudentByID(db *sql.DB, id string) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`
	return scanStudent(db.QueryRow(query, id))
}

// CreateStudent inserts a new student row.
func CreateStudent(db *sql.DB, s *models.Student) error {
	s.ID = models.NewObjectID()

	var gender interface{}
	if s.Gender != nil {
		gender = string(*s.Gender)
	}

	query := `INSERT INTO students (id, student_id, first_name, last_name, gender, class_name, status, admission_date, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())`
	_, err := db.Exec(query, s.ID, s.StudentID, s.FirstName, s.LastName, gender, s.ClassName, s.Status, s.AdmissionDate)
	if err != nil {
		return fmt.Errorf("failed to create student: %v", err)
	}
	return nil
}

// UpdateStudent persists the mutable fields of an existing student.
func UpdateStudent(db *sql.DB, s *models.Student) error {
	var gender interface{}
	if s.Gender != nil {
		gender = string(*s.Gender)
	}

	query := `UPDATE students SET first_name = $1, last_name = $2, gender = $3, class_name = $4, status = $5, admission_date = $6, updated_at = NOW()
			  WHERE id = $7`
	result, err := db.Exec(query, s.FirstName, s.LastName, gender, s.ClassName, s.Status, s.AdmissionDate, s.ID)
	if err != nil {
		return fmt.Errorf("failed to update student: %v", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeactivateStudent marks a student inactive. Rows are never hard-deleted so
// past attendance and fee records keep resolving.
func DeactivateStudent(db *sql.DB, id string) error {
	result, err := db.Exec(`UPDATE students SET status = $1, updated_at = NOW() WHERE id = $2`, models.StatusInactive, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate student: %v", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// StudentsStats summarizes the students page header cards.
type StudentsStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
	Male     int `json:"male"`
	Female   int `json:"female"`
}

// GetStudentsStats computes the header counts in one query.
func GetStudentsStats(db *sql.DB) (*StudentsStats, error) {
	query := `SELECT
				COUNT(*),
				COUNT(*) FILTER (WHERE status = 'Active'),
				COUNT(*) FILTER (WHERE status = 'Inactive'),
				COUNT(*) FILTER (WHERE gender = 'male'),
				COUNT(*) FILTER (WHERE gender = 'female')
			  FROM students`

	var stats StudentsStats
	err := db.QueryRow(query).Scan(&stats.Total, &stats.Active, &stats.Inactive, &stats.Male, &stats.Female)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

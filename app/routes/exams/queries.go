package exams

import (
	"database/sql"
	"fmt"
	"time"

	"brightwood-schools/app/models"
)

const examColumns = `id, exam_id, name, grade, COALESCE(subject_id, ''), to_char(date, 'YYYY-MM-DD'), status, created_at, updated_at`

func scanExam(row interface {
	Scan(dest ...interface{}) error
}) (*models.Exam, error) {
	var e models.Exam
	err := row.Scan(
		&e.ID, &e.ExamID, &e.Name, &e.Grade, &e.SubjectID,
		&e.Date, &e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// GetAllExams returns exams newest first, optionally restricted to a grade.
func GetAllExams(db *sql.DB, grade string) ([]*models.Exam, error) {
	query := `SELECT ` + examColumns + ` FROM exams`
	args := []interface{}{}
	if grade != "" {
		query += ` WHERE grade = $1`
		args = append(args, grade)
	}
	query += ` ORDER BY date DESC, exam_id`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exams := []*models.Exam{}
	for rows.Next() {
		e, err := scanExam(rows)
		if err != nil {
			return nil, err
		}
		exams = append(exams, e)
	}
	return exams, nil
}

// GetExamByID fetches one exam by object ID.
func GetExamByID(db *sql.DB, id string) (*models.Exam, error) {
	query := `SELECT ` + examColumns + ` FROM exams WHERE id = $1`
	return scanExam(db.QueryRow(query, id))
}

// CreateExam inserts a new exam row.
func CreateExam(db *sql.DB, e *models.Exam, date time.Time) error {
	e.ID = models.NewObjectID()

	var subjectID interface{}
	if e.SubjectID != "" {
		subjectID = e.SubjectID
	}

	query := `INSERT INTO exams (id, exam_id, name, grade, subject_id, date, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())`
	_, err := db.Exec(query, e.ID, e.ExamID, e.Name, e.Grade, subjectID, date, e.Status)
	if err != nil {
		return fmt.Errorf("failed to create exam: %v", err)
	}
	return nil
}

// UpdateExam persists the mutable fields of an existing exam.
func UpdateExam(db *sql.DB, e *models.Exam, date time.Time) error {
	var subjectID interface{}
	if e.SubjectID != "" {
		subjectID = e.SubjectID
	}

	query := `UPDATE exams SET name = $1, grade = $2, subject_id = $3, date = $4, status = $5, updated_at = NOW()
			  WHERE id = $6`
	result, err := db.Exec(query, e.Name, e.Grade, subjectID, date, e.Status, e.ID)
	if err != nil {
		return fmt.Errorf("failed to update exam: %v", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteExam removes an exam and, via cascade, its results.
func DeleteExam(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM exams WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete exam: %v", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetResultsByExam returns every result row for one exam.
func GetResultsByExam(db *sql.DB, examID string) ([]*models.ExamResult, error) {
	query := `SELECT id, exam_id, student_id, marks, grade_letter, created_at, updated_at
			  FROM exam_results WHERE exam_id = $1 ORDER BY student_id`

	rows, err := db.Query(query, examID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := []*models.ExamResult{}
	for rows.Next() {
		var r models.ExamResult
		err := rows.Scan(&r.ID, &r.ExamID, &r.StudentID, &r.Marks, &r.GradeLetter, &r.CreatedAt, &r.UpdatedAt)
		if err != nil {
			return nil, err
		}
		results = append(results, &r)
	}
	return results, nil
}

// UpsertResult writes one student's marks for an exam, replacing any earlier
// entry for the same (exam, student) pair.
func UpsertResult(db *sql.DB, r *models.ExamResult) error {
	if r.ID == "" {
		r.ID = models.NewObjectID()
	}

	query := `INSERT INTO exam_results (id, exam_id, student_id, marks, grade_letter, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
			  ON CONFLICT ON CONSTRAINT exam_results_exam_student_unique
			  DO UPDATE SET marks = EXCLUDED.marks, grade_letter = EXCLUDED.grade_letter, updated_at = NOW()`
	_, err := db.Exec(query, r.ID, r.ExamID, r.StudentID, r.Marks, r.GradeLetter)
	if err != nil {
		return fmt.Errorf("failed to save result: %v", err)
	}
	return nil
}

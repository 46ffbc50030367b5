package fees

import (
	"database/sql"
	"fmt"
	"time"

	"brightwood-schools/app/models"
)

const feeColumns = `id, fee_id, student_id, name, amount,
	COALESCE(to_char(due_date, 'YYYY-MM-DD'), ''),
	to_char(paid_date, 'YYYY-MM-DD'),
	status, created_at, updated_at`

func scanFee(row interface {
	Scan(dest ...interface{}) error
}) (*models.Fee, error) {
	var f models.Fee
	err := row.Scan(
		&f.ID, &f.FeeID, &f.StudentID, &f.Name, &f.Amount,
		&f.DueDate, &f.PaidDate, &f.Status, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// GetFees returns fee records, optionally restricted to one student or one
// status.
func GetFees(db *sql.DB, studentID, status string) ([]*models.Fee, error) {
	query := `SELECT ` + feeColumns + ` FROM fees WHERE 1=1`
	args := []interface{}{}
	if studentID != "" {
		args = append(args, studentID)
		query += fmt.Sprintf(` AND student_id = $%d`, len(args))
	}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	query += ` ORDER BY due_date NULLS LAST, fee_id`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fees := []*models.Fee{}
	for rows.Next() {
		f, err := scanFee(rows)
		if err != nil {
			return nil, err
		}
		fees = append(fees, f)
	}
	return fees, nil
}

// GetFeeByID fetches one fee by object ID.
func GetFeeByID(db *sql.DB, id string) (*models.Fee, error) {
	query := `SELECT ` + feeColumns + ` FROM fees WHERE id = $1`
	return scanFee(db.QueryRow(query, id))
}

// CreateFee inserts a new fee row.
func CreateFee(db *sql.DB, f *models.Fee, dueDate interface{}) error {
	f.ID = models.NewObjectID()

	query := `INSERT INTO fees (id, fee_id, student_id, name, amount, due_date, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())`
	_, err := db.Exec(query, f.ID, f.FeeID, f.StudentID, f.Name, f.Amount, dueDate, f.Status)
	if err != nil {
		return fmt.Errorf("failed to create fee: %v", err)
	}
	return nil
}

// MarkFeePaid stamps a fee paid as of the given date.
func MarkFeePaid(db *sql.DB, id string, paidDate time.Time) error {
	query := `UPDATE fees SET status = $1, paid_date = $2, updated_at = NOW() WHERE id = $3`
	result, err := db.Exec(query, models.FeePaid, paidDate, id)
	if err != nil {
		return fmt.Errorf("failed to mark fee paid: %v", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpdateFee persists the mutable fields of an existing fee.
func UpdateFee(db *sql.DB, f *models.Fee, dueDate interface{}) error {
	query := `UPDATE fees SET name = $1, amount = $2, due_date = $3, status = $4, updated_at = NOW()
			  WHERE id = $5`
	result, err := db.Exec(query, f.Name, f.Amount, dueDate, f.Status, f.ID)
	if err != nil {
		return fmt.Errorf("failed to update fee: %v", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteFee removes a fee record.
func DeleteFee(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM fees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete fee: %v", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// SweepOverdueFees flips pending fees whose due date has passed to overdue
// and returns how many rows changed. The daily scheduler calls this.
func SweepOverdueFees(db *sql.DB, today time.Time) (int64, error) {
	query := `UPDATE fees SET status = $1, updated_at = NOW()
			  WHERE status = $2 AND due_date IS NOT NULL AND due_date < $3`
	result, err := db.Exec(query, models.FeeOverdue, models.FeePending, today)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

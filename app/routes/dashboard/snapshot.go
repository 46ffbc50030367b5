package dashboard

import (
	"database/sql"
	"encoding/json"
	"sync"
	"time"

	"brightwood-schools/app/models"
)

// Stats is the dashboard snapshot served to the portal. It is refreshed on a
// timer rather than recomputed per request, so the portal can poll it
// cheaply.
type Stats struct {
	Students    int               `json:"students"`
	Teachers    int               `json:"teachers"`
	Classes     int               `json:"classes"`
	Subjects    int               `json:"subjects"`
	Attendance  AttendanceSummary `json:"attendance_today"`
	PendingFees int               `json:"pending_fees"`
	OverdueFees int               `json:"overdue_fees"`
	RefreshedAt time.Time         `json:"refreshed_at"`
}

// AttendanceSummary totals today's marks across all classes.
type AttendanceSummary struct {
	ClassesMarked int `json:"classes_marked"`
	Present       int `json:"present"`
	Absent        int `json:"absent"`
	Late          int `json:"late"`
	Excused       int `json:"excused"`
}

var (
	mu       sync.RWMutex
	snapshot *Stats
)

// Current returns the latest snapshot, or nil when no refresh has run yet.
func Current() *Stats {
	mu.RLock()
	defer mu.RUnlock()
	return snapshot
}

// Refresh recomputes the snapshot and swaps it in.
func Refresh(db *sql.DB) (*Stats, error) {
	stats, err := compute(db, time.Now())
	if err != nil {
		return nil, err
	}

	mu.Lock()
	snapshot = stats
	mu.Unlock()
	return stats, nil
}

func compute(db *sql.DB, now time.Time) (*Stats, error) {
	stats := &Stats{RefreshedAt: now}

	query := `SELECT
				(SELECT COUNT(*) FROM students WHERE status = 'Active'),
				(SELECT COUNT(*) FROM teachers WHERE status = 'Active'),
				(SELECT COUNT(*) FROM classes WHERE status = 'Active'),
				(SELECT COUNT(*) FROM subjects WHERE status = 'Active'),
				(SELECT COUNT(*) FROM fees WHERE status = 'pending'),
				(SELECT COUNT(*) FROM fees WHERE status = 'overdue')`
	err := db.QueryRow(query).Scan(
		&stats.Students, &stats.Teachers, &stats.Classes,
		&stats.Subjects, &stats.PendingFees, &stats.OverdueFees,
	)
	if err != nil {
		return nil, err
	}

	summary, err := attendanceToday(db, now)
	if err != nil {
		return nil, err
	}
	stats.Attendance = *summary
	return stats, nil
}

func attendanceToday(db *sql.DB, now time.Time) (*AttendanceSummary, error) {
	rows, err := db.Query(`SELECT students FROM attendance WHERE date = $1`, now.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summary := &AttendanceSummary{}
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var marks []models.AttendanceMark
		if err := json.Unmarshal(raw, &marks); err != nil {
			continue
		}
		summary.ClassesMarked++
		tallyMarks(summary, marks)
	}
	return summary, nil
}

func tallyMarks(summary *AttendanceSummary, marks []models.AttendanceMark) {
	for _, mark := range marks {
		switch mark.Status {
		case models.Present:
			summary.Present++
		case models.Absent:
			summary.Absent++
		case models.Late:
			summary.Late++
		case models.Excused:
			summary.Excused++
		}
	}
}

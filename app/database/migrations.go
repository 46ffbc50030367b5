package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema if it does not exist and applies
// incremental updates. All statements are idempotent so the server can run
// them on every boot.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id CHAR(24) PRIMARY KEY,
			email VARCHAR(255) UNIQUE NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			role VARCHAR(20) NOT NULL DEFAULT 'teacher',
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id UUID PRIMARY KEY,
			user_id CHAR(24) NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			expires_at TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS students (
			id CHAR(24) PRIMARY KEY,
			student_id VARCHAR(20) UNIQUE NOT NULL,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			gender VARCHAR(10),
			class_name VARCHAR(100) NOT NULL DEFAULT '',
			status VARCHAR(10) NOT NULL DEFAULT 'Active',
			admission_date DATE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS teachers (
			id CHAR(24) PRIMARY KEY,
			teacher_id VARCHAR(20) UNIQUE NOT NULL,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			email VARCHAR(255) NOT NULL DEFAULT '',
			phone VARCHAR(50) NOT NULL DEFAULT '',
			status VARCHAR(10) NOT NULL DEFAULT 'Active',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS subjects (
			id CHAR(24) PRIMARY KEY,
			code VARCHAR(20) UNIQUE NOT NULL,
			name VARCHAR(100) NOT NULL,
			grade VARCHAR(20) NOT NULL DEFAULT '',
			status VARCHAR(10) NOT NULL DEFAULT 'Active',
			schedule JSONB NOT NULL DEFAULT '[]',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS classes (
			id CHAR(24) PRIMARY KEY,
			name VARCHAR(100) UNIQUE NOT NULL,
			status VARCHAR(10) NOT NULL DEFAULT 'Active',
			capacity INT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS master_data (
			id CHAR(24) PRIMARY KEY,
			type VARCHAR(20) NOT NULL,
			code VARCHAR(20) NOT NULL DEFAULT '',
			name VARCHAR(100) NOT NULL,
			time_slots JSONB NOT NULL DEFAULT '[]',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_master_data_type ON master_data(type)`,
		`CREATE TABLE IF NOT EXISTS attendance (
			id CHAR(24) PRIMARY KEY,
			class_name VARCHAR(100) NOT NULL,
			date DATE NOT NULL,
			students JSONB NOT NULL DEFAULT '[]',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT attendance_class_date_unique UNIQUE (class_name, date)
		)`,
		`CREATE TABLE IF NOT EXISTS exams (
			id CHAR(24) PRIMARY KEY,
			exam_id VARCHAR(20) UNIQUE NOT NULL,
			name VARCHAR(100) NOT NULL,
			grade VARCHAR(20) NOT NULL DEFAULT '',
			subject_id CHAR(24),
			date DATE NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'scheduled',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS exam_results (
			id CHAR(24) PRIMARY KEY,
			exam_id CHAR(24) NOT NULL REFERENCES exams(id) ON DELETE CASCADE,
			student_id CHAR(24) NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			marks NUMERIC(6,2) NOT NULL DEFAULT 0,
			grade_letter VARCHAR(5) NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT exam_results_exam_student_unique UNIQUE (exam_id, student_id)
		)`,
		`CREATE TABLE IF NOT EXISTS fees (
			id CHAR(24) PRIMARY KEY,
			fee_id VARCHAR(20) UNIQUE NOT NULL,
			student_id CHAR(24) NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			name VARCHAR(100) NOT NULL,
			amount BIGINT NOT NULL DEFAULT 0,
			due_date DATE,
			paid_date DATE,
			status VARCHAR(10) NOT NULL DEFAULT 'pending',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration statement failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}

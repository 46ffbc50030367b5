package attendance

import (
	"database/sql"
	"log"
	"time"

	"brightwood-schools/app/config"
	"brightwood-schools/app/grades"
	"brightwood-schools/app/models"

	"github.com/gofiber/fiber/v2"
)

func parseDateParam(raw string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// GetAttendanceAPI returns attendance documents for a date, optionally
// narrowed to one class.
func GetAttendanceAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	dateRaw := c.Query("date")
	date, ok := parseDateParam(dateRaw)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "date is required in YYYY-MM-DD format"})
	}

	className := c.Query("class")
	if className != "" {
		doc, err := GetAttendanceByClassAndDate(db, className, date)
		if err != nil {
			log.Printf("Error fetching attendance for %s on %s: %v", className, dateRaw, err)
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance"})
		}
		docs := []*models.AttendanceDocument{}
		if doc != nil {
			docs = append(docs, doc)
		}
		return c.JSON(fiber.Map{"data": fiber.Map{"attendance": docs}, "count": len(docs)})
	}

	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE date = $1 ORDER BY class_name`
	rows, err := db.Query(query, date)
	if err != nil {
		log.Printf("Error fetching attendance for %s: %v", dateRaw, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance"})
	}
	defer rows.Close()

	docs := []*models.AttendanceDocument{}
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			log.Printf("Error scanning attendance row: %v", err)
			continue
		}
		docs = append(docs, doc)
	}

	return c.JSON(fiber.Map{"data": fiber.Map{"attendance": docs}, "count": len(docs)})
}

// GetRosterAPI builds the attendance-taking roster for a class and date:
// the class's active students merged with any marks already saved for that
// day. The response carries the existing document's ID so the client can
// update instead of create.
func GetRosterAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	className := c.Query("class")
	if className == "" {
		return c.Status(400).JSON(fiber.Map{"error": "class is required"})
	}
	date, ok := parseDateParam(c.Query("date"))
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "date is required in YYYY-MM-DD format"})
	}

	students, err := studentsForClass(db, className)
	if err != nil {
		log.Printf("Error fetching students for roster %s: %v", className, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	existing, err := GetAttendanceByClassAndDate(db, className, date)
	if err != nil {
		log.Printf("Error fetching attendance for roster %s: %v", className, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance"})
	}

	roster, sourceID := BuildRoster(students, existing)
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"roster":        roster,
			"attendance_id": sourceID,
			"class":         className,
			"date":          date.Format("2006-01-02"),
		},
		"count": len(roster),
	})
}

// studentsForClass loads active students whose free-text class label matches
// the class's grade and section. Matching is fuzzy on purpose: "Grade 1A" and
// "Grade 1 Section A" name the same class.
func studentsForClass(db *sql.DB, className string) ([]*models.Student, error) {
	grade := grades.ExtractGrade(className)
	section := grades.ExtractSection(className, grade)

	query := `SELECT id, student_id, first_name, last_name, class_name
			  FROM students WHERE status = 'Active' ORDER BY student_id`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		var s models.Student
		if err := rows.Scan(&s.ID, &s.StudentID, &s.FirstName, &s.LastName, &s.ClassName); err != nil {
			return nil, err
		}
		if grades.MatchesClassSection(s.ClassName, grade, section) {
			students = append(students, &s)
		}
	}
	return students, nil
}

type saveAttendanceRequest struct {
	Class    string             `json:"class" validate:"required"`
	Date     string             `json:"date" validate:"required"`
	Students []models.RosterRow `json:"students" validate:"required,min=1"`
}

// CreateAttendanceAPI saves a day's marks for a class. If a document for the
// (class, date) pair already exists, or appears concurrently while we insert,
// the save is retried exactly once as an update of that document.
func CreateAttendanceAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	var req saveAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	date, ok := parseDateParam(req.Date)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "date is required in YYYY-MM-DD format"})
	}
	if req.Class == "" {
		return c.Status(400).JSON(fiber.Map{"error": "class is required"})
	}

	doc, err := BuildSavePayload(req.Students, req.Class, req.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	savedID, created, err := saveMarks(doc,
		func(d *models.AttendanceDocument) error { return CreateAttendance(db, d, date) },
		func() (*models.AttendanceDocument, error) { return GetAttendanceByClassAndDate(db, req.Class, date) },
		func(id string, marks []models.AttendanceMark) error { return UpdateAttendanceStudents(db, id, marks) },
	)
	if err != nil {
		log.Printf("Error saving attendance for %s on %s: %v", req.Class, req.Date, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save attendance"})
	}
	doc.ID = savedID

	if !created {
		return c.JSON(fiber.Map{"message": "Attendance updated successfully", "data": fiber.Map{"attendance": doc}})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Attendance saved successfully", "data": fiber.Map{"attendance": doc}})
}

type updateAttendanceRequest struct {
	Students []models.RosterRow `json:"students" validate:"required,min=1"`
}

// UpdateAttendanceAPI replaces the marks of an existing document. The body
// carries only the students array; class and date never change after create.
func UpdateAttendanceAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	id := c.Params("id")

	existing, err := GetAttendanceByID(db, id)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{"error": "Attendance record not found"})
	}
	if err != nil {
		log.Printf("Error fetching attendance %s: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance"})
	}

	var req updateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if len(req.Students) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "students is required"})
	}

	doc, err := BuildSavePayload(req.Students, existing.ClassName, existing.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := UpdateAttendanceStudents(db, existing.ID, doc.Students); err != nil {
		log.Printf("Error updating attendance %s: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update attendance"})
	}

	existing.Students = doc.Students
	return c.JSON(fiber.Map{"message": "Attendance updated successfully", "data": fiber.Map{"attendance": existing}})
}

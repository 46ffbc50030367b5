package students

import (
	"database/sql"
	"log"
	"strings"
	"time"

	"brightwood-schools/app/config"
	"brightwood-schools/app/database"
	"brightwood-schools/app/grades"
	"brightwood-schools/app/models"
	"brightwood-schools/app/validation"

	"github.com/gofiber/fiber/v2"
)

// StudentFilters collects the query parameters of the students table.
type StudentFilters struct {
	Search string
	Status string
	Class  string
	Gender string
	Limit  int
	Offset int
}

func matchesFilters(student *models.Student, filters StudentFilters) bool {
	if filters.Search != "" {
		searchLower := strings.ToLower(filters.Search)
		fullName := strings.ToLower(student.FirstName + " " + student.LastName)
		if !strings.Contains(fullName, searchLower) &&
			!strings.Contains(strings.ToLower(student.StudentID), searchLower) {
			return false
		}
	}

	if filters.Status != "" && !strings.EqualFold(string(student.Status), filters.Status) {
		return false
	}

	// Class filtering is fuzzy: "Grade 1A" and "Grade 1 Section A" are the
	// same class even though the stored labels differ.
	if filters.Class != "" {
		grade := grades.ExtractGrade(filters.Class)
		section := grades.ExtractSection(filters.Class, grade)
		if !grades.MatchesClassSection(student.ClassName, grade, section) {
			return false
		}
	}

	if filters.Gender != "" {
		if student.Gender == nil || !strings.EqualFold(string(*student.Gender), filters.Gender) {
			return false
		}
	}

	return true
}

// GetStudentsAPI lists students with table filtering and pagination.
func GetStudentsAPI(c *fiber.Ctx) error {
	filters := StudentFilters{
		Search: c.Query("search"),
		Status: c.Query("status"),
		Class:  c.Query("class"),
		Gender: c.Query("gender"),
		Limit:  c.QueryInt("limit", 0),
		Offset: c.QueryInt("offset", 0),
	}

	allStudents, err := GetAllStudents(config.GetDB())
	if err != nil {
		log.Printf("Error fetching students: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	filtered := []*models.Student{}
	for _, student := range allStudents {
		if matchesFilters(student, filters) {
			filtered = append(filtered, student)
		}
	}
	totalCount := len(filtered)

	if filters.Offset > 0 {
		if filters.Offset >= len(filtered) {
			filtered = []*models.Student{}
		} else {
			filtered = filtered[filters.Offset:]
		}
	}
	if filters.Limit > 0 && filters.Limit < len(filtered) {
		filtered = filtered[:filters.Limit]
	}

	return c.JSON(fiber.Map{
		"data":        fiber.Map{"students": filtered},
		"count":       len(filtered),
		"total_count": totalCount,
	})
}

// GetStudentsStatsAPI returns the header counts for the students page.
func GetStudentsStatsAPI(c *fiber.Ctx) error {
	stats, err := GetStudentsStats(config.GetDB())
	if err != nil {
		log.Printf("Error fetching student stats: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students statistics"})
	}
	return c.JSON(fiber.Map{"data": stats})
}

// GetStudentAPI fetches one student by object ID or student code.
func GetStudentAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	id, err := database.ResolveStudentID(db, c.Params("key"))
	if err == database.ErrNotFound {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}
	if err != nil {
		log.Printf("Error resolving student %s: %v", c.Params("key"), err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}

	student, err := GetStudentByID(db, id)
	if err != nil {
		log.Printf("Error fetching student %s: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}

	return c.JSON(fiber.Map{"data": fiber.Map{"student": student}})
}

type createStudentRequest struct {
	StudentID     string         `json:"student_id"`
	FirstName     string         `json:"first_name" validate:"required"`
	LastName      string         `json:"last_name" validate:"required"`
	Gender        *models.Gender `json:"gender" validate:"omitempty,oneof=male female other"`
	ClassName     string         `json:"class"`
	AdmissionDate *string        `json:"admission_date"`
}

// CreateStudentAPI registers a new student. When no student code is supplied
// the next sequential "S001"-style code is assigned.
func CreateStudentAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	var req createStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if req.StudentID == "" {
		code, err := database.NextCustomID(db, "students", "student_id", "S", 3)
		if err != nil {
			log.Printf("Error generating student code: %v", err)
			return c.Status(500).JSON(fiber.Map{"error": "Failed to create student"})
		}
		req.StudentID = code
	}

	student := &models.Student{
		StudentID: req.StudentID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Gender:    req.Gender,
		ClassName: req.ClassName,
		Status:    models.StatusActive,
	}
	if req.AdmissionDate != nil {
		t, err := time.Parse("2006-01-02", *req.AdmissionDate)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "admission_date must be YYYY-MM-DD"})
		}
		student.AdmissionDate = &t
	}

	if err := CreateStudent(db, student); err != nil {
		log.Printf("Error creating student: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Student created successfully",
		"data":    fiber.Map{"student": student},
	})
}

type updateStudentRequest struct {
	FirstName     *string        `json:"first_name"`
	LastName      *string        `json:"last_name"`
	Gender        *models.Gender `json:"gender" validate:"omitempty,oneof=male female other"`
	ClassName     *string        `json:"class"`
	Status        *string        `json:"status" validate:"omitempty,oneof=Active Inactive"`
	AdmissionDate *string        `json:"admission_date"`
}

// UpdateStudentAPI applies a partial update to a student.
func UpdateStudentAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	id, err := database.ResolveStudentID(db, c.Params("key"))
	if err == database.ErrNotFound {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}

	student, err := GetStudentByID(db, id)
	if err != nil {
		log.Printf("Error fetching student %s: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}

	var req updateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if req.FirstName != nil {
		student.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		student.LastName = *req.LastName
	}
	if req.Gender != nil {
		student.Gender = req.Gender
	}
	if req.ClassName != nil {
		student.ClassName = *req.ClassName
	}
	if req.Status != nil {
		student.Status = models.RecordStatus(*req.Status)
	}
	if req.AdmissionDate != nil {
		t, err := time.Parse("2006-01-02", *req.AdmissionDate)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "admission_date must be YYYY-MM-DD"})
		}
		student.AdmissionDate = &t
	}

	if err := UpdateStudent(db, student); err != nil {
		log.Printf("Error updating student %s: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update student"})
	}

	return c.JSON(fiber.Map{
		"message": "Student updated successfully",
		"data":    fiber.Map{"student": student},
	})
}

// DeleteStudentAPI deactivates a student.
func DeleteStudentAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	id, err := database.ResolveStudentID(db, c.Params("key"))
	if err == database.ErrNotFound {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}

	if err := DeactivateStudent(db, id); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		log.Printf("Error deactivating student %s: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete student"})
	}

	return c.JSON(fiber.Map{"message": "Student deactivated successfully"})
}

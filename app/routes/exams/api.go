package exams

import (
	"database/sql"
	"log"
	"time"

	"brightwood-schools/app/config"
	"brightwood-schools/app/database"
	"brightwood-schools/app/models"
	"brightwood-schools/app/validation"

	"github.com/gofiber/fiber/v2"
)

// GetExamsAPI lists exams, optionally filtered by grade.
func GetExamsAPI(c *fiber.Ctx) error {
	exams, err := GetAllExams(config.GetDB(), c.Query("grade"))
	if err != nil {
		log.Printf("Error fetching exams: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch exams"})
	}

	return c.JSON(fiber.Map{
		"data":  fiber.Map{"exams": exams},
		"count": len(exams),
	})
}

// GetExamAPI fetches one exam by object ID or exam code.
func GetExamAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	id, err := database.ResolveExamID(db, c.Params("key"))
	if err == database.ErrNotFound {
		return c.Status(404).JSON(fiber.Map{"error": "Exam not found"})
	}
	if err != nil {
		log.Printf("Error resolving exam %s: %v", c.Params("key"), err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch exam"})
	}

	exam, err := GetExamByID(db, id)
	if err != nil {
		log.Printf("Error fetching exam %s: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch exam"})
	}

	return c.JSON(fiber.Map{"data": fiber.Map{"exam": exam}})
}

type examRequest struct {
	ExamID    string `json:"exam_id"`
	Name      string `json:"name" validate:"required"`
	Grade     string `json:"grade"`
	SubjectID string `json:"subject_id"`
	Date      string `json:"date" validate:"required"`
	Status    string `json:"status" validate:"omitempty,oneof=scheduled completed cancelled"`
}

// CreateExamAPI schedules a new exam, assigning the next "E001"-style code
// when none is supplied. A subject reference may be a code or an object ID.
func CreateExamAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	var req examRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "date must be YYYY-MM-DD"})
	}

	if req.ExamID == "" {
		code, err := database.NextCustomID(db, "exams", "exam_id", "E", 3)
		if err != nil {
			log.Printf("Error generating exam code: %v", err)
			return c.Status(500).JSON(fiber.Map{"error": "Failed to create exam"})
		}
		req.ExamID = code
	}

	exam := &models.Exam{
		ExamID: req.ExamID,
		Name:   req.Name,
		Grade:  req.Grade,
		Date:   req.Date,
		Status: models.ExamScheduled,
	}
	if req.Status != "" {
		exam.Status = models.ExamStatus(req.Status)
	}
	if req.SubjectID != "" {
		subjectID, err := database.ResolveSubjectID(db, req.SubjectID)
		if err == database.ErrNotFound {
			return c.Status(400).JSON(fiber.Map{"error": "Unknown subject"})
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to create exam"})
		}
		exam.SubjectID = subjectID
	}

	if err := CreateExam(db, exam, date); err != nil {
		log.Printf("Error creating exam: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create exam"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Exam created successfully",
		"data":    fiber.Map{"exam": exam},
	})
}

// UpdateExamAPI applies a partial update to an exam.
func UpdateExamAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	id, err := database.ResolveExamID(db, c.Params("key"))
	if err == database.ErrNotFound {
		return c.Status(404).JSON(fiber.Map{"error": "Exam not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch exam"})
	}

	exam, err := GetExamByID(db, id)
	if err != nil {
		log.Printf("Error fetching exam %s: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch exam"})
	}

	var req struct {
		Name      *string `json:"name"`
		Grade     *string `json:"grade"`
		SubjectID *string `json:"subject_id"`
		Date      *string `json:"date"`
		Status    *string `json:"status" validate:"omitempty,oneof=scheduled completed cancelled"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if req.Name != nil {
		exam.Name = *req.Name
	}
	if req.Grade != nil {
		exam.Grade = *req.Grade
	}
	if req.SubjectID != nil {
		if *req.SubjectID == "" {
			exam.SubjectID = ""
		} else {
			subjectID, err := database.ResolveSubjectID(db, *req.SubjectID)
			if err == database.ErrNotFound {
				return c.Status(400).JSON(fiber.Map{"error": "Unknown subject"})
			}
			if err != nil {
				return c.Status(500).JSON(fiber.Map{"error": "Failed to update exam"})
			}
			exam.SubjectID = subjectID
		}
	}
	if req.Date != nil {
		exam.Date = *req.Date
	}
	if req.Status != nil {
		exam.Status = models.ExamStatus(*req.Status)
	}

	date, err := time.Parse("2006-01-02", exam.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "date must be YYYY-MM-DD"})
	}

	if err := UpdateExam(db, exam, date); err != nil {
		log.Printf("Error updating exam %s: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update exam"})
	}

	return c.JSON(fiber.Map{
		"message": "Exam updated successfully",
		"data":    fiber.Map{"exam": exam},
	})
}

// DeleteExamAPI removes an exam and its results.
func DeleteExamAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	id, err := database.ResolveExamID(db, c.Params("key"))
	if err == database.ErrNotFound {
		return c.Status(404).JSON(fiber.Map{"error": "Exam not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch exam"})
	}

	if err := DeleteExam(db, id); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Exam not found"})
		}
		log.Printf("Error deleting exam %s: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete exam"})
	}

	return c.JSON(fiber.Map{"message": "Exam deleted successfully"})
}

// GetResultsAPI lists the saved results for one exam.
func GetResultsAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	id, err := database.ResolveExamID(db, c.Params("key"))
	if err == database.ErrNotFound {
		return c.Status(404).JSON(fiber.Map{"error": "Exam not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch exam"})
	}

	results, err := GetResultsByExam(db, id)
	if err != nil {
		log.Printf("Error fetching results for exam %s: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch results"})
	}

	return c.JSON(fiber.Map{
		"data":  fiber.Map{"results": results},
		"count": len(results),
	})
}

type resultEntry struct {
	StudentID string  `json:"student_id" validate:"required"`
	Marks     float64 `json:"marks" validate:"gte=0,lte=100"`
}

// SaveResultsAPI records marks for one exam. Student references may be codes
// or object IDs; the grade letter is computed from the marks. Entries are
// resolved up-front so one bad student reference fails the whole batch.
func SaveResultsAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	examID, err := database.ResolveExamID(db, c.Params("key"))
	if err == database.ErrNotFound {
		return c.Status(404).JSON(fiber.Map{"error": "Exam not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch exam"})
	}

	var req struct {
		Results []resultEntry `json:"results" validate:"required,min=1,dive"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	results := make([]*models.ExamResult, 0, len(req.Results))
	for _, entry := range req.Results {
		studentID, err := database.ResolveStudentID(db, entry.StudentID)
		if err == database.ErrNotFound {
			return c.Status(400).JSON(fiber.Map{"error": "Unknown student: " + entry.StudentID})
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to save results"})
		}
		results = append(results, &models.ExamResult{
			ExamID:      examID,
			StudentID:   studentID,
			Marks:       entry.Marks,
			GradeLetter: LetterFor(entry.Marks),
		})
	}

	for _, r := range results {
		if err := UpsertResult(db, r); err != nil {
			log.Printf("Error saving result for exam %s student %s: %v", examID, r.StudentID, err)
			return c.Status(500).JSON(fiber.Map{"error": "Failed to save results"})
		}
	}

	return c.JSON(fiber.Map{
		"message": "Results saved successfully",
		"data":    fiber.Map{"results": results},
		"count":   len(results),
	})
}

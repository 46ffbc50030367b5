package teachers

import (
	"database/sql"
	"log"
	"strings"

	"brightwood-schools/app/config"
	"brightwood-schools/app/database"
	"brightwood-schools/app/models"
	"brightwood-schools/app/validation"

	"github.com/gofiber/fiber/v2"
)

// GetTeachersAPI lists teachers, optionally filtered by a search term and
// status.
func GetTeachersAPI(c *fiber.Ctx) error {
	search := strings.ToLower(c.Query("search"))
	status := c.Query("status")

	allTeachers, err := GetAllTeachers(config.GetDB())
	if err != nil {
		log.Printf("Error fetching teachers: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch teachers"})
	}

	teachers := []*models.Teacher{}
	for _, t := range allTeachers {
		if status != "" && !strings.EqualFold(string(t.Status), status) {
			continue
		}
		if search != "" {
			fullName := strings.ToLower(t.FirstName + " " + t.LastName)
			if !strings.Contains(fullName, search) &&
				!strings.Contains(strings.ToLower(t.TeacherID), search) &&
				!strings.Contains(strings.ToLower(t.Email), search) {
				continue
			}
		}
		teachers = append(teachers, t)
	}

	return c.JSON(fiber.Map{
		"data":  fiber.Map{"teachers": teachers},
		"count": len(teachers),
	})
}

// GetTeacherAPI fetches one teacher by object ID or teacher code.
func GetTeacherAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	id, err := database.ResolveTeacherID(db, c.Params("key"))
	if err == database.ErrNotFound {
		return c.Status(404).JSON(fiber.Map{"error": "Teacher not found"})
	}
	if err != nil {
		log.Printf("Error resolving teacher %s: %v", c.Params("key"), err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch teacher"})
	}

	teacher, err := GetTeacherByID(db, id)
	if err != nil {
		log.Printf("Error fetching teacher %s: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch teacher"})
	}

	return c.JSON(fiber.Map{"data": fiber.Map{"teacher": teacher}})
}

type createTeacherRequest struct {
	TeacherID string `json:"teacher_id"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone"`
}

// CreateTeacherAPI registers a new teacher, assigning the next "T001"-style
// code when none is supplied.
func CreateTeacherAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	var req createTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if req.TeacherID == "" {
		code, err := database.NextCustomID(db, "teachers", "teacher_id", "T", 3)
		if err != nil {
			log.Printf("Error generating teacher code: %v", err)
			return c.Status(500).JSON(fiber.Map{"error": "Failed to create teacher"})
		}
		req.TeacherID = code
	}

	teacher := &models.Teacher{
		TeacherID: req.TeacherID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Status:    models.StatusActive,
	}

	if err := CreateTeacher(db, teacher); err != nil {
		log.Printf("Error creating teacher: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create teacher"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Teacher created successfully",
		"data":    fiber.Map{"teacher": teacher},
	})
}

type updateTeacherRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone"`
	Status    *string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// UpdateTeacherAPI applies a partial update to a teacher.
func UpdateTeacherAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	id, err := database.ResolveTeacherID(db, c.Params("key"))
	if err == database.ErrNotFound {
		return c.Status(404).JSON(fiber.Map{"error": "Teacher not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch teacher"})
	}

	teacher, err := GetTeacherByID(db, id)
	if err != nil {
		log.Printf("Error fetching teacher %s: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch teacher"})
	}

	var req updateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if req.FirstName != nil {
		teacher.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		teacher.LastName = *req.LastName
	}
	if req.Email != nil {
		teacher.Email = *req.Email
	}
	if req.Phone != nil {
		teacher.Phone = *req.Phone
	}
	if req.Status != nil {
		teacher.Status = models.RecordStatus(*req.Status)
	}

	if err := UpdateTeacher(db, teacher); err != nil {
		log.Printf("Error updating teacher %s: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update teacher"})
	}

	return c.JSON(fiber.Map{
		"message": "Teacher updated successfully",
		"data":    fiber.Map{"teacher": teacher},
	})
}

// DeleteTeacherAPI deactivates a teacher.
func DeleteTeacherAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	id, err := database.ResolveTeacherID(db, c.Params("key"))
	if err == database.ErrNotFound {
		return c.Status(404).JSON(fiber.Map{"error": "Teacher not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch teacher"})
	}

	if err := DeactivateTeacher(db, id); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Teacher not found"})
		}
		log.Printf("Error deactivating teacher %s: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete teacher"})
	}

	return c.JSON(fiber.Map{"message": "Teacher deactivated successfully"})
}

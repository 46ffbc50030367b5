package classes

import (
	"database/sql"
	"log"

	"brightwood-schools/app/config"
	"brightwood-schools/app/database"
	"brightwood-schools/app/grades"
	"brightwood-schools/app/models"
	"brightwood-schools/app/validation"

	"github.com/gofiber/fiber/v2"
)

// GetClassesAPI lists classes sorted by grade number then section, with
// each class's current enrollment recomputed from the students table.
// Counts are always fresh; they are never stored on the class row.
func GetClassesAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	classes, err := GetAllClasses(db)
	if err != nil {
		log.Printf("Error fetching classes: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch classes"})
	}

	studentClassNames, err := GetActiveStudentClassNames(db)
	if err != nil {
		log.Printf("Error fetching student class labels: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch classes"})
	}

	for _, cs := range classes {
		cs.StudentCount = CountEnrolled(cs.Grade, cs.Section, studentClassNames)
	}
	SortClasses(classes)

	return c.JSON(fiber.Map{
		"data":  fiber.Map{"classes": classes},
		"count": len(classes),
	})
}

// GetClassAPI fetches one class by object ID or name.
func GetClassAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	id, err := database.ResolveClassID(db, c.Params("key"))
	if err == database.ErrNotFound {
		return c.Status(404).JSON(fiber.Map{"error": "Class not found"})
	}
	if err != nil {
		log.Printf("Error resolving class %s: %v", c.Params("key"), err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch class"})
	}

	class, err := GetClassByID(db, id)
	if err != nil {
		log.Printf("Error fetching class %s: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch class"})
	}

	studentClassNames, err := GetActiveStudentClassNames(db)
	if err == nil {
		class.StudentCount = CountEnrolled(class.Grade, class.Section, studentClassNames)
	}

	return c.JSON(fiber.Map{"data": fiber.Map{"class": class}})
}

type classRequest struct {
	Name     string `json:"name" validate:"required"`
	Capacity int    `json:"capacity" validate:"omitempty,min=1"`
	Status   string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// CreateClassAPI creates a class. Grade and section are derived from the
// name, so "Grade 3 Section B" and "grade 3 B" land on the same grade key.
func CreateClassAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	var req classRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	grade := grades.ExtractGrade(req.Name)
	if grade == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Class name must include a grade, e.g. \"Grade 3 Section B\""})
	}

	class := &models.ClassSection{
		Name:     req.Name,
		Grade:    grade,
		Section:  grades.ExtractSection(req.Name, grade),
		Status:   models.StatusActive,
		Capacity: req.Capacity,
	}
	if req.Status != "" {
		class.Status = models.RecordStatus(req.Status)
	}

	if err := CreateClass(db, class); err != nil {
		log.Printf("Error creating class: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create class"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Class created successfully",
		"data":    fiber.Map{"class": class},
	})
}

type updateClassRequest struct {
	Name     *string `json:"name"`
	Capacity *int    `json:"capacity" validate:"omitempty,min=1"`
	Status   *string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

// UpdateClassAPI applies a partial update; renaming re-derives grade and
// section.
func UpdateClassAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	id, err := database.ResolveClassID(db, c.Params("key"))
	if err == database.ErrNotFound {
		return c.Status(404).JSON(fiber.Map{"error": "Class not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch class"})
	}

	class, err := GetClassByID(db, id)
	if err != nil {
		log.Printf("Error fetching class %s: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch class"})
	}

	var req updateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if req.Name != nil {
		grade := grades.ExtractGrade(*req.Name)
		if grade == "" {
			return c.Status(400).JSON(fiber.Map{"error": "Class name must include a grade, e.g. \"Grade 3 Section B\""})
		}
		class.Name = *req.Name
		class.Grade = grade
		class.Section = grades.ExtractSection(*req.Name, grade)
	}
	if req.Capacity != nil {
		class.Capacity = *req.Capacity
	}
	if req.Status != nil {
		class.Status = models.RecordStatus(*req.Status)
	}

	if err := UpdateClass(db, class); err != nil {
		log.Printf("Error updating class %s: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update class"})
	}

	return c.JSON(fiber.Map{
		"message": "Class updated successfully",
		"data":    fiber.Map{"class": class},
	})
}

// DeleteClassAPI removes a class record.
func DeleteClassAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	id, err := database.ResolveClassID(db, c.Params("key"))
	if err == database.ErrNotFound {
		return c.Status(404).JSON(fiber.Map{"error": "Class not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch class"})
	}

	if err := DeleteClass(db, id); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Class not found"})
		}
		log.Printf("Error deleting class %s: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete class"})
	}

	return c.JSON(fiber.Map{"message": "Class deleted successfully"})
}

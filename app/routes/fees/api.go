package fees

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

// GetFeesAPI lists fees, optionally filtered by student and status. The
// student filter accepts a code or an object ID.
func GetFeesAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	studentID := ""
	if studentKey := c.Query("student"); studentKey != "" {
		id, err := database.ResolveStudentID(db, studentKey)
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fees"})
		}
		studentID = id
	}

	fees, err := GetFees(db, studentID, c.Query("status"))
	if err != nil {
		log.Printf("Error fetching fees: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fees"})
	}

	return c.JSON(fiber.Map{
		"data":  fiber.Map{"fees": fees},
		"count": len(fees),
	})
}

// GetFeeAPI fetches one fee by object ID or fee code.
func GetFeeAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	id, err := database.ResolveFeeID(db, c.Params("key"))
	if err == database.ErrNotFound {
		return c.Status(404).JSON(fiber.Map{"error": "Fee not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fee"})
	}

	fee, err := GetFeeByID(db, id)
	if err != nil {
		log.Printf("Error fetching fee %s: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fee"})
	}

	return c.JSON(fiber.Map{"data": fiber.Map{"fee": fee}})
}

type createFeeRequest struct {
	FeeID     string `json:"fee_id"`
	StudentID string `json:"student_id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Amount    int64  `json:"amount" validate:"gte=0"`
	DueDate   string `json:"due_date"`
}

// CreateFeeAPI charges a fee to a student, assigning the next "F001"-style
// code when none is supplied.
func CreateFeeAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	var req createFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	studentID, err := database.ResolveStudentID(db, req.StudentID)
	if err == database.ErrNotFound {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown student"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create fee"})
	}

	var dueDate interface{}
	if req.DueDate != "" {
		t, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "due_date must be YYYY-MM-DD"})
		}
		dueDate = t
	}

	if req.FeeID == "" {
		code, err := database.NextCustomID(db, "fees", "fee_id", "F", 3)
		if err != nil {
			log.Printf("Error generating fee code: %v", err)
			return c.Status(500).JSON(fiber.Map{"error": "Failed to create fee"})
		}
		req.FeeID = code
	}

	fee := &models.Fee{
		FeeID:     req.FeeID,
		StudentID: studentID,
		Name:      req.Name,
		Amount:    req.Amount,
		DueDate:   req.DueDate,
		Status:    models.FeePending,
	}

	if err := CreateFee(db, fee, dueDate); err != nil {
		log.Printf("Error creating fee: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create fee"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Fee created successfully",
		"data":    fiber.Map{"fee": fee},
	})
}

type updateFeeRequest struct {
	Name    *string `json:"name"`
	Amount  *int64  `json:"amount" validate:"omitempty,gte=0"`
	DueDate *string `json:"due_date"`
	Status  *string `json:"status" validate:"omitempty,oneof=pending paid overdue"`
}

// UpdateFeeAPI applies a partial update to a fee.
func UpdateFeeAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	id, err := database.ResolveFeeID(db, c.Params("key"))
	if err == database.ErrNotFound {
		return c.Status(404).JSON(fiber.Map{"error": "Fee not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fee"})
	}

	fee, err := GetFeeByID(db, id)
	if err != nil {
		log.Printf("Error fetching fee %s: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fee"})
	}

	var req updateFeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if req.Name != nil {
		fee.Name = *req.Name
	}
	if req.Amount != nil {
		fee.Amount = *req.Amount
	}
	if req.DueDate != nil {
		fee.DueDate = *req.DueDate
	}
	if req.Status != nil {
		fee.Status = models.FeeStatus(*req.Status)
	}

	var dueDate interface{}
	if fee.DueDate != "" {
		t, err := time.Parse("2006-01-02", fee.DueDate)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "due_date must be YYYY-MM-DD"})
		}
		dueDate = t
	}

	if err := UpdateFee(db, fee, dueDate); err != nil {
		log.Printf("Error updating fee %s: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update fee"})
	}

	return c.JSON(fiber.Map{
		"message": "Fee updated successfully",
		"data":    fiber.Map{"fee": fee},
	})
}

// PayFeeAPI marks a fee paid as of today.
func PayFeeAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	id, err := database.ResolveFeeID(db, c.Params("key"))
	if err == database.ErrNotFound {
		return c.Status(404).JSON(fiber.Map{"error": "Fee not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fee"})
	}

	if err := MarkFeePaid(db, id, time.Now()); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Fee not found"})
		}
		log.Printf("Error marking fee %s paid: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update fee"})
	}

	fee, err := GetFeeByID(db, id)
	if err != nil {
		return c.JSON(fiber.Map{"message": "Fee marked paid"})
	}
	return c.JSON(fiber.Map{
		"message": "Fee marked paid",
		"data":    fiber.Map{"fee": fee},
	})
}

// DeleteFeeAPI removes a fee record.
func DeleteFeeAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	id, err := database.ResolveFeeID(db, c.Params("key"))
	if err == database.ErrNotFound {
		return c.Status(404).JSON(fiber.Map{"error": "Fee not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fee"})
	}

	if err := DeleteFee(db, id); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Fee not found"})
		}
		log.Printf("Error deleting fee %s: %v", id, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete fee"})
	}

	return c.JSON(fiber.Map{"message": "Fee deleted successfully"})
}

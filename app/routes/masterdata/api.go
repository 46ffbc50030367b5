package masterdata

import (
	"database/sql"
	"strconv"

	"brightwood-schools/app/config"
	"brightwood-schools/app/models"
	"brightwood-schools/app/validation"

	"github.com/gofiber/fiber/v2"
)

// GetMasterDataAPI serves `GET /api/master-data?type=room`.
func GetMasterDataAPI(c *fiber.Ctx) error {
	recordType := c.Query("type")
	if recordType == "" {
		return c.Status(400).JSON(fiber.Map{"error": "type query parameter is required"})
	}

	records, err := GetRoomsByType(config.GetDB(), recordType)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch master data"})
	}

	return c.JSON(fiber.Map{
		"data":  records,
		"count": len(records),
	})
}

func CreateMasterDataAPI(c *fiber.Ctx) error {
	type CreateRequest struct {
		Type      string                `json:"type" validate:"required"`
		Code      string                `json:"code"`
		Name      string                `json:"name" validate:"required"`
		TimeSlots []models.RoomTimeSlot `json:"time_slots"`
	}

	var req CreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	room := &models.Room{
		Type:      req.Type,
		Code:      req.Code,
		Name:      req.Name,
		TimeSlots: req.TimeSlots,
	}

	if err := CreateRoom(config.GetDB(), room); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create master data record"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Master data record created successfully",
		"data":    room,
	})
}

func UpdateMasterDataAPI(c *fiber.Ctx) error {
	type UpdateRequest struct {
		Name      *string                `json:"name"`
		TimeSlots *[]models.RoomTimeSlot `json:"time_slots"`
	}

	var req UpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	db := config.GetDB()
	room, err := GetRoomByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Master data record not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch master data record"})
	}

	if req.Name != nil {
		room.Name = *req.Name
	}
	if req.TimeSlots != nil {
		room.TimeSlots = *req.TimeSlots
	}

	if err := UpdateRoom(db, room); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update master data record"})
	}

	return c.JSON(fiber.Map{
		"message": "Master data record updated successfully",
		"data":    room,
	})
}

// AddTimeSlotAPI inserts a named time slot into a room's slot list. The
// optional "at" index defaults to appending.
func AddTimeSlotAPI(c *fiber.Ctx) error {
	type SlotRequest struct {
		Name      string `json:"name" validate:"required"`
		StartTime string `json:"start_time" validate:"required"`
		EndTime   string `json:"end_time" validate:"required"`
		At        *int   `json:"at"`
	}

	var req SlotRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	db := config.GetDB()
	room, err := GetRoomByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Room not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch room"})
	}

	at := len(room.TimeSlots)
	if req.At != nil {
		at = *req.At
	}

	slots, err := InsertTimeSlot(room.TimeSlots, at, models.RoomTimeSlot{
		Name:      req.Name,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	room.TimeSlots = slots

	if err := UpdateRoom(db, room); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save time slots"})
	}

	return c.JSON(fiber.Map{
		"message": "Time slot added successfully",
		"data":    room,
	})
}

func RemoveTimeSlotAPI(c *fiber.Ctx) error {
	at, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid slot index"})
	}

	db := config.GetDB()
	room, err := GetRoomByID(db, c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Room not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch room"})
	}

	slots, err := RemoveTimeSlot(room.TimeSlots, at)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	room.TimeSlots = slots

	if err := UpdateRoom(db, room); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save time slots"})
	}

	return c.JSON(fiber.Map{
		"message": "Time slot removed successfully",
		"data":    room,
	})
}

func DeleteMasterDataAPI(c *fiber.Ctx) error {
	if err := DeleteRoom(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Master data record not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete master data record"})
	}

	return c.JSON(fiber.Map{"message": "Master data record deleted successfully"})
}

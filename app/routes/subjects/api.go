package subjects

import (
	"database/sql"
	"fmt"
	"log"

	"brightwood-schools/app/config"
	"brightwood-schools/app/database"
	"brightwood-schools/app/grades"
	"brightwood-schools/app/models"
	"brightwood-schools/app/routes/masterdata"
	"brightwood-schools/app/validation"

	"github.com/gofiber/fiber/v2"
)

func GetSubjectsAPI(c *fiber.Ctx) error {
	subjects, err := GetAllSubjects(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch subjects"})
	}

	return c.JSON(fiber.Map{
		"data":  fiber.Map{"subjects": subjects},
		"count": len(subjects),
	})
}

func GetSubjectAPI(c *fiber.Ctx) error {
	id, err := database.ResolveSubjectID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Subject not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to resolve subject"})
	}

	subject, err := GetSubjectByID(config.GetDB(), id)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch subject"})
	}

	return c.JSON(fiber.Map{"subject": subject})
}

func CreateSubjectAPI(c *fiber.Ctx) error {
	type CreateSubjectRequest struct {
		Code  string `json:"code"`
		Name  string `json:"name" validate:"required"`
		Grade string `json:"grade"`
	}

	var req CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	db := config.GetDB()
	code := req.Code
	if code == "" {
		var err error
		code, err = database.NextCustomID(db, "subjects", "code", "SUB", 3)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to generate subject code"})
		}
	}

	subject := &models.Subject{
		Code:     code,
		Name:     req.Name,
		Grade:    req.Grade,
		Status:   models.StatusActive,
		Schedule: []models.ScheduleEntry{},
	}
	if subject.Grade != "" {
		subject.Grade = grades.NormalizeGrade(subject.Grade)
	}

	if err := CreateSubject(db, subject); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create subject"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Subject created successfully",
		"subject": subject,
	})
}

// UpdateSubjectAPI updates a subject's fields and, when the body carries a
// schedule array, replaces the whole schedule after validating every entry
// and running the conflict checks. A single invalid or conflicting entry
// rejects the entire save; partial application of a batch is never allowed.
func UpdateSubjectAPI(c *fiber.Ctx) error {
	type UpdateSubjectRequest struct {
		Name     *string                 `json:"name"`
		Grade    *string                 `json:"grade"`
		Status   *models.RecordStatus    `json:"status"`
		Schedule *[]models.ScheduleEntry `json:"schedule"`
	}

	var req UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	db := config.GetDB()
	id, err := database.ResolveSubjectID(db, c.Params("id"))
	if err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Subject not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to resolve subject"})
	}

	subject, err := GetSubjectByID(db, id)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch subject"})
	}

	if req.Name != nil {
		subject.Name = *req.Name
	}
	if req.Grade != nil {
		subject.Grade = *req.Grade
		if subject.Grade != "" {
			subject.Grade = grades.NormalizeGrade(subject.Grade)
		}
	}
	if req.Status != nil {
		if *req.Status != models.StatusActive && *req.Status != models.StatusInactive {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid status. Must be Active or Inactive"})
		}
		subject.Status = *req.Status
	}

	// Nothing is written until the whole save has passed validation; a
	// rejected schedule must not leave the metadata half already committed.
	if req.Schedule == nil {
		if err := UpdateSubject(db, subject); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to update subject"})
		}
	} else {
		entries := *req.Schedule
		if status, resp := validateAndCheckSchedule(db, subject, entries); resp != nil {
			return c.Status(status).JSON(resp)
		}
		subject.Schedule = normalizeEntries(entries)
		if err := ReplaceSubject(db, subject); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to save schedule"})
		}
	}

	return c.JSON(fiber.Map{
		"message": "Subject updated successfully",
		"subject": subject,
	})
}

// normalizeEntries canonicalizes day names and slot indexes before the
// schedule is persisted, so stored entries always carry the capitalized day
// and the plain decimal slot form later checks compare against.
func normalizeEntries(entries []models.ScheduleEntry) []models.ScheduleEntry {
	out := make([]models.ScheduleEntry, len(entries))
	for i, entry := range entries {
		entry.Day = models.NormalizeDay(entry.Day)
		if slot, ok := NormalizeSlot(entry.Slot); ok {
			entry.Slot = slot
		}
		out[i] = entry
	}
	return out
}

// validateAndCheckSchedule runs the pre-flight gate for a schedule save:
// per-entry field validation, the intra-batch self check, then the scan
// against every other subject's persisted entries. The first problem found
// aborts the whole batch. Returns (status, body) when the save must be
// rejected, or (0, nil) to proceed.
func validateAndCheckSchedule(db *sql.DB, subject *models.Subject, entries []models.ScheduleEntry) (int, fiber.Map) {
	rooms, err := masterdata.GetRoomsByType(db, "room")
	if err != nil {
		return 500, fiber.Map{"error": "Failed to load room master data"}
	}
	roomSlots := make(map[string]int, len(rooms))
	for _, room := range rooms {
		roomSlots[room.Code] = len(room.TimeSlots)
	}

	normalized := normalizeEntries(entries)
	if status, resp := validateEntries(normalized, roomSlots); resp != nil {
		return status, resp
	}

	if conflict := CheckDraftConflicts(normalized, subject.Label()); conflict != nil {
		return 409, conflictResponse(conflict, "Two entries in this save claim the same combination")
	}

	all, err := GetAllSubjects(db)
	if err != nil {
		return 500, fiber.Map{"error": "Failed to fetch subjects for conflict check"}
	}
	others := make([]OwnedSchedule, 0, len(all))
	for _, other := range all {
		if other.ID == subject.ID {
			continue
		}
		others = append(others, OwnedSchedule{Label: other.Label(), Entries: other.Schedule})
	}

	for _, entry := range normalized {
		if conflict := CheckConflict(entry, others); conflict != nil {
			log.Printf("Schedule conflict for subject %s: %s already taken by %s (%s %s slot %s)",
				subject.Label(), conflict.Kind, conflict.Subject, conflict.Day, conflict.Room, conflict.Slot)
			return 409, conflictResponse(conflict, "")
		}
	}

	return 0, nil
}

// validateEntries checks every normalized entry against the field rules and
// the room slot map. It performs no writes; the caller persists only after
// the whole batch passes. Returns (status, body) for the first bad entry, or
// (0, nil) when all are valid.
func validateEntries(normalized []models.ScheduleEntry, roomSlots map[string]int) (int, fiber.Map) {
	for i, entry := range normalized {
		if !models.IsValidDay(entry.Day) {
			return 400, fiber.Map{"error": fmt.Sprintf("Entry %d: invalid or missing day", i+1)}
		}
		if entry.Grade == "" || entry.Section == "" {
			return 400, fiber.Map{"error": fmt.Sprintf("Entry %d: grade and section are required", i+1)}
		}
		if entry.Room == "" {
			return 400, fiber.Map{"error": fmt.Sprintf("Entry %d: room is required", i+1)}
		}
		if !validateTimeFormat(entry.StartTime) || !validateTimeFormat(entry.EndTime) {
			return 400, fiber.Map{"error": fmt.Sprintf("Entry %d: start and end times must be HH:MM", i+1)}
		}

		slotCount, known := roomSlots[entry.Room]
		if !known {
			return 400, fiber.Map{"error": fmt.Sprintf("Entry %d: unknown room %q", i+1, entry.Room)}
		}
		slot, slotted := NormalizeSlot(entry.Slot)
		if slotCount == 0 {
			// Legacy single-window room: no slot list, entries stay unslotted.
			if slotted {
				return 400, fiber.Map{"error": fmt.Sprintf("Entry %d: room %q has no configured time slots", i+1, entry.Room)}
			}
			continue
		}
		if !slotted {
			return 400, fiber.Map{"error": fmt.Sprintf("Entry %d: slot is required for room %q", i+1, entry.Room)}
		}
		if idx := mustAtoi(slot); idx >= slotCount {
			return 400, fiber.Map{"error": fmt.Sprintf("Entry %d: slot %s does not exist in room %q", i+1, slot, entry.Room)}
		}
	}
	return 0, nil
}

func conflictResponse(conflict *Conflict, note string) fiber.Map {
	message := fmt.Sprintf("%s conflict: %s already occupies slot %s on %s",
		conflict.Kind, conflict.Subject, conflict.Slot, conflict.Day)
	if conflict.Kind == "room" {
		message = fmt.Sprintf("Room conflict: %s already occupies room %s, slot %s on %s",
			conflict.Subject, conflict.Room, conflict.Slot, conflict.Day)
	} else if conflict.Kind == "teacher" {
		message = fmt.Sprintf("Teacher conflict: the teacher is already booked by %s at slot %s on %s",
			conflict.Subject, conflict.Slot, conflict.Day)
	}
	if note != "" {
		message = note + ". " + message
	}
	return fiber.Map{
		"error":    message,
		"conflict": conflict,
	}
}

func validateTimeFormat(timeStr string) bool {
	if len(timeStr) != 5 || timeStr[2] != ':' {
		return false
	}
	for i, c := range timeStr {
		if i == 2 {
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	hh := int(timeStr[0]-'0')*10 + int(timeStr[1]-'0')
	mm := int(timeStr[3]-'0')*10 + int(timeStr[4]-'0')
	return hh < 24 && mm < 60
}

func mustAtoi(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}

func DeleteSubjectAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	id, err := database.ResolveSubjectID(db, c.Params("id"))
	if err != nil {
		if err == database.ErrNotFound {
			return c.Status(404).JSON(fiber.Map{"error": "Subject not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to resolve subject"})
	}

	if err := DeleteSubject(db, id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete subject"})
	}

	return c.JSON(fiber.Map{"message": "Subject deleted successfully"})
}

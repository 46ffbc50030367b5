package masterdata

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"brightwood-schools/app/models"
)

const roomColumns = `id, type, code, name, time_slots, created_at, updated_at`

func scanRoom(row interface {
	Scan(dest ...interface{}) error
}) (*models.Room, error) {
	var room models.Room
	var slotsJSON []byte

	err := row.Scan(
		&room.ID, &room.Type, &room.Code, &room.Name,
		&slotsJSON, &room.CreatedAt, &room.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(slotsJSON, &room.TimeSlots); err != nil {
		return nil, fmt.Errorf("failed to decode time slots for room %s: %v", room.ID, err)
	}
	if room.TimeSlots == nil {
		room.TimeSlots = []models.RoomTimeSlot{}
	}
	return &room, nil
}

// GetRoomsByType returns all master-data records of the given type.
func GetRoomsByType(db *sql.DB, recordType string) ([]*models.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM master_data WHERE type = $1 ORDER BY code, name`

	rows, err := db.Query(query, recordType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*models.Room, 0)
	for rows.Next() {
		record, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// GetRoomByID retrieves a single master-data record by object ID.
func GetRoomByID(db *sql.DB, id string) (*models.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM master_data WHERE id = $1`
	return scanRoom(db.QueryRow(query, id))
}

// CreateRoom inserts a new master-data record.
func CreateRoom(db *sql.DB, room *models.Room) error {
	room.ID = models.NewObjectID()
	if room.TimeSlots == nil {
		room.TimeSlots = []models.RoomTimeSlot{}
	}
	slotsJSON, err := json.Marshal(room.TimeSlots)
	if err != nil {
		return err
	}

	query := `INSERT INTO master_data (id, type, code, name, time_slots, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, NOW(), NOW())`
	_, err = db.Exec(query, room.ID, room.Type, room.Code, room.Name, slotsJSON)
	if err != nil {
		return fmt.Errorf("failed to create master data record: %v", err)
	}
	return nil
}

// UpdateRoom updates a record's name and full time-slot list.
func UpdateRoom(db *sql.DB, room *models.Room) error {
	slotsJSON, err := json.Marshal(room.TimeSlots)
	if err != nil {
		return err
	}

	query := `UPDATE master_data SET name = $1, time_slots = $2, updated_at = NOW() WHERE id = $3`
	result, err := db.Exec(query, room.Name, slotsJSON, room.ID)
	if err != nil {
		return fmt.Errorf("failed to update master data record: %v", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteRoom removes a master-data record.
func DeleteRoom(db *sql.DB, id string) error {
	result, err := db.Exec(`DELETE FROM master_data WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete master data record: %v", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

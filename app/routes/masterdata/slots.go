package masterdata

import (
	"fmt"

	"brightwood-schools/app/models"
)

// InsertTimeSlot inserts a slot at the given index, shifting later slots up.
// Passing at == len(slots) appends. The result stays contiguous from 0, the
// property schedule entries rely on when referencing slots by index.
func InsertTimeSlot(slots []models.RoomTimeSlot, at int, slot models.RoomTimeSlot) ([]models.RoomTimeSlot, error) {
	if at < 0 || at > len(slots) {
		return nil, fmt.Errorf("slot index %d out of range [0, %d]", at, len(slots))
	}
	out := make([]models.RoomTimeSlot, 0, len(slots)+1)
	out = append(out, slots[:at]...)
	out = append(out, slot)
	out = append(out, slots[at:]...)
	return out, nil
}

// RemoveTimeSlot removes the slot at the given index, shifting later slots
// down so indexes stay contiguous.
func RemoveTimeSlot(slots []models.RoomTimeSlot, at int) ([]models.RoomTimeSlot, error) {
	if at < 0 || at >= len(slots) {
		return nil, fmt.Errorf("slot index %d out of range [0, %d)", at, len(slots))
	}
	out := make([]models.RoomTimeSlot, 0, len(slots)-1)
	out = append(out, slots[:at]...)
	out = append(out, slots[at+1:]...)
	return out, nil
}

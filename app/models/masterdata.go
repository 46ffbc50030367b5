package models

import "time"

// RoomTimeSlot is a named time window belonging to a room. The slot's index
// in the room's TimeSlots array is its canonical identifier; schedule entries
// reference it by that index, so the array must stay contiguous from 0.
type RoomTimeSlot struct {
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Room is a master-data record of type "room". Rooms with an empty TimeSlots
// list are legacy single-window rooms; schedule entries for them carry no
// slot index and bypass slot-based conflict checking.
type Room struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Code      string         `json:"code"`
	Name      string         `json:"name" validate:"required"`
	TimeSlots []RoomTimeSlot `json:"time_slots"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

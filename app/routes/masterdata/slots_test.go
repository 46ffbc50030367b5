package masterdata

import (
	"testing"

	"brightwood-schools/app/models"

	"github.com/stretchr/testify/require"
)

func slot(name string) models.RoomTimeSlot {
	return models.RoomTimeSlot{Name: name, StartTime: "08:00", EndTime: "09:00"}
}

func TestInsertTimeSlot(t *testing.T) {
	slots := []models.RoomTimeSlot{slot("Slot 1"), slot("Slot 2")}

	appended, err := InsertTimeSlot(slots, 2, slot("Slot 3"))
	require.NoError(t, err)
	require.Len(t, appended, 3)
	require.Equal(t, "Slot 3", appended[2].Name)

	inserted, err := InsertTimeSlot(slots, 0, slot("Early"))
	require.NoError(t, err)
	require.Equal(t, []string{"Early", "Slot 1", "Slot 2"}, slotNames(inserted))

	_, err = InsertTimeSlot(slots, 5, slot("Late"))
	require.Error(t, err)
	_, err = InsertTimeSlot(slots, -1, slot("Late"))
	require.Error(t, err)
}

func TestRemoveTimeSlotKeepsIndexesContiguous(t *testing.T) {
	slots := []models.RoomTimeSlot{slot("Slot 1"), slot("Slot 2"), slot("Slot 3")}

	out, err := RemoveTimeSlot(slots, 1)
	require.NoError(t, err)
	require.Equal(t, []string{"Slot 1", "Slot 3"}, slotNames(out))

	_, err = RemoveTimeSlot(out, 2)
	require.Error(t, err)

	empty, err := RemoveTimeSlot(out, 0)
	require.NoError(t, err)
	out, err = RemoveTimeSlot(empty, 0)
	require.NoError(t, err)
	require.Empty(t, out)

	_, err = RemoveTimeSlot(out, 0)
	require.Error(t, err)
}

func slotNames(slots []models.RoomTimeSlot) []string {
	names := make([]string, len(slots))
	for i, s := range slots {
		names[i] = s.Name
	}
	return names
}

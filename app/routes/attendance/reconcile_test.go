package attendance

import (
	"errors"
	"strings"
	"testing"

	"brightwood-schools/app/models"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStudent(id, code, first, last string) *models.Student {
	return &models.Student{ID: id, StudentID: code, FirstName: first, LastName: last}
}

const (
	idAlice = "65f1a2b3c4d5e6f708192a3b"
	idBob   = "65f1a2b3c4d5e6f708192a3c"
	idCarol = "65f1a2b3c4d5e6f708192a3d"
)

func TestBuildRosterDefaultsPresent(t *testing.T) {
	students := []*models.Student{
		testStudent(idAlice, "S001", "Alice", "Auma"),
		testStudent(idBob, "S002", "Bob", "Okello"),
	}

	rows, sourceID := BuildRoster(students, nil)

	require.Len(t, rows, 2)
	assert.Equal(t, "", sourceID)
	for _, row := range rows {
		assert.Equal(t, "present", row.Status)
	}
	assert.Equal(t, "Alice Auma", rows[0].Name)
	assert.Equal(t, "S001", rows[0].StudentCode)
}

func TestBuildRosterMergesExistingMarks(t *testing.T) {
	students := []*models.Student{
		testStudent(idAlice, "S001", "Alice", "Auma"),
		testStudent(idBob, "S002", "Bob", "Okello"),
		testStudent(idCarol, "S003", "Carol", "Nanteza"),
	}
	existing := &models.AttendanceDocument{
		ID:        "65f1a2b3c4d5e6f708192aff",
		ClassName: "Grade 1 Section A",
		Date:      "2026-03-02",
		Students: []models.AttendanceMark{
			{StudentID: idAlice, Status: models.Absent, Remarks: "sick"},
			{StudentID: idCarol, Status: models.Excused},
		},
	}

	rows, sourceID := BuildRoster(students, existing)

	require.Len(t, rows, 3)
	assert.Equal(t, existing.ID, sourceID)
	assert.Equal(t, "absent", rows[0].Status)
	assert.Equal(t, "sick", rows[0].Remarks)
	// no prior mark, defaults to present
	assert.Equal(t, "present", rows[1].Status)
	// Excused surfaces as "leave"
	assert.Equal(t, "leave", rows[2].Status)
}

func TestBuildRosterIgnoresMarksForDepartedStudents(t *testing.T) {
	students := []*models.Student{
		testStudent(idAlice, "S001", "Alice", "Auma"),
	}
	existing := &models.AttendanceDocument{
		ID: "65f1a2b3c4d5e6f708192aff",
		Students: []models.AttendanceMark{
			{StudentID: idBob, Status: models.Late},
		},
	}

	rows, _ := BuildRoster(students, existing)

	require.Len(t, rows, 1)
	assert.Equal(t, idAlice, rows[0].StudentID)
	assert.Equal(t, "present", rows[0].Status)
}

func TestStatusRoundTrip(t *testing.T) {
	students := []*models.Student{
		testStudent(idAlice, "S001", "Alice", "Auma"),
		testStudent(idBob, "S002", "Bob", "Okello"),
		testStudent(idCarol, "S003", "Carol", "Nanteza"),
	}
	original := &models.AttendanceDocument{
		ID: "65f1a2b3c4d5e6f708192aff",
		Students: []models.AttendanceMark{
			{StudentID: idAlice, Status: models.Present},
			{StudentID: idBob, Status: models.Late, Remarks: "bus"},
			{StudentID: idCarol, Status: models.Excused},
		},
	}

	rows, _ := BuildRoster(students, original)
	doc, err := BuildSavePayload(rows, "Grade 1 Section A", "2026-03-02")

	require.NoError(t, err)
	require.Len(t, doc.Students, 3)
	assert.Equal(t, original.Students[0].Status, doc.Students[0].Status)
	assert.Equal(t, original.Students[1].Status, doc.Students[1].Status)
	assert.Equal(t, "bus", doc.Students[1].Remarks)
	assert.Equal(t, models.Excused, doc.Students[2].Status)
}

func TestBuildSavePayloadRejectsBadStudentID(t *testing.T) {
	rows := []models.RosterRow{
		{StudentID: idAlice, Status: "present"},
		{StudentID: "S002", Status: "absent"},
	}

	doc, err := BuildSavePayload(rows, "Grade 1 Section A", "2026-03-02")

	require.Error(t, err)
	assert.Nil(t, doc)
	assert.True(t, strings.Contains(err.Error(), "S002"))
}

func TestBuildSavePayloadRejectsUnknownStatus(t *testing.T) {
	rows := []models.RosterRow{
		{StudentID: idAlice, Status: "present"},
		{StudentID: idBob, Status: "excused"},
	}

	doc, err := BuildSavePayload(rows, "Grade 1 Section A", "2026-03-02")

	require.Error(t, err)
	assert.Nil(t, doc)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pq.Error{Code: "23505"}))
	assert.False(t, IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("connection refused")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestSaveMarksCreatesWhenNoRace(t *testing.T) {
	doc := &models.AttendanceDocument{ClassName: "Grade 1 Section A", Date: "2026-03-02"}
	updates := 0

	id, created, err := saveMarks(doc,
		func(d *models.AttendanceDocument) error {
			d.ID = idAlice
			return nil
		},
		func() (*models.AttendanceDocument, error) {
			t.Fatal("should not re-fetch on a clean create")
			return nil, nil
		},
		func(string, []models.AttendanceMark) error {
			updates++
			return nil
		},
	)

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, idAlice, id)
	assert.Equal(t, 0, updates)
}

func TestSaveMarksRetriesAsUpdateOnDuplicate(t *testing.T) {
	doc := &models.AttendanceDocument{
		ClassName: "Grade 1 Section A",
		Date:      "2026-03-02",
		Students:  []models.AttendanceMark{{StudentID: idAlice, Status: models.Absent}},
	}
	existing := &models.AttendanceDocument{ID: idBob}
	var updatedID string
	var updatedMarks []models.AttendanceMark

	id, created, err := saveMarks(doc,
		func(*models.AttendanceDocument) error { return &pq.Error{Code: "23505"} },
		func() (*models.AttendanceDocument, error) { return existing, nil },
		func(id string, marks []models.AttendanceMark) error {
			updatedID = id
			updatedMarks = marks
			return nil
		},
	)

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, idBob, id)
	assert.Equal(t, idBob, updatedID)
	assert.Equal(t, doc.Students, updatedMarks)
}

func TestSaveMarksRetriesOnlyOnce(t *testing.T) {
	doc := &models.AttendanceDocument{ClassName: "Grade 1 Section A", Date: "2026-03-02"}
	creates, updates := 0, 0

	_, _, err := saveMarks(doc,
		func(*models.AttendanceDocument) error {
			creates++
			return &pq.Error{Code: "23505"}
		},
		func() (*models.AttendanceDocument, error) { return &models.AttendanceDocument{ID: idBob}, nil },
		func(string, []models.AttendanceMark) error {
			updates++
			return errors.New("update lost too")
		},
	)

	require.Error(t, err)
	assert.Equal(t, 1, creates)
	assert.Equal(t, 1, updates)
}

func TestSaveMarksSurfacesOtherCreateErrors(t *testing.T) {
	doc := &models.AttendanceDocument{ClassName: "Grade 1 Section A", Date: "2026-03-02"}

	_, _, err := saveMarks(doc,
		func(*models.AttendanceDocument) error { return errors.New("connection refused") },
		func() (*models.AttendanceDocument, error) {
			t.Fatal("should not re-fetch on a non-duplicate error")
			return nil, nil
		},
		func(string, []models.AttendanceMark) error {
			t.Fatal("should not update on a non-duplicate error")
			return nil
		},
	)

	require.Error(t, err)
}

func TestBuildSavePayloadKeepsRowOrder(t *testing.T) {
	rows := []models.RosterRow{
		{StudentID: idCarol, Status: "late"},
		{StudentID: idAlice, Status: "leave"},
	}

	doc, err := BuildSavePayload(rows, "Grade 2 Section B", "2026-03-02")

	require.NoError(t, err)
	assert.Equal(t, "Grade 2 Section B", doc.ClassName)
	assert.Equal(t, "2026-03-02", doc.Date)
	require.Len(t, doc.Students, 2)
	assert.Equal(t, idCarol, doc.Students[0].StudentID)
	assert.Equal(t, models.Late, doc.Students[0].Status)
	assert.Equal(t, models.Excused, doc.Students[1].Status)
}

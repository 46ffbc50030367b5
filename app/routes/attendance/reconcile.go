package attendance

import (
	"fmt"

	"brightwood-schools/app/models"
)

// The persisted statuses and the UI statuses are two fixed vocabularies
// related by a bijection; "Excused" appears to attendance takers as "leave".
var statusToUI = map[models.AttendanceStatus]string{
	models.Present: "present",
	models.Absent:  "absent",
	models.Late:    "late",
	models.Excused: "leave",
}

var uiToStatus = map[string]models.AttendanceStatus{
	"present": models.Present,
	"absent":  models.Absent,
	"late":    models.Late,
	"leave":   models.Excused,
}

// BuildRoster merges a freshly loaded class roster with any previously saved
// attendance document for the same (class, date). Prior marks are matched by
// student object ID; students without one default to present. The returned
// document ID ("" when no document exists yet) must accompany a later save
// so it updates the existing document instead of creating a duplicate.
func BuildRoster(students []*models.Student, existing *models.AttendanceDocument) ([]models.RosterRow, string) {
	marks := make(map[string]models.AttendanceMark)
	sourceID := ""
	if existing != nil {
		sourceID = existing.ID
		for _, mark := range existing.Students {
			marks[mark.StudentID] = mark
		}
	}

	rows := make([]models.RosterRow, 0, len(students))
	for _, student := range students {
		row := models.RosterRow{
			StudentID:   student.ID,
			StudentCode: student.StudentID,
			Name:        student.FirstName + " " + student.LastName,
			Status:      "present",
		}
		if mark, ok := marks[student.ID]; ok {
			if ui, known := statusToUI[mark.Status]; known {
				row.Status = ui
			}
			row.Remarks = mark.Remarks
		}
		rows = append(rows, row)
	}
	return rows, sourceID
}

// saveMarks runs a create that may lose the one-document-per-(class, date)
// race: when create fails with a unique violation, the winning document is
// fetched and the marks are folded into it as an update. The retry happens
// exactly once; a second failure surfaces to the caller. Returns the saved
// document ID and whether a new document was created.
func saveMarks(
	doc *models.AttendanceDocument,
	create func(*models.AttendanceDocument) error,
	fetchExisting func() (*models.AttendanceDocument, error),
	update func(id string, marks []models.AttendanceMark) error,
) (string, bool, error) {
	err := create(doc)
	if err == nil {
		return doc.ID, true, nil
	}
	if !IsUniqueViolation(err) {
		return "", false, err
	}

	existing, fetchErr := fetchExisting()
	if fetchErr != nil {
		return "", false, fetchErr
	}
	if existing == nil {
		return "", false, fmt.Errorf("attendance for %s on %s vanished after duplicate create", doc.ClassName, doc.Date)
	}
	if updateErr := update(existing.ID, doc.Students); updateErr != nil {
		return "", false, updateErr
	}
	return existing.ID, false, nil
}

// BuildSavePayload maps roster rows back to a persistable attendance
// document. Every row must carry a well-formed object ID and a known UI
// status; one bad row aborts the whole payload, because attendance is saved
// all-or-nothing per class per date.
func BuildSavePayload(rows []models.RosterRow, className, date string) (*models.AttendanceDocument, error) {
	doc := &models.AttendanceDocument{
		ClassName: className,
		Date:      date,
		Students:  make([]models.AttendanceMark, 0, len(rows)),
	}

	for _, row := range rows {
		if !models.IsObjectID(row.StudentID) {
			return nil, fmt.Errorf("invalid student identifier %q", row.StudentID)
		}
		status, ok := uiToStatus[row.Status]
		if !ok {
			return nil, fmt.Errorf("invalid attendance status %q for student %s", row.Status, row.StudentID)
		}
		doc.Students = append(doc.Students, models.AttendanceMark{
			StudentID: row.StudentID,
			Status:    status,
			Remarks:   row.Remarks,
		})
	}
	return doc, nil
}

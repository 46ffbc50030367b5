package dashboard

import (
	"testing"

	"brightwood-schools/app/models"

	"github.com/stretchr/testify/assert"
)

func TestTallyMarks(t *testing.T) {
	summary := &AttendanceSummary{}

	tallyMarks(summary, []models.AttendanceMark{
		{Status: models.Present},
		{Status: models.Present},
		{Status: models.Absent},
		{Status: models.Late},
		{Status: models.Excused},
		{Status: models.AttendanceStatus("bogus")},
	})

	assert.Equal(t, 2, summary.Present)
	assert.Equal(t, 1, summary.Absent)
	assert.Equal(t, 1, summary.Late)
	assert.Equal(t, 1, summary.Excused)
}

package classes

import (
	"testing"

	"brightwood-schools/app/models"

	"github.com/stretchr/testify/assert"
)

func TestCountEnrolledFuzzyLabels(t *testing.T) {
	labels := []string{
		"Grade 1 Section A",
		"Grade 1A",
		"grade 1 a",
		"Grade 1 Section B",
		"Grade 2 Section A",
		"Nursery",
	}

	assert.Equal(t, 3, CountEnrolled("Grade 1", "A", labels))
	assert.Equal(t, 1, CountEnrolled("Grade 1", "B", labels))
	assert.Equal(t, 1, CountEnrolled("Grade 2", "A", labels))
	assert.Equal(t, 0, CountEnrolled("Grade 3", "A", labels))
}

func TestSortClassesByGradeNumberThenSection(t *testing.T) {
	list := []*models.ClassSection{
		{Name: "Grade 10 Section A", Grade: "Grade 10", Section: "A"},
		{Name: "Grade 2 Section B", Grade: "Grade 2", Section: "B"},
		{Name: "Grade 2 Section A", Grade: "Grade 2", Section: "A"},
		{Name: "Grade 1 Section A", Grade: "Grade 1", Section: "A"},
	}

	SortClasses(list)

	assert.Equal(t, "Grade 1 Section A", list[0].Name)
	assert.Equal(t, "Grade 2 Section A", list[1].Name)
	assert.Equal(t, "Grade 2 Section B", list[2].Name)
	assert.Equal(t, "Grade 10 Section A", list[3].Name)
}

func TestSortClassesNonNumericGradeFirst(t *testing.T) {
	list := []*models.ClassSection{
		{Name: "Grade 1 Section A", Grade: "Grade 1", Section: "A"},
		{Name: "Nursery", Grade: "Nursery", Section: ""},
	}

	SortClasses(list)

	assert.Equal(t, "Nursery", list[0].Name)
}

package students

import (
	"testing"

	"brightwood-schools/app/models"

	"github.com/stretchr/testify/assert"
)

func student(code, first, last, class string, status models.RecordStatus) *models.Student {
	return &models.Student{
		StudentID: code,
		FirstName: first,
		LastName:  last,
		ClassName: class,
		Status:    status,
	}
}

func TestMatchesFiltersSearch(t *testing.T) {
	s := student("S014", "Alice", "Auma", "Grade 1 Section A", models.StatusActive)

	assert.True(t, matchesFilters(s, StudentFilters{Search: "alice"}))
	assert.True(t, matchesFilters(s, StudentFilters{Search: "ce au"}))
	assert.True(t, matchesFilters(s, StudentFilters{Search: "s014"}))
	assert.False(t, matchesFilters(s, StudentFilters{Search: "bob"}))
}

func TestMatchesFiltersStatus(t *testing.T) {
	active := student("S001", "Alice", "Auma", "", models.StatusActive)
	inactive := student("S002", "Bob", "Okello", "", models.StatusInactive)

	assert.True(t, matchesFilters(active, StudentFilters{Status: "active"}))
	assert.False(t, matchesFilters(inactive, StudentFilters{Status: "active"}))
	assert.True(t, matchesFilters(inactive, StudentFilters{Status: "Inactive"}))
}

func TestMatchesFiltersClassIsFuzzy(t *testing.T) {
	s := student("S001", "Alice", "Auma", "Grade 1A", models.StatusActive)

	assert.True(t, matchesFilters(s, StudentFilters{Class: "Grade 1 Section A"}))
	assert.False(t, matchesFilters(s, StudentFilters{Class: "Grade 2 Section A"}))
	assert.False(t, matchesFilters(s, StudentFilters{Class: "Grade 1 Section B"}))
}

func TestMatchesFiltersGender(t *testing.T) {
	male := models.Gender("male")
	s := student("S001", "Alice", "Auma", "", models.StatusActive)
	s.Gender = &male
	noGender := student("S002", "Bob", "Okello", "", models.StatusActive)

	assert.True(t, matchesFilters(s, StudentFilters{Gender: "male"}))
	assert.False(t, matchesFilters(s, StudentFilters{Gender: "female"}))
	assert.False(t, matchesFilters(noGender, StudentFilters{Gender: "male"}))
}

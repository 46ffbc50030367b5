package grades

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractGrade(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"full label", "Grade 10 Section B", "Grade 10"},
		{"compact label", "Grade 2A", "Grade 2"},
		{"lowercase", "grade 7 section c", "Grade 7"},
		{"no grade", "Math Lab", ""},
		{"grade word without number", "Grade office", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ExtractGrade(tt.input))
		})
	}
}

// Extracting a grade, appending a section and extracting again must be
// stable for any label that yields a grade.
func TestExtractGradeIdempotent(t *testing.T) {
	labels := []string{"Grade 1 Section A", "Grade 12B", "grade 3", "Senior Grade 9 Section D"}
	for _, label := range labels {
		grade := ExtractGrade(label)
		require.NotEmpty(t, grade)
		require.Equal(t, grade, ExtractGrade(grade+" Section A"))
	}
}

func TestNormalizeGradeOnExtracted(t *testing.T) {
	labels := []string{"Grade 1 Section A", "Grade 10", "grade 4B"}
	for _, label := range labels {
		grade := ExtractGrade(label)
		require.Equal(t, grade, NormalizeGrade(grade), "extracted grades are already normalized")
	}
	require.Equal(t, "Grade 5", NormalizeGrade("5"))
	require.Equal(t, "Grade 5", NormalizeGrade("Grade 5"))
}

func TestExtractSection(t *testing.T) {
	tests := []struct {
		name      string
		className string
		want      string
	}{
		{"full label", "Grade 10 Section B", "B"},
		{"compact label", "Grade 2A", "A"},
		{"no section", "Grade 3", ""},
		{"section word lowercase", "grade 1 section a", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grade := ExtractGrade(tt.className)
			require.Equal(t, tt.want, ExtractSection(tt.className, grade))
		})
	}
}

func TestGradeSortKey(t *testing.T) {
	require.Equal(t, 10, GradeSortKey("Grade 10"))
	require.Equal(t, 2, GradeSortKey("Grade 2"))
	// Unparseable labels sort as 0, before "Grade 1". Preserved behavior.
	require.Equal(t, 0, GradeSortKey("Nursery"))
	require.Equal(t, 0, GradeSortKey(""))
}

func TestMatchesClassSection(t *testing.T) {
	tests := []struct {
		name         string
		studentClass string
		classGrade   string
		classSection string
		want         bool
	}{
		{"exact formats", "Grade 1 Section A", "Grade 1", "A", true},
		{"compact student label", "Grade 1A", "Grade 1", "A", true},
		{"case-insensitive section", "Grade 1 Section a", "Grade 1", "A", true},
		{"different grade", "Grade 2A", "Grade 1", "A", false},
		{"different section", "Grade 1 Section B", "Grade 1", "A", false},
		{"class without section matches all", "Grade 1 Section A", "Grade 1", "", true},
		{"student without section matches all", "Grade 1", "Grade 1", "A", true},
		{"student label without grade", "Math Lab", "Grade 1", "A", false},
		{"section containment tolerance", "Grade 1 Section A ", "Grade 1", " a", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, MatchesClassSection(tt.studentClass, tt.classGrade, tt.classSection))
		})
	}
}

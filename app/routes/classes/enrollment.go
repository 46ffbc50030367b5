package classes

import (
	"sort"

	"brightwood-schools/app/grades"
	"brightwood-schools/app/models"
)

// CountEnrolled counts how many student class labels match a class's grade
// and section. Labels come from free-text admission input, so matching is
// the same fuzzy comparison used everywhere else.
func CountEnrolled(classGrade, classSection string, studentClassNames []string) int {
	count := 0
	for _, name := range studentClassNames {
		if grades.MatchesClassSection(name, classGrade, classSection) {
			count++
		}
	}
	return count
}

// SortClasses orders classes by grade number, then section name. Grade
// labels without a number sort first.
func SortClasses(list []*models.ClassSection) {
	sort.SliceStable(list, func(i, j int) bool {
		ki, kj := grades.GradeSortKey(list[i].Grade), grades.GradeSortKey(list[j].Grade)
		if ki != kj {
			return ki < kj
		}
		return list[i].Section < list[j].Section
	})
}

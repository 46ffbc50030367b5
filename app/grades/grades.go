// Package grades normalizes the free-text grade/section labels that class and
// student records carry ("Grade 1 Section A", "Grade 1A", "1A") so pages can
// match students to classes without relying on exact string equality.
package grades

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	gradeRe   = regexp.MustCompile(`(?i)grade\s+(\d+)`)
	sectionRe = regexp.MustCompile(`(?i)section`)
	digitsRe  = regexp.MustCompile(`\d+`)
)

// ExtractGrade returns the canonical "Grade N" label found in className, or
// "" when the name carries no grade ("Math Lab"). Records without a grade are
// excluded from grade-based grouping.
func ExtractGrade(className string) string {
	m := gradeRe.FindStringSubmatch(className)
	if m == nil {
		return ""
	}
	return "Grade " + m[1]
}

// ExtractSection strips the matched grade prefix and the literal word
// "Section" from className and returns the trimmed remainder. An empty
// result means "all sections" in matching contexts.
func ExtractSection(className, grade string) string {
	rest := className
	if grade != "" {
		if loc := gradeRe.FindStringIndex(rest); loc != nil {
			rest = rest[:loc[0]] + rest[loc[1]:]
		}
	}
	if loc := sectionRe.FindStringIndex(rest); loc != nil {
		rest = rest[:loc[0]] + rest[loc[1]:]
	}
	return strings.TrimSpace(rest)
}

// NormalizeGrade returns input prefixed with "Grade " unless it already
// starts with "Grade".
func NormalizeGrade(input string) string {
	if strings.HasPrefix(input, "Grade") {
		return input
	}
	return "Grade " + input
}

// GradeSortKey extracts the first run of digits from a grade label. Labels
// without digits sort as 0, so malformed grades float to the front of sorted
// listings. That ordering is long-standing behavior; do not change it without
// product sign-off.
func GradeSortKey(grade string) int {
	m := digitsRe.FindString(grade)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}

// GradeNumber returns the numeric grade from any label form, or 0 when the
// label carries no "Grade N" match.
func GradeNumber(label string) int {
	m := gradeRe.FindStringSubmatch(label)
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}

// sectionMatches compares two section labels case-insensitively, accepting
// containment in either direction to tolerate stray whitespace and
// punctuation in legacy records. An empty section on either side matches
// everything.
func sectionMatches(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return true
	}
	return a == b || strings.Contains(a, b) || strings.Contains(b, a)
}

// MatchesClassSection reports whether a student's free-text class label
// refers to the class record identified by classGrade+classSection.
// Historical student records mix formats ("Grade 1A" vs "Grade 1 Section A"),
// so the comparison uses grade-number equality rather than full-string
// equality, and the fuzzy section comparison above. This fuzziness preserves
// matching behavior across already-stored malformed records.
func MatchesClassSection(studentClass, classGrade, classSection string) bool {
	studentGrade := ExtractGrade(studentClass)
	if studentGrade == "" || classGrade == "" {
		return false
	}
	if GradeNumber(studentGrade) != GradeNumber(classGrade) {
		return false
	}
	studentSection := ExtractSection(studentClass, studentGrade)
	return sectionMatches(studentSection, classSection)
}

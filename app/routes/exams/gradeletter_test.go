package exams

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLetterFor(t *testing.T) {
	cases := []struct {
		marks  float64
		letter string
	}{
		{100, "A+"},
		{90, "A+"},
		{89.9, "A"},
		{80, "A"},
		{75, "B"},
		{60, "C"},
		{59.9, "D"},
		{50, "D"},
		{49.9, "F"},
		{0, "F"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.letter, LetterFor(tc.marks), "marks %.1f", tc.marks)
	}
}

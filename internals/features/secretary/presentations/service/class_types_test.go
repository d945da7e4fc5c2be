package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapClassType(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"STD_5", "Five"},
		{"STD_6", "Six"},
		{"STD_7", "Seven"},
		{"STD_8", "Eight"},
		{"STD_9", "Nine"},
		{"STD_10", "Ten"},
		{"STD_11", "Eleven"},
		{"STD_12", "Twelve"},
		{"COLLEGE", "SrCollege"},
		// unknown codes keep the historical fallback
		{"STD_99", "Five"},
		{"", "Five"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, MapClassType(tc.in), "classType %q", tc.in)
	}
}

func TestRowsForClassGroup(t *testing.T) {
	rows, ok := RowsForClassGroup("5-7")
	assert.True(t, ok)
	assert.Equal(t, []string{"STD_5", "STD_6", "STD_7"}, rows)

	rows, ok = RowsForClassGroup("college")
	assert.True(t, ok)
	assert.Equal(t, []string{"STD_11", "STD_12", "COLLEGE"}, rows)

	_, ok = RowsForClassGroup("1-4")
	assert.False(t, ok)
}

func TestValidRating(t *testing.T) {
	for _, r := range []string{"excellent", "good", "better", "satisfactory"} {
		assert.True(t, ValidRating(r), r)
	}
	assert.False(t, ValidRating("amazing"))
	assert.False(t, ValidRating("Excellent"))
}

func TestValidMedium(t *testing.T) {
	for _, m := range []string{"english", "hindi", "marathi", "urdu"} {
		assert.True(t, ValidMedium(m), m)
	}
	assert.False(t, ValidMedium("tamil"))
	assert.False(t, ValidMedium("English"))
}

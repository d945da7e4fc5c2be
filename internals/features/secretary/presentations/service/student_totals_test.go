package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateStudentTotals(t *testing.T) {
	rows := []StudentClassCount{
		{ClassType: "STD_5", Boys: 10, Girls: 8},
		{ClassType: "STD_6", Boys: 9, Girls: 11},
		{ClassType: "STD_7", Boys: 7, Girls: 6},
	}

	totals := CalculateStudentTotals("5-7", rows)
	assert.Equal(t, 26, totals.Boys)
	assert.Equal(t, 25, totals.Girls)
	assert.Equal(t, 51, totals.Total)
}

func TestCalculateStudentTotalsIgnoresOutOfBandRows(t *testing.T) {
	rows := []StudentClassCount{
		{ClassType: "STD_5", Boys: 10, Girls: 8},
		// a stray middle-band row must not inflate a junior submission
		{ClassType: "STD_9", Boys: 100, Girls: 100},
	}

	totals := CalculateStudentTotals("5-7", rows)
	assert.Equal(t, 10, totals.Boys)
	assert.Equal(t, 8, totals.Girls)
	assert.Equal(t, 18, totals.Total)
}

func TestCalculateStudentTotalsUnknownBand(t *testing.T) {
	rows := []StudentClassCount{{ClassType: "STD_5", Boys: 5, Girls: 5}}
	totals := CalculateStudentTotals("1-4", rows)
	assert.Zero(t, totals.Total)
}

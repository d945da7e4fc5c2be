package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func juniorCounts() map[string]int {
	return map[string]int{
		"q1_mobile": 20, "q1_tablet": 10, "q1_laptop": 15, "q1_other": 6,
		"q2_less1": 12, "q2_1to3": 18, "q2_4to6": 14, "q2_more6": 7,
		"q4_knowBetter": 30, "q4_sometimes": 21,
		"p1_diary": 25, "p1_noChange": 26,
		"p2_setLimits": 20, "p2_keepScrolling": 16, "p2_notSure": 15,
		"p3_pauseCheck": 40, "p3_justDownload": 11,
		"p4_doneSharing": 17, "p4_mightStill": 17, "p4_alreadySafe": 17,
	}
}

func TestValidateBalanced(t *testing.T) {
	errs := Validate(VariantJunior, juniorCounts(), 51)
	assert.Empty(t, errs)
}

func TestValidateUnbalancedGroup(t *testing.T) {
	counts := juniorCounts()
	counts["q1_other"] = 5 // Q1 now sums to 50 against 51 students

	errs := Validate(VariantJunior, counts, 51)
	require.Len(t, errs, 1)
	assert.Equal(t, "Q1: Total responses (50) must equal 51 students", errs[0])
}

func TestValidateOverCountFailsToo(t *testing.T) {
	counts := juniorCounts()
	counts["q2_more6"] = 8 // one extra response is as wrong as one missing

	errs := Validate(VariantJunior, counts, 51)
	require.Len(t, errs, 1)
	assert.Equal(t, "Q2: Total responses (52) must equal 51 students", errs[0])
}

func TestValidateMissingBucketsCountAsZero(t *testing.T) {
	errs := Validate(VariantJunior, map[string]int{}, 51)
	// every group fails with a zero total
	require.Len(t, errs, 7)
	assert.Equal(t, "Q1: Total responses (0) must equal 51 students", errs[0])
}

func TestValidateImpactUsesParticipants(t *testing.T) {
	counts := map[string]int{
		"q1_neverShare": 10, "q1_sometimesAvoid": 5, "q1_feelsNormal": 4,
	}
	errs := Validate(VariantImpact, counts, 20)
	require.NotEmpty(t, errs)
	assert.Equal(t, "Q1: Total responses (19) must equal 20 participants", errs[0])
	assert.Contains(t, errs[1], "must equal 20 participants")
}

func TestValidateRejectsUnknownKeys(t *testing.T) {
	counts := juniorCounts()
	counts["q9_bogus"] = 51

	errs := Validate(VariantJunior, counts, 51)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], `unknown response key "q9_bogus"`)
}

func TestValidateUnknownVariant(t *testing.T) {
	errs := Validate("adults", map[string]int{}, 10)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "unknown survey variant")
}

func TestVariantForClassGroup(t *testing.T) {
	v, ok := VariantForClassGroup("8-10")
	assert.True(t, ok)
	assert.Equal(t, VariantMiddle, v)

	_, ok = VariantForClassGroup("impact")
	assert.False(t, ok)
}

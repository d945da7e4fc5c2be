package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCountsFromFormEnvelope(t *testing.T) {
	// the shape the junior feedback form submits: buckets nested under
	// responseCounts, with identifiers and topApps riding alongside
	blob := []byte(`{
		"presentationId": "3f1c9a2e-8a5d-4a51-9c8e-0f6b1d2a7c44",
		"totalStudents": 51,
		"responseCounts": {
			"q1_mobile": 20, "q1_tablet": 10, "q1_laptop": 15, "q1_other": 6,
			"q2_less1": 12, "q2_1to3": 18, "q2_4to6": 14, "q2_more6": 7,
			"q4_knowBetter": 30, "q4_sometimes": 21,
			"p1_diary": 25, "p1_noChange": 26,
			"p2_setLimits": 20, "p2_keepScrolling": 16, "p2_notSure": 15,
			"p3_pauseCheck": 40, "p3_justDownload": 11,
			"p4_doneSharing": 17, "p4_mightStill": 17, "p4_alreadySafe": 17
		},
		"topApps": ["YouTube", "WhatsApp", ""],
		"classGroup": "5-7"
	}`)

	counts, err := ExtractCounts(blob)
	require.NoError(t, err)
	assert.Equal(t, 20, counts["q1_mobile"])
	assert.Equal(t, 21, counts["q4_sometimes"])

	// the extracted buckets balance against the stored audience size
	assert.Empty(t, Validate(VariantJunior, counts, 51))
}

func TestExtractCountsFromImpactEnvelope(t *testing.T) {
	blob := []byte(`{
		"impactId": "7b2d4e6f-1a3c-4d5e-8f90-112233445566",
		"totalParticipants": 20,
		"responseCounts": {"q1_neverShare": 10, "q1_sometimesAvoid": 5, "q1_feelsNormal": 5}
	}`)

	counts, err := ExtractCounts(blob)
	require.NoError(t, err)
	assert.Equal(t, 10, counts["q1_neverShare"])

	errs := Validate(VariantImpact, counts, 20)
	// Q1 balances; the remaining groups report their zero totals
	for _, e := range errs {
		assert.NotContains(t, e, "Q1:")
	}
}

func TestExtractCountsFromBareMap(t *testing.T) {
	counts, err := ExtractCounts([]byte(`{"q1_mobile": 3, "q1_tablet": 2}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"q1_mobile": 3, "q1_tablet": 2}, counts)
}

func TestExtractCountsRejectsGarbage(t *testing.T) {
	for _, raw := range []string{
		`"not an object"`,
		`{"q1_mobile": "three"}`,
		`{}`,
		`{"responseCounts": "nope"}`,
	} {
		_, err := ExtractCounts([]byte(raw))
		assert.Error(t, err, raw)
	}
}

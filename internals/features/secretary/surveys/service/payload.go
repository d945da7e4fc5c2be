package service

import (
	"errors"

	"github.com/bytedance/sonic"
)

type feedbackEnvelope struct {
	ResponseCounts map[string]int `json:"responseCounts"`
}

// ExtractCounts pulls the response buckets out of a submitted feedback blob.
// The feedback forms wrap the buckets in an envelope alongside identifiers
// and extras (presentationId/impactId, totalStudents/totalParticipants,
// topApps, classGroup); those ride along untouched into storage. Bulk tooling
// posts a bare bucket map, which is accepted as well.
func ExtractCounts(raw []byte) (map[string]int, error) {
	var env feedbackEnvelope
	if err := sonic.Unmarshal(raw, &env); err == nil && env.ResponseCounts != nil {
		return env.ResponseCounts, nil
	}

	var flat map[string]int
	if err := sonic.Unmarshal(raw, &flat); err != nil {
		return nil, err
	}
	if len(flat) == 0 {
		return nil, errors.New("feedback carries no response counts")
	}
	return flat, nil
}

package helper

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexIntAcceptsNumberAndString(t *testing.T) {
	type payload struct {
		Participants FlexInt `json:"participants"`
	}

	var p payload
	require.NoError(t, sonic.Unmarshal([]byte(`{"participants": 45}`), &p))
	assert.Equal(t, 45, p.Participants.Int())

	require.NoError(t, sonic.Unmarshal([]byte(`{"participants": "45"}`), &p))
	assert.Equal(t, 45, p.Participants.Int())

	require.NoError(t, sonic.Unmarshal([]byte(`{"participants": " 45 "}`), &p))
	assert.Equal(t, 45, p.Participants.Int())
}

func TestFlexIntRejectsGarbage(t *testing.T) {
	type payload struct {
		Participants FlexInt `json:"participants"`
	}

	for _, raw := range []string{
		`{"participants": "forty-five"}`,
		`{"participants": ""}`,
		`{"participants": null}`,
		`{"participants": "12abc"}`,
	} {
		var p payload
		assert.Error(t, sonic.Unmarshal([]byte(raw), &p), raw)
	}
}

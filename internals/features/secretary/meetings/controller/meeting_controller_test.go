package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextMeetingSrNoStartsAtOne(t *testing.T) {
	assert.Equal(t, 1, nextMeetingSrNo(0))
	assert.Equal(t, 1, nextMeetingSrNo(-3))
}

func TestNextMeetingSrNoSkipsRetiredSerials(t *testing.T) {
	// Three meetings logged, then the first one removed. The removed row
	// keeps its serial, so the unscoped maximum is still 3 and the next
	// insert gets 4 rather than re-issuing a live number.
	maxEverAssigned := 0
	for range [3]struct{}{} {
		maxEverAssigned = nextMeetingSrNo(maxEverAssigned)
	}
	assert.Equal(t, 3, maxEverAssigned)

	// deleting sr_no 1 does not lower the unscoped max
	next := nextMeetingSrNo(maxEverAssigned)
	assert.Equal(t, 4, next)
	assert.NotContains(t, []int{2, 3}, next)
}

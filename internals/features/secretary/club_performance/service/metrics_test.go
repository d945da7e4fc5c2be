package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMetric(t *testing.T) {
	m := NewMetric("Total Presentations", 140, 74)
	assert.Equal(t, 66, m.Balance)
	assert.Equal(t, 52.86, m.PercentAch)

	m = NewMetric("Impact Outreach", 2000, 110)
	assert.Equal(t, 1890, m.Balance)
	assert.Equal(t, 5.5, m.PercentAch)
}

func TestNewMetricZeroCommitment(t *testing.T) {
	m := NewMetric("Mass Activities", 0, 3)
	assert.Equal(t, 0.0, m.PercentAch)
	assert.Equal(t, 0, m.Balance)
}

func TestNewMetricOverachievement(t *testing.T) {
	m := NewMetric("Frame Challenge", 50, 60)
	// balance floors at zero, completion can exceed 100
	assert.Equal(t, 0, m.Balance)
	assert.Equal(t, 120.0, m.PercentAch)
}

func TestOverallProgress(t *testing.T) {
	metrics := []Metric{
		NewMetric("a", 100, 50),
		NewMetric("b", 100, 25),
		NewMetric("c", 100, 0),
	}
	assert.Equal(t, 25.0, OverallProgress(metrics))
	assert.Equal(t, 0.0, OverallProgress(nil))
}

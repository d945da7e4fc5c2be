package service

import "math"

// Metric is one commitment-versus-achievement row of the club dashboard.
type Metric struct {
	Name       string  `json:"name"`
	Commitment int     `json:"commitment"`
	Achieved   int     `json:"achieved"`
	Balance    int     `json:"balance"`
	PercentAch float64 `json:"percentAch"`
}

// NewMetric derives balance and completion for one commitment. Balance never
// goes negative when a club overshoots, and a zero commitment reads as 0%
// rather than dividing by zero.
func NewMetric(name string, commitment, achieved int) Metric {
	return Metric{
		Name:       name,
		Commitment: commitment,
		Achieved:   achieved,
		Balance:    balance(commitment, achieved),
		PercentAch: percentAch(commitment, achieved),
	}
}

func balance(commitment, achieved int) int {
	if achieved >= commitment {
		return 0
	}
	return commitment - achieved
}

func percentAch(commitment, achieved int) float64 {
	if commitment == 0 {
		return 0
	}
	return round2(float64(achieved) / float64(commitment) * 100)
}

// OverallProgress is the unweighted mean completion across all metrics.
func OverallProgress(metrics []Metric) float64 {
	if len(metrics) == 0 {
		return 0
	}
	var sum float64
	for _, m := range metrics {
		sum += m.PercentAch
	}
	return round2(sum / float64(len(metrics)))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

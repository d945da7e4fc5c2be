package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cyberwarrior_backend/internals/features/secretary/club_performance/model"
)

func defaultCommitments() *model.ClubCommitmentModel {
	return &model.ClubCommitmentModel{
		CommitmentSensitization:    28000,
		CommitmentPresentations:    140,
		CommitmentImpactActivities: 50,
		CommitmentImpactOutreach:   2000,
		CommitmentMassActivities:   2,
		CommitmentMassOutreach:     1000,
		CommitmentSocialMediaPosts: 120,
		CommitmentFrameChallenge:   50,
		CommitmentMediaCoverage:    10,
		CommitmentBookletDownloads: 2000,
		CommitmentWeeks:            11,
		BookletDownloadsAchieved:   200,
	}
}

func TestNewRoleMetricRate(t *testing.T) {
	m := NewRoleMetric("Booklet Download", 11, 2000, 200)
	assert.Equal(t, 181.82, m.Rate)
	assert.Equal(t, 10.0, m.PercentAch)
	assert.Equal(t, 1800, m.Balance)

	m = NewRoleMetric("Media Coverage", 11, 10, 1)
	assert.Equal(t, 0.91, m.Rate)

	// zero weeks must not divide
	m = NewRoleMetric("Club Meetings", 0, 11, 3)
	assert.Equal(t, 0.0, m.Rate)
}

func TestBuildRoleGroupsShape(t *testing.T) {
	groups := BuildRoleGroups(defaultCommitments(), RoleAggregates{})
	require.Len(t, groups, 4)

	roles := make([]string, 0, len(groups))
	for _, g := range groups {
		roles = append(roles, g.Role)
	}
	assert.Equal(t, []string{"President", "Media Director", "Activity Director", "Secretary"}, roles)

	names := func(g RolePerformance) []string {
		out := make([]string, 0, len(g.Metrics))
		for _, m := range g.Metrics {
			out = append(out, m.Name)
		}
		return out
	}
	assert.Equal(t, []string{"Club Meetings", "Presentation Compliance", "Impact Compliance"}, names(groups[0]))
	assert.Equal(t, []string{
		"No. of Weeks Assigned", "Total Teams", "Booklet Download",
		"Frame Challenge", "Social Media Post", "Media Coverage",
	}, names(groups[1]))
	assert.Equal(t, []string{
		"No. of Weeks Assigned", "Total Teams", "Impact Activities / Week",
		"Impact Outreach / Week", "Mass Activity", "Mass Outreach",
	}, names(groups[2]))
	assert.Equal(t, []string{
		"No. of Weeks Assigned", "Club Meetings (MOM)", "Presentations / Week",
		"5th - 7th", "8th - 10th", "College", "Students Sensitized / Week",
	}, names(groups[3]))
}

func TestBuildRoleGroupsSecretaryScorecard(t *testing.T) {
	agg := RoleAggregates{
		Meetings:             1,
		ActiveWeeks:          0,
		Presentations:        74,
		PresentationsJunior:  2,
		PresentationsMiddle:  1,
		PresentationsCollege: 3,
		StudentsSensitized:   2810,
	}

	groups := BuildRoleGroups(defaultCommitments(), agg)
	secretary := groups[3]
	require.Equal(t, "Secretary", secretary.Role)

	byName := map[string]RoleMetric{}
	for _, m := range secretary.Metrics {
		byName[m.Name] = m
	}

	// each class band carries a fifth of the 140-presentation commitment
	band := byName["5th - 7th"]
	assert.Equal(t, 28, band.Target)
	assert.Equal(t, 2.55, band.Rate)
	assert.Equal(t, 7.14, band.PercentAch)

	pres := byName["Presentations / Week"]
	assert.Equal(t, 12.73, pres.Rate)
	assert.Equal(t, 52.86, pres.PercentAch)

	sens := byName["Students Sensitized / Week"]
	assert.Equal(t, 2545.45, sens.Rate)
	assert.Equal(t, 10.04, sens.PercentAch)

	assert.Equal(t, 13.34, secretary.OverallProgress)
}

func TestBuildRoleGroupsComplianceCountsFeedbackOnly(t *testing.T) {
	agg := RoleAggregates{
		Presentations:             10,
		PresentationsWithFeedback: 4,
		ImpactActivities:          5,
		ImpactsWithFeedback:       0,
	}

	groups := BuildRoleGroups(defaultCommitments(), agg)
	president := groups[0]

	byName := map[string]RoleMetric{}
	for _, m := range president.Metrics {
		byName[m.Name] = m
	}
	assert.Equal(t, 4, byName["Presentation Compliance"].Achievement)
	assert.Equal(t, 0, byName["Impact Compliance"].Achievement)
}

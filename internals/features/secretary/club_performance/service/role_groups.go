package service

import (
	"cyberwarrior_backend/internals/features/secretary/club_performance/model"
)

// The programme assigns every club ten warrior teams.
const teamTarget = 10

// RoleMetric is one row of an office-bearer's scorecard. Rate is the weekly
// pace the target implies over the committed season length.
type RoleMetric struct {
	Name        string  `json:"name"`
	Rate        float64 `json:"rate"`
	Target      int     `json:"target"`
	Achievement int     `json:"achievement"`
	Balance     int     `json:"balance"`
	PercentAch  float64 `json:"percentAch"`
}

// RolePerformance groups the scorecard rows owned by one office-bearer role.
type RolePerformance struct {
	Role            string       `json:"role"`
	Metrics         []RoleMetric `json:"metrics"`
	OverallProgress float64      `json:"overallProgress"`
}

// RoleAggregates carries the activity counts the role scorecards are built
// from, collected in one pass over the institution's tables.
type RoleAggregates struct {
	Meetings                  int
	ActiveWeeks               int
	Teams                     int
	Presentations             int
	PresentationsWithFeedback int
	PresentationsJunior       int
	PresentationsMiddle       int
	PresentationsCollege      int
	StudentsSensitized        int
	ImpactActivities          int
	ImpactOutreach            int
	ImpactsWithFeedback       int
	MassActivities            int
	MassOutreach              int
	SocialMediaPosts          int
	FrameChallenges           int
	MediaCoverage             int
}

// NewRoleMetric derives the weekly rate and completion for one scorecard row.
func NewRoleMetric(name string, weeks, target, achieved int) RoleMetric {
	rate := 0.0
	if weeks > 0 {
		rate = round2(float64(target) / float64(weeks))
	}
	return RoleMetric{
		Name:        name,
		Rate:        rate,
		Target:      target,
		Achievement: achieved,
		Balance:     balance(target, achieved),
		PercentAch:  percentAch(target, achieved),
	}
}

// BuildRoleGroups assembles the four office-bearer scorecards from the
// commitment row and the aggregated activity counts.
func BuildRoleGroups(commitments *model.ClubCommitmentModel, agg RoleAggregates) []RolePerformance {
	weeks := commitments.CommitmentWeeks

	// each class band carries a fifth of the presentation commitment
	bandTarget := commitments.CommitmentPresentations / 5

	president := []RoleMetric{
		NewRoleMetric("Club Meetings", weeks, weeks, agg.Meetings),
		NewRoleMetric("Presentation Compliance", weeks, commitments.CommitmentPresentations, agg.PresentationsWithFeedback),
		NewRoleMetric("Impact Compliance", weeks, commitments.CommitmentImpactActivities, agg.ImpactsWithFeedback),
	}

	media := []RoleMetric{
		NewRoleMetric("No. of Weeks Assigned", weeks, weeks, agg.ActiveWeeks),
		NewRoleMetric("Total Teams", weeks, teamTarget, agg.Teams),
		NewRoleMetric("Booklet Download", weeks, commitments.CommitmentBookletDownloads, commitments.BookletDownloadsAchieved),
		NewRoleMetric("Frame Challenge", weeks, commitments.CommitmentFrameChallenge, agg.FrameChallenges),
		NewRoleMetric("Social Media Post", weeks, commitments.CommitmentSocialMediaPosts, agg.SocialMediaPosts),
		NewRoleMetric("Media Coverage", weeks, commitments.CommitmentMediaCoverage, agg.MediaCoverage),
	}

	activity := []RoleMetric{
		NewRoleMetric("No. of Weeks Assigned", weeks, weeks, agg.ActiveWeeks),
		NewRoleMetric("Total Teams", weeks, teamTarget, agg.Teams),
		NewRoleMetric("Impact Activities / Week", weeks, commitments.CommitmentImpactActivities, agg.ImpactActivities),
		NewRoleMetric("Impact Outreach / Week", weeks, commitments.CommitmentImpactOutreach, agg.ImpactOutreach),
		NewRoleMetric("Mass Activity", weeks, commitments.CommitmentMassActivities, agg.MassActivities),
		NewRoleMetric("Mass Outreach", weeks, commitments.CommitmentMassOutreach, agg.MassOutreach),
	}

	secretary := []RoleMetric{
		NewRoleMetric("No. of Weeks Assigned", weeks, weeks, agg.ActiveWeeks),
		NewRoleMetric("Club Meetings (MOM)", weeks, weeks, agg.Meetings),
		NewRoleMetric("Presentations / Week", weeks, commitments.CommitmentPresentations, agg.Presentations),
		NewRoleMetric("5th - 7th", weeks, bandTarget, agg.PresentationsJunior),
		NewRoleMetric("8th - 10th", weeks, bandTarget, agg.PresentationsMiddle),
		NewRoleMetric("College", weeks, bandTarget, agg.PresentationsCollege),
		NewRoleMetric("Students Sensitized / Week", weeks, commitments.CommitmentSensitization, agg.StudentsSensitized),
	}

	return []RolePerformance{
		newRolePerformance("President", president),
		newRolePerformance("Media Director", media),
		newRolePerformance("Activity Director", activity),
		newRolePerformance("Secretary", secretary),
	}
}

func newRolePerformance(role string, metrics []RoleMetric) RolePerformance {
	var sum float64
	for _, m := range metrics {
		sum += m.PercentAch
	}
	progress := 0.0
	if len(metrics) > 0 {
		progress = round2(sum / float64(len(metrics)))
	}
	return RolePerformance{Role: role, Metrics: metrics, OverallProgress: progress}
}

package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cyberwarrior_backend/internals/features/secretary/club_performance/model"
	groupmodel "cyberwarrior_backend/internals/features/secretary/groups/model"
	impactmodel "cyberwarrior_backend/internals/features/secretary/impact_activities/model"
	massmodel "cyberwarrior_backend/internals/features/secretary/mass_activities/model"
	meetingmodel "cyberwarrior_backend/internals/features/secretary/meetings/model"
	performancemodel "cyberwarrior_backend/internals/features/secretary/performance/model"
	presentationmodel "cyberwarrior_backend/internals/features/secretary/presentations/model"
	surveyservice "cyberwarrior_backend/internals/features/secretary/surveys/service"
)

// Dashboard is the institution's commitment-versus-achievement summary,
// with a scorecard per office-bearer role alongside the global metrics.
type Dashboard struct {
	Metrics         []Metric          `json:"metrics"`
	RoleGroups      []RolePerformance `json:"rolePerformances"`
	OverallProgress float64           `json:"overallProgress"`
	Weeks           int               `json:"weeks"`
}

// LoadCommitments returns the institution's commitment row, seeding it with
// the programme defaults on first access.
func LoadCommitments(db *gorm.DB, institutionID uuid.UUID) (*model.ClubCommitmentModel, error) {
	row := model.ClubCommitmentModel{CommitmentInstitutionID: institutionID}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "commitment_institution_id"}},
		DoNothing: true,
	}).Create(&row).Error; err != nil {
		return nil, err
	}

	var stored model.ClubCommitmentModel
	if err := db.First(&stored, "commitment_institution_id = ?", institutionID).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

// BuildDashboard aggregates the institution's activity tables against its
// commitments.
func BuildDashboard(db *gorm.DB, institutionID uuid.UUID) (*Dashboard, error) {
	commitments, err := LoadCommitments(db, institutionID)
	if err != nil {
		return nil, err
	}

	agg, err := collectAggregates(db, institutionID)
	if err != nil {
		return nil, err
	}

	metrics := []Metric{
		NewMetric("Students Sensitized", commitments.CommitmentSensitization, agg.StudentsSensitized),
		NewMetric("Total Presentations", commitments.CommitmentPresentations, agg.Presentations),
		NewMetric("Impact Activities (Max)", commitments.CommitmentImpactActivities, agg.ImpactActivities),
		NewMetric("Impact Outreach", commitments.CommitmentImpactOutreach, agg.ImpactOutreach),
		NewMetric("Mass Activities", commitments.CommitmentMassActivities, agg.MassActivities),
		NewMetric("Mass Outreach", commitments.CommitmentMassOutreach, agg.MassOutreach),
		NewMetric("Social Media Posts", commitments.CommitmentSocialMediaPosts, agg.SocialMediaPosts),
		NewMetric("Frame Challenge", commitments.CommitmentFrameChallenge, agg.FrameChallenges),
		NewMetric("Media Coverage (Students)", commitments.CommitmentMediaCoverage, agg.MediaCoverage),
		NewMetric("Anti Fraud Downloads - Students", commitments.CommitmentBookletDownloads, commitments.BookletDownloadsAchieved),
	}

	return &Dashboard{
		Metrics:         metrics,
		RoleGroups:      BuildRoleGroups(commitments, agg),
		OverallProgress: OverallProgress(metrics),
		Weeks:           commitments.CommitmentWeeks,
	}, nil
}

// collectAggregates runs the count queries the dashboard and the role
// scorecards share.
func collectAggregates(db *gorm.DB, institutionID uuid.UUID) (RoleAggregates, error) {
	var agg RoleAggregates

	type presentationAggregate struct {
		Count        int
		Students     int
		WithFeedback int
		Junior       int
		Middle       int
		College      int
	}
	var pres presentationAggregate
	if err := db.Model(&presentationmodel.PresentationModel{}).
		Select(`COUNT(*) AS count,
			COALESCE(SUM(presentation_total_students),0) AS students,
			COUNT(*) FILTER (WHERE presentation_feedback IS NOT NULL) AS with_feedback,
			COUNT(*) FILTER (WHERE presentation_class_group = ?) AS junior,
			COUNT(*) FILTER (WHERE presentation_class_group = ?) AS middle,
			COUNT(*) FILTER (WHERE presentation_class_group = ?) AS college`,
			string(surveyservice.VariantJunior),
			string(surveyservice.VariantMiddle),
			string(surveyservice.VariantCollege)).
		Where("presentation_institution_id = ?", institutionID).
		Scan(&pres).Error; err != nil {
		return agg, err
	}
	agg.Presentations = pres.Count
	agg.StudentsSensitized = pres.Students
	agg.PresentationsWithFeedback = pres.WithFeedback
	agg.PresentationsJunior = pres.Junior
	agg.PresentationsMiddle = pres.Middle
	agg.PresentationsCollege = pres.College

	type impactAggregate struct {
		Count        int
		Outreach     int
		WithFeedback int
	}
	var impact impactAggregate
	if err := db.Model(&impactmodel.ImpactActivityModel{}).
		Select(`COUNT(*) AS count,
			COALESCE(SUM(impact_participants_count),0) AS outreach,
			COUNT(*) FILTER (WHERE impact_feedback IS NOT NULL) AS with_feedback`).
		Where("impact_institution_id = ?", institutionID).
		Scan(&impact).Error; err != nil {
		return agg, err
	}
	agg.ImpactActivities = impact.Count
	agg.ImpactOutreach = impact.Outreach
	agg.ImpactsWithFeedback = impact.WithFeedback

	type massAggregate struct {
		Count    int
		Outreach int
	}
	var mass massAggregate
	if err := db.Model(&massmodel.MassActivityModel{}).
		Select("COUNT(*) AS count, COALESCE(SUM(mass_participants_count),0) AS outreach").
		Where("mass_institution_id = ?", institutionID).
		Scan(&mass).Error; err != nil {
		return agg, err
	}
	agg.MassActivities = mass.Count
	agg.MassOutreach = mass.Outreach

	type meetingAggregate struct {
		Count int
		Weeks int
	}
	var meetings meetingAggregate
	if err := db.Model(&meetingmodel.MeetingModel{}).
		Select("COUNT(*) AS count, COUNT(DISTINCT date_trunc('week', meeting_date)) AS weeks").
		Where("meeting_institution_id = ?", institutionID).
		Scan(&meetings).Error; err != nil {
		return agg, err
	}
	agg.Meetings = meetings.Count
	agg.ActiveWeeks = meetings.Weeks

	var teams int64
	if err := db.Model(&groupmodel.GroupModel{}).
		Where("group_institution_id = ?", institutionID).
		Count(&teams).Error; err != nil {
		return agg, err
	}
	agg.Teams = int(teams)

	var socialPosts int64
	if err := db.Model(&performancemodel.SocialMediaPostModel{}).
		Select("COALESCE(SUM(post_count),0)").
		Joins("JOIN warriors ON warriors.warrior_id = social_media_posts.post_warrior_id").
		Where("warriors.warrior_institution_id = ?", institutionID).
		Scan(&socialPosts).Error; err != nil {
		return agg, err
	}
	agg.SocialMediaPosts = int(socialPosts)

	var frameChallenges int64
	if err := db.Model(&performancemodel.FrameChallengeModel{}).
		Joins("JOIN warriors ON warriors.warrior_id = frame_challenges.challenge_warrior_id").
		Where("warriors.warrior_institution_id = ?", institutionID).
		Count(&frameChallenges).Error; err != nil {
		return agg, err
	}
	agg.FrameChallenges = int(frameChallenges)

	var mediaCoverage int64
	if err := db.Model(&performancemodel.MediaCoverageModel{}).
		Joins("JOIN warriors ON warriors.warrior_id = media_coverages.coverage_warrior_id").
		Where("warriors.warrior_institution_id = ?", institutionID).
		Count(&mediaCoverage).Error; err != nil {
		return agg, err
	}
	agg.MediaCoverage = int(mediaCoverage)

	return agg, nil
}

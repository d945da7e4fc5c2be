package service

import (
	"math"

	"gorm.io/gorm"

	impactmodel "cyberwarrior_backend/internals/features/secretary/impact_activities/model"
	presentationmodel "cyberwarrior_backend/internals/features/secretary/presentations/model"
	presentationservice "cyberwarrior_backend/internals/features/secretary/presentations/service"
	"cyberwarrior_backend/internals/features/secretary/performance/model"
)

// WarriorAchievement mirrors the targets wire shape so the performance
// screen can diff the two side by side.
type WarriorAchievement struct {
	Weeks                        int     `json:"weeks"`
	PresentationsPerWeek         float64 `json:"presentationsPerWeek"`
	ImpactPerWeek                float64 `json:"impactPerWeek"`
	ImpactOutreachPerWeek        float64 `json:"impactOutreachPerWeek"`
	Presentations                int     `json:"presentations"`
	Fifth7th                     int     `json:"fifth7th"`
	Eighth10th                   int     `json:"eighth10th"`
	College                      int     `json:"college"`
	StudentsSensitization        int     `json:"studentsSensitization"`
	StudentsSensitization5th7th  int     `json:"studentsSensitization5th7th"`
	StudentsSensitization8th10th int     `json:"studentsSensitization8th10th"`
	StudentsSensitizationCollege int     `json:"studentsSensitizationCollege"`
	ImpactCount                  int     `json:"impactTarget"`
	ImpactOutreach               int     `json:"impactOutreach"`
	SocialMediaPosts             int     `json:"socialMediaPosts"`
	FrameChallenge               int     `json:"frameChallenge"`
	MediaCoverage                int     `json:"mediaCoverage"`
}

type bandAggregate struct {
	ClassGroup string
	Count      int
	Students   int
}

// ComputeAchievement aggregates a warrior's season numbers from the activity
// tables. Classroom work is attributed through the warrior's team; frame
// challenges, posts and coverage are recorded against the warrior directly.
// Weeks achieved counts the distinct calendar weeks the team was active in.
func ComputeAchievement(db *gorm.DB, warrior *model.WarriorModel) (*WarriorAchievement, error) {
	ach := &WarriorAchievement{}

	var bands []bandAggregate
	if err := db.Model(&presentationmodel.PresentationModel{}).
		Select("presentation_class_group AS class_group, COUNT(*) AS count, COALESCE(SUM(presentation_total_students),0) AS students").
		Where("presentation_group_id = ?", warrior.WarriorGroupID).
		Group("presentation_class_group").
		Scan(&bands).Error; err != nil {
		return nil, err
	}
	for _, b := range bands {
		ach.Presentations += b.Count
		ach.StudentsSensitization += b.Students
		switch b.ClassGroup {
		case presentationservice.ClassGroupJunior:
			ach.Fifth7th = b.Count
			ach.StudentsSensitization5th7th = b.Students
		case presentationservice.ClassGroupMiddle:
			ach.Eighth10th = b.Count
			ach.StudentsSensitization8th10th = b.Students
		case presentationservice.ClassGroupCollege:
			ach.College = b.Count
			ach.StudentsSensitizationCollege = b.Students
		}
	}

	type impactAggregate struct {
		Count    int
		Outreach int
	}
	var impact impactAggregate
	if err := db.Model(&impactmodel.ImpactActivityModel{}).
		Select("COUNT(*) AS count, COALESCE(SUM(impact_participants_count),0) AS outreach").
		Where("impact_group_id = ?", warrior.WarriorGroupID).
		Scan(&impact).Error; err != nil {
		return nil, err
	}
	ach.ImpactCount = impact.Count
	ach.ImpactOutreach = impact.Outreach

	var weeks int64
	if err := db.Raw(`
		SELECT COUNT(DISTINCT wk) FROM (
			SELECT date_trunc('week', presentation_date) AS wk
			FROM presentations
			WHERE presentation_group_id = ? AND presentation_deleted_at IS NULL
			UNION
			SELECT date_trunc('week', impact_date) AS wk
			FROM impact_activities
			WHERE impact_group_id = ? AND impact_deleted_at IS NULL
		) activity_weeks`,
		warrior.WarriorGroupID, warrior.WarriorGroupID).
		Scan(&weeks).Error; err != nil {
		return nil, err
	}
	ach.Weeks = int(weeks)

	var challenges int64
	if err := db.Model(&model.FrameChallengeModel{}).
		Where("challenge_warrior_id = ?", warrior.WarriorID).
		Count(&challenges).Error; err != nil {
		return nil, err
	}
	ach.FrameChallenge = int(challenges)

	var posts int64
	if err := db.Model(&model.SocialMediaPostModel{}).
		Select("COALESCE(SUM(post_count),0)").
		Where("post_warrior_id = ?", warrior.WarriorID).
		Scan(&posts).Error; err != nil {
		return nil, err
	}
	ach.SocialMediaPosts = int(posts)

	var coverage int64
	if err := db.Model(&model.MediaCoverageModel{}).
		Where("coverage_warrior_id = ?", warrior.WarriorID).
		Count(&coverage).Error; err != nil {
		return nil, err
	}
	ach.MediaCoverage = int(coverage)

	ach.PresentationsPerWeek = perWeek(ach.Presentations, ach.Weeks)
	ach.ImpactPerWeek = perWeek(ach.ImpactCount, ach.Weeks)
	ach.ImpactOutreachPerWeek = perWeek(ach.ImpactOutreach, ach.Weeks)

	return ach, nil
}

func perWeek(total, weeks int) float64 {
	if weeks == 0 {
		return 0
	}
	return math.Round(float64(total)/float64(weeks)*100) / 100
}

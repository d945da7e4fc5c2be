package model

import (
	"time"

	"github.com/google/uuid"
)

// ClubCommitmentModel holds the season commitments an institution signed up
// for. One row per institution, seeded with programme defaults on first
// dashboard access. Booklet downloads are reported by the foundation, not
// derivable from activity tables, so their achieved count lives here too.
type ClubCommitmentModel struct {
	CommitmentID            uuid.UUID `gorm:"column:commitment_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"commitment_id"`
	CommitmentInstitutionID uuid.UUID `gorm:"column:commitment_institution_id;type:uuid;not null;uniqueIndex" json:"commitment_institution_id"`

	CommitmentSensitization    int `gorm:"column:commitment_sensitization;not null;default:28000" json:"commitment_sensitization"`
	CommitmentPresentations    int `gorm:"column:commitment_presentations;not null;default:140" json:"commitment_presentations"`
	CommitmentImpactActivities int `gorm:"column:commitment_impact_activities;not null;default:50" json:"commitment_impact_activities"`
	CommitmentImpactOutreach   int `gorm:"column:commitment_impact_outreach;not null;default:2000" json:"commitment_impact_outreach"`
	CommitmentMassActivities   int `gorm:"column:commitment_mass_activities;not null;default:2" json:"commitment_mass_activities"`
	CommitmentMassOutreach     int `gorm:"column:commitment_mass_outreach;not null;default:1000" json:"commitment_mass_outreach"`
	CommitmentSocialMediaPosts int `gorm:"column:commitment_social_media_posts;not null;default:120" json:"commitment_social_media_posts"`
	CommitmentFrameChallenge   int `gorm:"column:commitment_frame_challenge;not null;default:50" json:"commitment_frame_challenge"`
	CommitmentMediaCoverage    int `gorm:"column:commitment_media_coverage;not null;default:10" json:"commitment_media_coverage"`
	CommitmentBookletDownloads int `gorm:"column:commitment_booklet_downloads;not null;default:2000" json:"commitment_booklet_downloads"`
	CommitmentWeeks            int `gorm:"column:commitment_weeks;not null;default:11" json:"commitment_weeks"`

	BookletDownloadsAchieved int `gorm:"column:booklet_downloads_achieved;not null;default:0" json:"booklet_downloads_achieved"`

	CommitmentCreatedAt time.Time `gorm:"column:commitment_created_at;autoCreateTime" json:"commitment_created_at"`
	CommitmentUpdatedAt time.Time `gorm:"column:commitment_updated_at;autoUpdateTime" json:"commitment_updated_at"`
}

func (ClubCommitmentModel) TableName() string {
	return "club_commitments"
}

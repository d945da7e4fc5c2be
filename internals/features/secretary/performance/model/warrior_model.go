package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// WarriorModel is one cyber warrior whose season targets and contributions
// are tracked individually. Targets are a snapshot negotiated at enrolment
// and stored whole; achievements are always computed from the activity
// tables, never stored.
type WarriorModel struct {
	WarriorID            uuid.UUID      `gorm:"column:warrior_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"warrior_id"`
	WarriorName          string         `gorm:"column:warrior_name;type:varchar(120);not null" json:"warrior_name"`
	WarriorTargets       datatypes.JSON `gorm:"column:warrior_targets;type:jsonb;not null" json:"warrior_targets"`
	WarriorGroupID       uuid.UUID      `gorm:"column:warrior_group_id;type:uuid;not null;index" json:"warrior_group_id"`
	WarriorInstitutionID uuid.UUID      `gorm:"column:warrior_institution_id;type:uuid;not null;index" json:"warrior_institution_id"`

	WarriorCreatedAt time.Time      `gorm:"column:warrior_created_at;autoCreateTime" json:"warrior_created_at"`
	WarriorUpdatedAt time.Time      `gorm:"column:warrior_updated_at;autoUpdateTime" json:"warrior_updated_at"`
	WarriorDeletedAt gorm.DeletedAt `gorm:"column:warrior_deleted_at;index" json:"-"`
}

func (WarriorModel) TableName() string {
	return "warriors"
}

// WarriorTargets mirrors the wire shape the performance screen submits.
type WarriorTargets struct {
	Weeks                        int     `json:"weeks"`
	PresentationsPerWeek         float64 `json:"presentationsPerWeek"`
	ImpactPerWeek                float64 `json:"impactPerWeek"`
	ImpactOutreachPerWeek        float64 `json:"impactOutreachPerWeek"`
	Presentations                int     `json:"presentations"`
	Fifth7th                     float64 `json:"fifth7th"`
	Eighth10th                   float64 `json:"eighth10th"`
	College                      float64 `json:"college"`
	StudentsSensitization        int     `json:"studentsSensitization"`
	StudentsSensitization5th7th  int     `json:"studentsSensitization5th7th"`
	StudentsSensitization8th10th int     `json:"studentsSensitization8th10th"`
	StudentsSensitizationCollege int     `json:"studentsSensitizationCollege"`
	ImpactTarget                 int     `json:"impactTarget"`
	ImpactOutreach               int     `json:"impactOutreach"`
	BookletDownload              int     `json:"bookletDownload"`
	SocialMediaPosts             int     `json:"socialMediaPosts"`
	FrameChallenge               int     `json:"frameChallenge"`
	MediaCoverage                int     `json:"mediaCoverage"`
}

package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ImpactActivityModel records a community outreach activity run by a
// cyber-warrior team outside the classroom.
type ImpactActivityModel struct {
	ImpactID                uuid.UUID      `gorm:"column:impact_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"impact_id"`
	ImpactOrganizationName  string         `gorm:"column:impact_organization_name;type:varchar(255);not null" json:"impact_organization_name"`
	ImpactLeaderName        string         `gorm:"column:impact_leader_name;type:varchar(120)" json:"impact_leader_name"`
	ImpactMessagePropagated string         `gorm:"column:impact_message_propagated;type:text" json:"impact_message_propagated"`
	ImpactDate              time.Time      `gorm:"column:impact_date;type:date;not null" json:"impact_date"`
	ImpactDurationMinutes   int            `gorm:"column:impact_duration_minutes;not null" json:"impact_duration_minutes"`
	ImpactLocation          string         `gorm:"column:impact_location;type:varchar(255)" json:"impact_location"`
	ImpactParticipantsCount int            `gorm:"column:impact_participants_count;not null" json:"impact_participants_count"`
	ImpactResourcesInvolved string         `gorm:"column:impact_resources_involved;type:text" json:"impact_resources_involved"`
	ImpactSocialMediaLinks  pq.StringArray `gorm:"column:impact_social_media_links;type:text[]" json:"impact_social_media_links"`
	ImpactMediaLinks        pq.StringArray `gorm:"column:impact_media_links;type:text[]" json:"impact_media_links"`
	ImpactRemarks           string         `gorm:"column:impact_remarks;type:text" json:"impact_remarks"`
	ImpactFeedback          datatypes.JSON `gorm:"column:impact_feedback;type:jsonb" json:"impact_feedback"`

	ImpactGroupID       uuid.UUID `gorm:"column:impact_group_id;type:uuid;not null;index" json:"impact_group_id"`
	ImpactInstitutionID uuid.UUID `gorm:"column:impact_institution_id;type:uuid;not null;index" json:"impact_institution_id"`
	ImpactSecretaryID   uuid.UUID `gorm:"column:impact_secretary_id;type:uuid;not null" json:"impact_secretary_id"`

	ImpactCreatedAt time.Time      `gorm:"column:impact_created_at;autoCreateTime" json:"impact_created_at"`
	ImpactUpdatedAt time.Time      `gorm:"column:impact_updated_at;autoUpdateTime" json:"impact_updated_at"`
	ImpactDeletedAt gorm.DeletedAt `gorm:"column:impact_deleted_at;index" json:"-"`
}

func (ImpactActivityModel) TableName() string {
	return "impact_activities"
}

package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// MassActivityModel records a large public event (rally, exhibition,
// street play) run under the institution's banner.
type MassActivityModel struct {
	MassID                uuid.UUID      `gorm:"column:mass_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"mass_id"`
	MassActivityName      string         `gorm:"column:mass_activity_name;type:varchar(255);not null" json:"mass_activity_name"`
	MassDescription       string         `gorm:"column:mass_description;type:text" json:"mass_description"`
	MassDate              time.Time      `gorm:"column:mass_date;type:date;not null" json:"mass_date"`
	MassDuration          string         `gorm:"column:mass_duration;type:varchar(50)" json:"mass_duration"`
	MassLocation          string         `gorm:"column:mass_location;type:varchar(255)" json:"mass_location"`
	MassParticipantsCount int            `gorm:"column:mass_participants_count;not null" json:"mass_participants_count"`
	MassStakeholders      string         `gorm:"column:mass_stakeholders;type:text" json:"mass_stakeholders"`
	MassSocialMediaLinks  pq.StringArray `gorm:"column:mass_social_media_links;type:text[]" json:"mass_social_media_links"`
	MassMediaLinks        pq.StringArray `gorm:"column:mass_media_links;type:text[]" json:"mass_media_links"`

	MassInstitutionID uuid.UUID `gorm:"column:mass_institution_id;type:uuid;not null;index" json:"mass_institution_id"`
	MassSecretaryID   uuid.UUID `gorm:"column:mass_secretary_id;type:uuid;not null" json:"mass_secretary_id"`

	MassCreatedAt time.Time      `gorm:"column:mass_created_at;autoCreateTime" json:"mass_created_at"`
	MassUpdatedAt time.Time      `gorm:"column:mass_updated_at;autoUpdateTime" json:"mass_updated_at"`
	MassDeletedAt gorm.DeletedAt `gorm:"column:mass_deleted_at;index" json:"-"`
}

func (MassActivityModel) TableName() string {
	return "mass_activities"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// ClubProfileModel holds the club's display name and the number of weeks
// still available in the activity calendar. One row per institution.
type ClubProfileModel struct {
	ProfileID             uuid.UUID `gorm:"column:profile_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"profile_id"`
	ProfileClubName       string    `gorm:"column:profile_club_name;type:varchar(255);not null" json:"profile_club_name"`
	ProfileAvailableWeeks int       `gorm:"column:profile_available_weeks;not null;default:0" json:"profile_available_weeks"`
	ProfileInstitutionID  uuid.UUID `gorm:"column:profile_institution_id;type:uuid;not null;uniqueIndex" json:"profile_institution_id"`

	ProfileCreatedAt time.Time `gorm:"column:profile_created_at;autoCreateTime" json:"profile_created_at"`
	ProfileUpdatedAt time.Time `gorm:"column:profile_updated_at;autoUpdateTime" json:"profile_updated_at"`
}

func (ClubProfileModel) TableName() string {
	return "club_profiles"
}

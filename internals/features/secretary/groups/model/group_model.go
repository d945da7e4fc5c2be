package model

import (
	"time"

	"github.com/google/uuid"
)

// GroupModel is a cyber-warrior team. Rows are unique per (institution, name)
// so resubmitting a report reuses the existing team instead of spawning a
// duplicate row.
type GroupModel struct {
	GroupID            uuid.UUID `gorm:"column:group_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"group_id"`
	GroupName          string    `gorm:"column:group_name;type:varchar(120);not null;uniqueIndex:uq_groups_institution_name" json:"group_name"`
	GroupInstitutionID uuid.UUID `gorm:"column:group_institution_id;type:uuid;not null;uniqueIndex:uq_groups_institution_name" json:"group_institution_id"`

	GroupCreatedAt time.Time `gorm:"column:group_created_at;autoCreateTime" json:"group_created_at"`
	GroupUpdatedAt time.Time `gorm:"column:group_updated_at;autoUpdateTime" json:"group_updated_at"`
}

func (GroupModel) TableName() string {
	return "groups"
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InstitutionModel struct {
	InstitutionID       uuid.UUID `gorm:"column:institution_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"institution_id"`
	InstitutionName     string    `gorm:"column:institution_name;type:varchar(255);not null" json:"institution_name"`
	InstitutionCity     string    `gorm:"column:institution_city;type:varchar(100)" json:"institution_city"`
	InstitutionDistrict string    `gorm:"column:institution_district;type:varchar(100)" json:"institution_district"`

	InstitutionCreatedAt time.Time      `gorm:"column:institution_created_at;autoCreateTime" json:"institution_created_at"`
	InstitutionUpdatedAt time.Time      `gorm:"column:institution_updated_at;autoUpdateTime" json:"institution_updated_at"`
	InstitutionDeletedAt gorm.DeletedAt `gorm:"column:institution_deleted_at;index" json:"institution_deleted_at,omitempty"`
}

func (InstitutionModel) TableName() string {
	return "institutions"
}

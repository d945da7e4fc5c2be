package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SecretaryModel is the club secretary account. Bank fields are filled in later
// through the bank-details endpoint, so they stay nullable.
type SecretaryModel struct {
	SecretaryID            uuid.UUID `gorm:"column:secretary_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"secretary_id"`
	SecretaryName          string    `gorm:"column:secretary_name;type:varchar(100);not null" json:"secretary_name"`
	SecretaryEmail         string    `gorm:"column:secretary_email;type:varchar(255);not null;unique" json:"secretary_email"`
	SecretaryPassword      string    `gorm:"column:secretary_password;type:text;not null" json:"-"`
	SecretaryInstitutionID uuid.UUID `gorm:"column:secretary_institution_id;type:uuid;not null" json:"secretary_institution_id"`

	SecretaryBankAccNumber *string `gorm:"column:secretary_bank_acc_number;type:varchar(30)" json:"secretary_bank_acc_number,omitempty"`
	SecretaryIfscCode      *string `gorm:"column:secretary_ifsc_code;type:varchar(11)" json:"secretary_ifsc_code,omitempty"`
	SecretaryBankName      *string `gorm:"column:secretary_bank_name;type:varchar(100)" json:"secretary_bank_name,omitempty"`
	SecretaryBankBranch    *string `gorm:"column:secretary_bank_branch;type:varchar(100)" json:"secretary_bank_branch,omitempty"`

	SecretaryIsActive  bool           `gorm:"column:secretary_is_active;not null;default:true" json:"secretary_is_active"`
	SecretaryCreatedAt time.Time      `gorm:"column:secretary_created_at;autoCreateTime" json:"secretary_created_at"`
	SecretaryUpdatedAt time.Time      `gorm:"column:secretary_updated_at;autoUpdateTime" json:"secretary_updated_at"`
	SecretaryDeletedAt gorm.DeletedAt `gorm:"column:secretary_deleted_at;index" json:"secretary_deleted_at,omitempty"`
}

func (SecretaryModel) TableName() string {
	return "secretaries"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// ClubMemberModel is one office bearer of the institution's club. One row per
// role; saving the roster upserts by (institution, role). The CM flags mark
// attendance at the three committee meetings of the term.
type ClubMemberModel struct {
	MemberID            uuid.UUID `gorm:"column:member_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"member_id"`
	MemberRole          string    `gorm:"column:member_role;type:varchar(60);not null;uniqueIndex:uq_club_members_institution_role" json:"member_role"`
	MemberName          string    `gorm:"column:member_name;type:varchar(120);not null" json:"member_name"`
	MemberCM1           bool      `gorm:"column:member_cm1;not null;default:false" json:"member_cm1"`
	MemberCM2           bool      `gorm:"column:member_cm2;not null;default:false" json:"member_cm2"`
	MemberCM3           bool      `gorm:"column:member_cm3;not null;default:false" json:"member_cm3"`
	MemberInstitutionID uuid.UUID `gorm:"column:member_institution_id;type:uuid;not null;uniqueIndex:uq_club_members_institution_role" json:"member_institution_id"`

	MemberCreatedAt time.Time `gorm:"column:member_created_at;autoCreateTime" json:"member_created_at"`
	MemberUpdatedAt time.Time `gorm:"column:member_updated_at;autoUpdateTime" json:"member_updated_at"`
}

func (ClubMemberModel) TableName() string {
	return "club_members"
}

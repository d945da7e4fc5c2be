package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// MeetingModel is one entry in the club's weekly meeting log. SrNo is a
// per-institution running number assigned at insert time.
type MeetingModel struct {
	MeetingID                 uuid.UUID      `gorm:"column:meeting_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"meeting_id"`
	MeetingSrNo               int            `gorm:"column:meeting_sr_no;not null;uniqueIndex:uq_meetings_institution_sr_no" json:"meeting_sr_no"`
	MeetingNo                 string         `gorm:"column:meeting_no;type:varchar(50);not null" json:"meeting_no"`
	MeetingDate               time.Time      `gorm:"column:meeting_date;type:date;not null" json:"meeting_date"`
	MeetingAgenda             pq.StringArray `gorm:"column:meeting_agenda;type:text[]" json:"meeting_agenda"`
	MeetingConclusion         string         `gorm:"column:meeting_conclusion;type:text" json:"meeting_conclusion"`
	MeetingRemark             string         `gorm:"column:meeting_remark;type:text" json:"meeting_remark"`
	MeetingAttendancePhotoURL string         `gorm:"column:meeting_attendance_photo_url;type:text" json:"meeting_attendance_photo_url"`
	MeetingGeoTagPhotoURL     string         `gorm:"column:meeting_geo_tag_photo_url;type:text" json:"meeting_geo_tag_photo_url"`

	MeetingInstitutionID uuid.UUID `gorm:"column:meeting_institution_id;type:uuid;not null;uniqueIndex:uq_meetings_institution_sr_no" json:"meeting_institution_id"`
	MeetingSecretaryID   uuid.UUID `gorm:"column:meeting_secretary_id;type:uuid;not null" json:"meeting_secretary_id"`

	MeetingCreatedAt time.Time      `gorm:"column:meeting_created_at;autoCreateTime" json:"meeting_created_at"`
	MeetingUpdatedAt time.Time      `gorm:"column:meeting_updated_at;autoUpdateTime" json:"meeting_updated_at"`
	MeetingDeletedAt gorm.DeletedAt `gorm:"column:meeting_deleted_at;index" json:"-"`
}

func (MeetingModel) TableName() string {
	return "meetings"
}

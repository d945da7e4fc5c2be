package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PresentationModel records one awareness session delivered at a school.
// Feedback (the Digital Behavior Survey counts) arrives later via PATCH and
// stays NULL until then.
type PresentationModel struct {
	PresentationID            uuid.UUID      `gorm:"column:presentation_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"presentation_id"`
	PresentationSchoolName    string         `gorm:"column:presentation_school_name;type:varchar(255);not null" json:"presentation_school_name"`
	PresentationAddress       string         `gorm:"column:presentation_address;type:text" json:"presentation_address"`
	PresentationPhoneNo       string         `gorm:"column:presentation_phone_no;type:varchar(20)" json:"presentation_phone_no"`
	PresentationEmailID       string         `gorm:"column:presentation_email_id;type:varchar(255)" json:"presentation_email_id"`
	PresentationPrincipalName string         `gorm:"column:presentation_principal_name;type:varchar(120)" json:"presentation_principal_name"`
	PresentationCity          string         `gorm:"column:presentation_city;type:varchar(120)" json:"presentation_city"`
	PresentationTaluka        string         `gorm:"column:presentation_taluka;type:varchar(120)" json:"presentation_taluka"`
	PresentationDistrict      string         `gorm:"column:presentation_district;type:varchar(120)" json:"presentation_district"`
	PresentationMedium        string         `gorm:"column:presentation_medium;type:varchar(20)" json:"presentation_medium"`
	PresentationDate          time.Time      `gorm:"column:presentation_date;type:date;not null" json:"presentation_date"`
	PresentationTimeFrom      string         `gorm:"column:presentation_time_from;type:varchar(10)" json:"presentation_time_from"`
	PresentationTimeTo        string         `gorm:"column:presentation_time_to;type:varchar(10)" json:"presentation_time_to"`
	PresentationClassGroup    string         `gorm:"column:presentation_class_group;type:varchar(10);not null" json:"presentation_class_group"`
	PresentationRating        string         `gorm:"column:presentation_rating;type:varchar(20)" json:"presentation_rating"`
	PresentationRemarks       string         `gorm:"column:presentation_remarks;type:text" json:"presentation_remarks"`
	PresentationTotalBoys     int            `gorm:"column:presentation_total_boys;not null" json:"presentation_total_boys"`
	PresentationTotalGirls    int            `gorm:"column:presentation_total_girls;not null" json:"presentation_total_girls"`
	PresentationTotalStudents int            `gorm:"column:presentation_total_students;not null" json:"presentation_total_students"`
	PresentationFeedback      datatypes.JSON `gorm:"column:presentation_feedback;type:jsonb" json:"presentation_feedback"`

	PresentationGroupID       uuid.UUID `gorm:"column:presentation_group_id;type:uuid;not null;index" json:"presentation_group_id"`
	PresentationInstitutionID uuid.UUID `gorm:"column:presentation_institution_id;type:uuid;not null;index" json:"presentation_institution_id"`
	PresentationSecretaryID   uuid.UUID `gorm:"column:presentation_secretary_id;type:uuid;not null" json:"presentation_secretary_id"`

	PresentationCreatedAt time.Time      `gorm:"column:presentation_created_at;autoCreateTime" json:"presentation_created_at"`
	PresentationUpdatedAt time.Time      `gorm:"column:presentation_updated_at;autoUpdateTime" json:"presentation_updated_at"`
	PresentationDeletedAt gorm.DeletedAt `gorm:"column:presentation_deleted_at;index" json:"-"`

	StudentClasses []PresentationStudentClassModel `gorm:"foreignKey:StudentClassPresentationID;references:PresentationID" json:"student_classes,omitempty"`
}

func (PresentationModel) TableName() string {
	return "presentations"
}

// PresentationStudentClassModel is one grade row of a presentation's audience.
type PresentationStudentClassModel struct {
	StudentClassID             uuid.UUID `gorm:"column:student_class_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"student_class_id"`
	StudentClassPresentationID uuid.UUID `gorm:"column:student_class_presentation_id;type:uuid;not null;index" json:"student_class_presentation_id"`
	StudentClassType           string    `gorm:"column:student_class_type;type:varchar(10);not null" json:"student_class_type"`
	StudentClassLabel          string    `gorm:"column:student_class_label;type:varchar(20);not null" json:"student_class_label"`
	StudentClassBoysCount      int       `gorm:"column:student_class_boys_count;not null" json:"student_class_boys_count"`
	StudentClassGirlsCount     int       `gorm:"column:student_class_girls_count;not null" json:"student_class_girls_count"`

	StudentClassCreatedAt time.Time `gorm:"column:student_class_created_at;autoCreateTime" json:"student_class_created_at"`
}

func (PresentationStudentClassModel) TableName() string {
	return "presentation_student_classes"
}

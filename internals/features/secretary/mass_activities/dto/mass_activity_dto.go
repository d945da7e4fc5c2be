package dto

import helper "cyberwarrior_backend/internals/helpers"

// CreateMassActivityRequest keeps the legacy wire names. institutionId stays
// in the body because bulk-import tooling posts on behalf of institutions.
type CreateMassActivityRequest struct {
	ActivityName        string          `json:"activityName" validate:"required"`
	ActivityDescription string          `json:"activityDescription"`
	Date                string          `json:"date" validate:"required"`
	Duration            string          `json:"duration"`
	Location            string          `json:"location"`
	Participants        *helper.FlexInt `json:"participants" validate:"required"`
	Stakeholders        string          `json:"stakeholders"`
	SocialMediaLinks    []string        `json:"socialMediaLinks"`
	MediaLinks          []string        `json:"mediaLinks"`
	InstitutionID       string          `json:"institutionId" validate:"required,uuid4"`
}

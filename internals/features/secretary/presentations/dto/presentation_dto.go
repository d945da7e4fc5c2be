package dto

import "encoding/json"

// StudentClassRequest keeps the legacy wire keys, including the
// capital-G "GirlsCount" older clients still send.
type StudentClassRequest struct {
	ClassType  string `json:"classType"`
	BoysCount  int    `json:"boysCount"`
	GirlsCount int    `json:"GirlsCount"`
}

// CreatePresentationRequest mirrors the presentation-details form payload.
// cyberWarriors carries the team name.
type CreatePresentationRequest struct {
	CyberWarriors    string                `json:"cyberWarriors" validate:"required"`
	SchoolName       string                `json:"schoolName" validate:"required"`
	Address          string                `json:"address"`
	PhoneNo          string                `json:"phoneNo"`
	EmailID          string                `json:"emailId" validate:"omitempty,email"`
	PrincipalName    string                `json:"principalName"`
	City             string                `json:"city"`
	Taluka           string                `json:"taluka"`
	District         string                `json:"district"`
	Medium           string                `json:"medium"`
	PresentationDate string                `json:"presentationDate" validate:"required"`
	TimeFrom         string                `json:"timeFrom"`
	TimeTo           string                `json:"timeTo"`
	ClassGroup       string                `json:"classGroup" validate:"required"`
	Rating           string                `json:"presentationRating"`
	Remarks          string                `json:"remarks"`
	StudentData      []StudentClassRequest `json:"studentData" validate:"required,min=1"`
}

// FeedbackRequest carries the raw survey counts; the controller validates
// them against the presentation's class band before storing.
type FeedbackRequest struct {
	FeedbackData json.RawMessage `json:"feedbackData" validate:"required"`
}

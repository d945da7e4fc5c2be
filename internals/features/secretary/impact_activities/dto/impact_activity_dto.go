package dto

import (
	"encoding/json"

	helper "cyberwarrior_backend/internals/helpers"
)

// CreateImpactActivityRequest keeps the legacy wire names; duration and
// participants may arrive as numeric strings from older clients.
type CreateImpactActivityRequest struct {
	CyberWarriors     string          `json:"cyberWarriors" validate:"required"`
	Organization      string          `json:"organization" validate:"required"`
	LeaderName        string          `json:"leaderName"`
	MessagePropagated string          `json:"messagePropagated"`
	Date              string          `json:"date" validate:"required"`
	ActivityDuration  helper.FlexInt  `json:"activityDuration"`
	Location          string          `json:"location"`
	Participants      *helper.FlexInt `json:"participants" validate:"required"`
	ResourceInvolved  string          `json:"resourceInvolved"`
	SocialLinks       []string        `json:"socialLinks"`
	MediaLinks        []string        `json:"mediaLinks"`
	Remarks           string          `json:"remarks"`
}

type FeedbackRequest struct {
	FeedbackData json.RawMessage `json:"feedbackData" validate:"required"`
}

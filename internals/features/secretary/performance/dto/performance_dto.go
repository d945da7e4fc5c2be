package dto

import "cyberwarrior_backend/internals/features/secretary/performance/model"

type CreateWarriorRequest struct {
	Name      string               `json:"name" validate:"required"`
	GroupName string               `json:"groupName" validate:"required"`
	Targets   model.WarriorTargets `json:"target" validate:"required"`
}

type AddFrameChallengeRequest struct {
	Date          string `json:"date" validate:"required"`
	ChallengeName string `json:"challengeName" validate:"required"`
}

type AddSocialMediaPostRequest struct {
	Date          string `json:"date" validate:"required"`
	NumberOfPosts int    `json:"numberOfPosts" validate:"required,min=1"`
	AccountID     string `json:"accountId" validate:"required"`
}

type AddMediaCoverageRequest struct {
	Date      string `json:"date" validate:"required"`
	MediaName string `json:"mediaName" validate:"required"`
	Link      string `json:"link" validate:"omitempty,url"`
}

type DatedLink struct {
	Date string `json:"date" validate:"required"`
	URL  string `json:"url" validate:"required,url"`
}

// ReplaceLinksRequest replaces the proof links a warrior has attached to one
// presentation or impact activity. The entry itself is addressed in the path.
type ReplaceLinksRequest struct {
	MediaLinks       []DatedLink `json:"mediaLinks" validate:"dive"`
	SocialMediaLinks []DatedLink `json:"socialMediaLinks" validate:"dive"`
}

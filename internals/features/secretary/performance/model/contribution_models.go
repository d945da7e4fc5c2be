package model

import (
	"time"

	"github.com/google/uuid"
)

// FrameChallengeModel is one completed frame-challenge entry by a warrior.
type FrameChallengeModel struct {
	ChallengeID        uuid.UUID `gorm:"column:challenge_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"challenge_id"`
	ChallengeWarriorID uuid.UUID `gorm:"column:challenge_warrior_id;type:uuid;not null;index" json:"challenge_warrior_id"`
	ChallengeDate      time.Time `gorm:"column:challenge_date;type:date;not null" json:"challenge_date"`
	ChallengeName      string    `gorm:"column:challenge_name;type:varchar(255);not null" json:"challenge_name"`

	ChallengeCreatedAt time.Time `gorm:"column:challenge_created_at;autoCreateTime" json:"challenge_created_at"`
}

func (FrameChallengeModel) TableName() string {
	return "frame_challenges"
}

// SocialMediaPostModel records a batch of posts published from one account.
type SocialMediaPostModel struct {
	PostID        uuid.UUID `gorm:"column:post_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"post_id"`
	PostWarriorID uuid.UUID `gorm:"column:post_warrior_id;type:uuid;not null;index" json:"post_warrior_id"`
	PostDate      time.Time `gorm:"column:post_date;type:date;not null" json:"post_date"`
	PostCount     int       `gorm:"column:post_count;not null" json:"post_count"`
	PostAccountID string    `gorm:"column:post_account_id;type:varchar(120);not null" json:"post_account_id"`

	PostCreatedAt time.Time `gorm:"column:post_created_at;autoCreateTime" json:"post_created_at"`
}

func (SocialMediaPostModel) TableName() string {
	return "social_media_posts"
}

// MediaCoverageModel records one press or media mention earned by a warrior.
type MediaCoverageModel struct {
	CoverageID        uuid.UUID `gorm:"column:coverage_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"coverage_id"`
	CoverageWarriorID uuid.UUID `gorm:"column:coverage_warrior_id;type:uuid;not null;index" json:"coverage_warrior_id"`
	CoverageDate      time.Time `gorm:"column:coverage_date;type:date;not null" json:"coverage_date"`
	CoverageMediaName string    `gorm:"column:coverage_media_name;type:varchar(255);not null" json:"coverage_media_name"`
	CoverageLink      string    `gorm:"column:coverage_link;type:text" json:"coverage_link"`

	CoverageCreatedAt time.Time `gorm:"column:coverage_created_at;autoCreateTime" json:"coverage_created_at"`
}

func (MediaCoverageModel) TableName() string {
	return "media_coverages"
}

const (
	LinkParentPresentation = "presentation"
	LinkParentImpact       = "impact"

	LinkKindMedia  = "media"
	LinkKindSocial = "social"
)

// ActivityLinkModel is one dated proof link (press article or social post)
// attached by a warrior to a presentation or impact activity.
type ActivityLinkModel struct {
	LinkID         uuid.UUID `gorm:"column:link_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"link_id"`
	LinkWarriorID  uuid.UUID `gorm:"column:link_warrior_id;type:uuid;not null;index" json:"link_warrior_id"`
	LinkParentType string    `gorm:"column:link_parent_type;type:varchar(20);not null" json:"link_parent_type"`
	LinkParentID   uuid.UUID `gorm:"column:link_parent_id;type:uuid;not null;index" json:"link_parent_id"`
	LinkKind       string    `gorm:"column:link_kind;type:varchar(10);not null" json:"link_kind"`
	LinkDate       time.Time `gorm:"column:link_date;type:date;not null" json:"link_date"`
	LinkURL        string    `gorm:"column:link_url;type:text;not null" json:"link_url"`

	LinkCreatedAt time.Time `gorm:"column:link_created_at;autoCreateTime" json:"link_created_at"`
}

func (ActivityLinkModel) TableName() string {
	return "activity_links"
}

package service

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cyberwarrior_backend/internals/features/secretary/groups/model"
)

// FindOrCreateGroup resolves a team by name within an institution, creating it
// on first use. The unique index on (institution, name) makes the upsert safe
// under concurrent submissions.
func FindOrCreateGroup(db *gorm.DB, institutionID uuid.UUID, name string) (*model.GroupModel, error) {
	name = strings.TrimSpace(name)

	group := model.GroupModel{
		GroupName:          name,
		GroupInstitutionID: institutionID,
	}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "group_institution_id"}, {Name: "group_name"}},
		DoNothing: true,
	}).Create(&group).Error
	if err != nil {
		return nil, err
	}

	// DoNothing leaves the ID zero when the row already existed; re-read either way
	// so callers always get the stored row.
	var stored model.GroupModel
	if err := db.Where("group_institution_id = ? AND group_name = ?", institutionID, name).
		First(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

package database

import (
	"log"

	institutionmodel "cyberwarrior_backend/internals/features/institutions/model"
	clubmodel "cyberwarrior_backend/internals/features/secretary/club_performance/model"
	groupmodel "cyberwarrior_backend/internals/features/secretary/groups/model"
	impactmodel "cyberwarrior_backend/internals/features/secretary/impact_activities/model"
	massmodel "cyberwarrior_backend/internals/features/secretary/mass_activities/model"
	meetingmodel "cyberwarrior_backend/internals/features/secretary/meetings/model"
	performancemodel "cyberwarrior_backend/internals/features/secretary/performance/model"
	presentationmodel "cyberwarrior_backend/internals/features/secretary/presentations/model"
	authmodel "cyberwarrior_backend/internals/features/users/auth/model"
	usermodel "cyberwarrior_backend/internals/features/users/user/model"
)

// Migrate keeps the schema in step with the models. gen_random_uuid defaults
// need the pgcrypto extension, created up front.
func Migrate() {
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		log.Printf("[WARN] pgcrypto extension: %v", err)
	}

	err := DB.AutoMigrate(
		&institutionmodel.InstitutionModel{},
		&usermodel.SecretaryModel{},
		&authmodel.TokenBlacklist{},
		&authmodel.RefreshToken{},
		&groupmodel.GroupModel{},
		&presentationmodel.PresentationModel{},
		&presentationmodel.PresentationStudentClassModel{},
		&impactmodel.ImpactActivityModel{},
		&massmodel.MassActivityModel{},
		&meetingmodel.MeetingModel{},
		&meetingmodel.ClubMemberModel{},
		&meetingmodel.ClubProfileModel{},
		&performancemodel.WarriorModel{},
		&performancemodel.FrameChallengeModel{},
		&performancemodel.SocialMediaPostModel{},
		&performancemodel.MediaCoverageModel{},
		&performancemodel.ActivityLinkModel{},
		&clubmodel.ClubCommitmentModel{},
	)
	if err != nil {
		log.Fatalf("[ERROR] migration failed: %v", err)
	}
	log.Println("[INFO] Schema migrated.")
}

package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bankcontroller "cyberwarrior_backend/internals/features/secretary/bank_details/controller"
	clubcontroller "cyberwarrior_backend/internals/features/secretary/club_performance/controller"
	impactcontroller "cyberwarrior_backend/internals/features/secretary/impact_activities/controller"
	masscontroller "cyberwarrior_backend/internals/features/secretary/mass_activities/controller"
	meetingcontroller "cyberwarrior_backend/internals/features/secretary/meetings/controller"
	performancecontroller "cyberwarrior_backend/internals/features/secretary/performance/controller"
	presentationcontroller "cyberwarrior_backend/internals/features/secretary/presentations/controller"
)

// SecretaryRoutes mounts the secretary reporting surface onto an already
// authenticated and role-checked group.
func SecretaryRoutes(secretary fiber.Router, db *gorm.DB) {
	presentations := presentationcontroller.NewPresentationController(db)
	secretary.Post("/presentation", presentations.Create)
	secretary.Get("/presentation", presentations.GetAll)
	secretary.Get("/presentation/:id", presentations.GetByID)
	secretary.Patch("/presentation-feedback/:id", presentations.AttachFeedback)

	impacts := impactcontroller.NewImpactActivityController(db)
	secretary.Post("/impact-activity", impacts.Create)
	secretary.Get("/impact-activity", impacts.GetAll)
	secretary.Patch("/impact-feedback/:id", impacts.AttachFeedback)

	mass := masscontroller.NewMassActivityController(db)
	secretary.Post("/mass-activity", mass.Create)
	secretary.Get("/mass-activity", mass.GetAll)

	bank := bankcontroller.NewBankDetailsController(db)
	secretary.Post("/bank-details", bank.Update)

	meetings := meetingcontroller.NewMeetingController(db)
	secretary.Post("/meetings", meetings.Create)
	secretary.Get("/meetings", meetings.GetAll)
	secretary.Delete("/meetings/:id", meetings.Delete)
	secretary.Put("/club-members", meetings.SaveRoster)
	secretary.Get("/club-members", meetings.GetRoster)

	performance := performancecontroller.NewPerformanceController(db)
	secretary.Post("/warriors", performance.CreateWarrior)
	secretary.Get("/warriors", performance.GetAll)
	secretary.Get("/warriors/:id", performance.GetByID)
	secretary.Patch("/warriors/:id/presentations/:entryId/links", performance.ReplacePresentationLinks)
	secretary.Patch("/warriors/:id/impacts/:entryId/links", performance.ReplaceImpactLinks)
	secretary.Post("/warriors/:id/frame-challenges", performance.AddFrameChallenge)
	secretary.Delete("/warriors/:id/frame-challenges/:challengeId", performance.RemoveFrameChallenge)
	secretary.Post("/warriors/:id/social-media-posts", performance.AddSocialMediaPost)
	secretary.Post("/warriors/:id/media-coverages", performance.AddMediaCoverage)

	club := clubcontroller.NewClubPerformanceController(db)
	secretary.Get("/club-performance", club.GetDashboard)
	secretary.Get("/club-performance/commitments", club.GetCommitments)
	secretary.Patch("/club-performance/commitments", club.UpdateCommitments)
}

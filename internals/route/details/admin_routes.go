package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	institutioncontroller "cyberwarrior_backend/internals/features/institutions/controller"
)

// AdminRoutes mounts institution management for programme administrators.
func AdminRoutes(admin fiber.Router, db *gorm.DB) {
	institutions := institutioncontroller.NewInstitutionController(db)
	admin.Post("/institutions", institutions.Create)
	admin.Get("/institutions", institutions.GetAll)
	admin.Get("/institutions/:id", institutions.GetByID)
}

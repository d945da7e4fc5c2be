package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"cyberwarrior_backend/internals/constants"
	authmiddleware "cyberwarrior_backend/internals/middlewares/auth"
	routeDetails "cyberwarrior_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== SECRETARY =====================
	log.Println("[INFO] Setting up SECRETARY group...")
	secretary := app.Group("/api/secretary",
		authmiddleware.AuthMiddleware(db),
		authmiddleware.OnlyRoles(constants.RoleErrorSecretary("secretary reporting"), constants.SecretaryAndAdmin...),
	)
	routeDetails.SecretaryRoutes(secretary, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/admin",
		authmiddleware.AuthMiddleware(db),
		authmiddleware.OnlyRoles(constants.RoleErrorAdmin("institution management"), constants.AdminOnly...),
	)
	routeDetails.AdminRoutes(admin, db)
}

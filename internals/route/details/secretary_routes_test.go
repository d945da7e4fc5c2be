package details

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

// The secretary surface is consumed by an existing client, so the mounted
// method+path pairs are part of the contract.
func TestSecretaryRouteTable(t *testing.T) {
	app := fiber.New()
	SecretaryRoutes(app.Group("/api/secretary"), nil)

	mounted := map[string]bool{}
	for _, r := range app.GetRoutes() {
		mounted[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{
		"GET /api/secretary/warriors/:id",
		"PATCH /api/secretary/warriors/:id/presentations/:entryId/links",
		"PATCH /api/secretary/warriors/:id/impacts/:entryId/links",
		"PUT /api/secretary/club-members",
		"GET /api/secretary/club-members",
		"PATCH /api/secretary/presentation-feedback/:id",
		"PATCH /api/secretary/impact-feedback/:id",
	} {
		assert.True(t, mounted[want], "missing route %s", want)
	}

	// superseded mounts must not linger next to the current ones
	for _, gone := range []string{
		"GET /api/secretary/warriors/:id/performance",
		"PUT /api/secretary/warriors/:id/links",
		"POST /api/secretary/club-members",
	} {
		assert.False(t, mounted[gone], "stale route %s", gone)
	}
}

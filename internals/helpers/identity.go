package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Locals key set by the auth middleware after token verification.
const LocVerifiedEmail = "verified_email"

// VerifiedEmail returns the caller's verified email, or "" when the request
// carried no valid identity. Engines treat "" as Unauthorized. The email is
// lowercased here so it always matches the casing the directory stores on
// registration, whatever the token carried.
func VerifiedEmail(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocVerifiedEmail).(string); ok {
		return strings.ToLower(strings.TrimSpace(v))
	}
	return ""
}

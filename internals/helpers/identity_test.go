package helper

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

func TestVerifiedEmail(t *testing.T) {
	app := fiber.New()

	t.Run("Given no identity When reading Then empty", func(t *testing.T) {
		c := app.AcquireCtx(&fasthttp.RequestCtx{})
		defer app.ReleaseCtx(c)

		if got := VerifiedEmail(c); got != "" {
			t.Errorf("VerifiedEmail = %q, want empty", got)
		}
	})

	t.Run("Given a mixed-case token email When reading Then it is lowercased to the registration casing", func(t *testing.T) {
		c := app.AcquireCtx(&fasthttp.RequestCtx{})
		defer app.ReleaseCtx(c)

		c.Locals(LocVerifiedEmail, " Admin@Test.com ")
		if got := VerifiedEmail(c); got != "admin@test.com" {
			t.Errorf("VerifiedEmail = %q, want %q", got, "admin@test.com")
		}
	})

	t.Run("Given a non-string local When reading Then empty", func(t *testing.T) {
		c := app.AcquireCtx(&fasthttp.RequestCtx{})
		defer app.ReleaseCtx(c)

		c.Locals(LocVerifiedEmail, 42)
		if got := VerifiedEmail(c); got != "" {
			t.Errorf("VerifiedEmail = %q, want empty", got)
		}
	})
}

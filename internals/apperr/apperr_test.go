package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Unauthorized("no token"), fiber.StatusUnauthorized},
		{Forbidden("nope"), fiber.StatusForbidden},
		{InvalidArgument("bad size"), fiber.StatusBadRequest},
		{NotFound("gone"), fiber.StatusNotFound},
		{Conflict("taken"), fiber.StatusConflict},
		{AlreadyExists("dup"), fiber.StatusConflict},
		{Upstream("provider down", errors.New("timeout")), fiber.StatusBadGateway},
		{errors.New("plain"), fiber.StatusInternalServerError},
		{nil, fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Errorf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestKindOf_WrappedChain(t *testing.T) {
	t.Run("Given an error wrapped with fmt When KindOf Then the kind survives", func(t *testing.T) {
		inner := Conflict("request is no longer pending")
		wrapped := fmt.Errorf("accept failed: %w", inner)
		if KindOf(wrapped) != KindConflict {
			t.Errorf("kind lost through wrapping")
		}
		if !IsKind(wrapped, KindConflict) {
			t.Errorf("IsKind lost through wrapping")
		}
	})

	t.Run("Given an upstream error When Error Then the cause is appended", func(t *testing.T) {
		err := Upstream("failed to save payment record", errors.New("connection reset"))
		if err.Error() != "failed to save payment record: connection reset" {
			t.Errorf("unexpected message: %q", err.Error())
		}
		if errors.Unwrap(err) == nil {
			t.Errorf("cause not unwrappable")
		}
	})
}

package helper

import (
	"errors"

	"go.uber.org/zap"

	"github.com/gofiber/fiber/v2"

	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/apperr"
	"github.com/Tafsirchy/VitalFlow-BackendNew/internals/logger"
)

// FromAppError converts an engine error into the consistent JSON envelope.
// The underlying cause of upstream failures is logged, never sent to the client.
func FromAppError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return Error(c, fe.Code, fe.Message)
	}

	var ae *apperr.Error
	if !errors.As(err, &ae) {
		logger.Log.Error("unclassified error", zap.Error(err))
		return Error(c, fiber.StatusInternalServerError, "Internal server error")
	}

	if ae.Kind == apperr.KindUpstream || ae.Kind == apperr.KindUnknown {
		logger.Log.Error("upstream failure",
			zap.String("kind", ae.Kind.String()),
			zap.String("path", c.Path()),
			zap.Error(ae),
		)
	}
	return Error(c, apperr.HTTPStatus(err), ae.Msg)
}

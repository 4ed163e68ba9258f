package handler

import (
	"errors"
	"net/http"

	"backoffice-service/pkg/upload"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// fileError translates a media error into a response. Rule violations are
// the caller's fault; anything else is an upload failure.
func fileError(c echo.Context, log *zap.Logger, err error) error {
	var ve *upload.ValidationError
	if errors.As(err, &ve) {
		log.Warn("File rejected by upload rules",
			zap.String("field", ve.Field),
			zap.String("reason", ve.Reason))
		return c.JSON(http.StatusBadRequest, echo.Map{"message": ve.Reason})
	}

	log.Error("Media upload failed", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to upload file"})
}

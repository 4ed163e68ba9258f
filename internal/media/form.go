package media

import (
	"context"
	"errors"
	"net/http"

	"backoffice-service/pkg/upload"
	"backoffice-service/prometheus"

	"github.com/labstack/echo/v4"
)

var kindNames = map[upload.Kind]string{
	upload.KindImage:    "image",
	upload.KindVideo:    "video",
	upload.KindDocument: "document",
}

// SaveFormFile validates and uploads an optional multipart file field.
// Returns "" with no error when the field is absent, so callers can keep
// an existing URL. A rules violation is returned as *upload.ValidationError
// before anything is sent to the media store.
func SaveFormFile(c echo.Context, field string, kind upload.Kind) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		// An absent field or a non-multipart body means no new file was
		// submitted; anything else is a broken upload the caller sent
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		return "", &upload.ValidationError{Field: field, Reason: "Malformed file upload"}
	}

	contentType := fh.Header.Get("Content-Type")
	if err := upload.Validate(kind, field, contentType, fh.Size); err != nil {
		prometheus.RecordMediaUpload(kindNames[kind], "rejected")
		return "", err
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if store == nil {
		return "", errors.New("media store is not initialized")
	}

	url, _, err := store.Upload(context.Background(), src)
	if err != nil {
		prometheus.RecordMediaUpload(kindNames[kind], "failed")
		return "", err
	}

	prometheus.RecordMediaUpload(kindNames[kind], "ok")
	return url, nil
}

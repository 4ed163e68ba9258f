package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateImage(t *testing.T) {
	assert.NoError(t, Validate(KindImage, "image", "image/jpeg", 1024))
	assert.NoError(t, Validate(KindImage, "image", "image/jpg", MaxImageSize))
	assert.NoError(t, Validate(KindImage, "image", "image/png", MaxImageSize-1))
}

func TestValidateImageTooLarge(t *testing.T) {
	err := Validate(KindImage, "image", "image/png", MaxImageSize+1)
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "image", vErr.Field)
	assert.Contains(t, vErr.Reason, "4MB")
}

func TestValidateImageWrongType(t *testing.T) {
	err := Validate(KindImage, "image", "image/gif", 1024)
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Reason, "JPEG")
}

func TestValidateVideo(t *testing.T) {
	assert.NoError(t, Validate(KindVideo, "video", "video/mp4", MaxVideoSize))

	err := Validate(KindVideo, "video", "video/mp4", MaxVideoSize+1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "50MB")

	err = Validate(KindVideo, "video", "video/quicktime", 1024)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MP4")
}

func TestValidateDocument(t *testing.T) {
	assert.NoError(t, Validate(KindDocument, "plan_document", "application/pdf", MaxDocumentSize))

	err := Validate(KindDocument, "plan_document", "application/pdf", MaxDocumentSize+1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "50MB")

	err = Validate(KindDocument, "plan_document", "application/msword", 1024)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PDF")
}

func TestValidateUnknownKind(t *testing.T) {
	err := Validate(Kind(99), "file", "image/png", 1024)
	require.Error(t, err)
}

// Package upload holds the file acceptance rules enforced before any media
// submission: on the client before a payload is built, and on the server
// before a file is handed to the media store.
package upload

import (
	"fmt"
)

// Size limits observed as the platform contract.
const (
	MaxImageSize    = 4 * 1024 * 1024  // 4MB
	MaxVideoSize    = 50 * 1024 * 1024 // 50MB
	MaxDocumentSize = 50 * 1024 * 1024 // 50MB
)

// Kind identifies the class of file a form field accepts
type Kind int

const (
	KindImage Kind = iota
	KindVideo
	KindDocument
)

var imageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

var videoTypes = map[string]bool{
	"video/mp4": true,
}

var documentTypes = map[string]bool{
	"application/pdf": true,
}

// ValidationError reports a file rejected before submission
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Validate checks a file's declared content type and size against the rules
// for the given kind. A nil error means the file may be attached.
func Validate(kind Kind, field, contentType string, size int64) error {
	switch kind {
	case KindImage:
		if size > MaxImageSize {
			return &ValidationError{Field: field, Reason: "image size exceeds 4MB limit"}
		}
		if !imageTypes[contentType] {
			return &ValidationError{Field: field, Reason: "only JPEG, JPG or PNG images are allowed"}
		}
	case KindVideo:
		if size > MaxVideoSize {
			return &ValidationError{Field: field, Reason: "video size exceeds 50MB limit"}
		}
		if !videoTypes[contentType] {
			return &ValidationError{Field: field, Reason: "only MP4 videos are allowed"}
		}
	case KindDocument:
		if size > MaxDocumentSize {
			return &ValidationError{Field: field, Reason: "document size exceeds 50MB limit"}
		}
		if !documentTypes[contentType] {
			return &ValidationError{Field: field, Reason: "only PDF documents are allowed"}
		}
	default:
		return &ValidationError{Field: field, Reason: "unknown file kind"}
	}
	return nil
}

package media

import (
	"context"
	"errors"
	"io"

	"backoffice-service/pkg/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Uploader stores uploaded media and returns a public URL for it
type Uploader interface {
	Upload(ctx context.Context, file io.Reader) (url string, publicID string, err error)
	Destroy(ctx context.Context, publicID string) error
}

var store Uploader

// Init configures the global media store from configuration
func Init(cfg *config.MediaConfig) error {
	if cfg.URL == "" {
		return errors.New("CLOUDINARY_URL is not configured")
	}

	cld, err := cloudinary.NewFromURL(cfg.URL)
	if err != nil {
		return err
	}

	store = &cloudinaryUploader{cld: cld, folder: cfg.Folder}
	return nil
}

// Get returns the global media store
func Get() Uploader {
	return store
}

// SetUploader swaps the global media store; tests use it to stub uploads
func SetUploader(u Uploader) {
	store = u
}

type cloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func (u *cloudinaryUploader) Upload(ctx context.Context, file io.Reader) (string, string, error) {
	result, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: u.folder})
	if err != nil {
		return "", "", err
	}
	return result.SecureURL, result.PublicID, nil
}

func (u *cloudinaryUploader) Destroy(ctx context.Context, publicID string) error {
	_, err := u.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	return err
}

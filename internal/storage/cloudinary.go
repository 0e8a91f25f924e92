package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type CloudinaryHost struct {
	cld  *cloudinary.Cloudinary
	tags []string
}

func NewCloudinaryHost(cld *cloudinary.Cloudinary) *CloudinaryHost {
	return &CloudinaryHost{
		cld:  cld,
		tags: []string{"wastenot-app"},
	}
}

// Upload stores data under publicID, replacing any earlier image with the
// same id, and returns its https URL.
func (h *CloudinaryHost) Upload(ctx context.Context, data []byte, publicID string) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyImage
	}
	if h.cld == nil {
		return "", fmt.Errorf("cloudinary client is not initialized")
	}

	res, err := h.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		PublicID:   publicID,
		Overwrite:  api.Bool(true),
		Invalidate: api.Bool(true),
		Tags:       h.tags,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image %s: %v", publicID, err)
	}
	if res.Error.Message != "" {
		return "", fmt.Errorf("failed to upload image %s: %s", publicID, res.Error.Message)
	}
	if res.SecureURL == "" {
		return "", fmt.Errorf("upload of %s returned no secure URL", publicID)
	}
	return res.SecureURL, nil
}

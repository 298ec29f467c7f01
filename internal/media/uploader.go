package media

import (
	"context"
	"errors"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"
)

// photoFolder is the fixed namespace employee photos are uploaded under.
const photoFolder = "employee_photos"

//go:generate mockgen -source=uploader.go -destination=mock/uploader_mock.go -package=mock

// Uploader sends raw image data (typically a data URI or URL) to the
// external media host and returns the hosted URL. Failures are for the
// caller to absorb; no call site lets an upload error fail the operation.
type Uploader interface {
	Upload(ctx context.Context, image string) (string, error)
}

type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	logger *zap.Logger
}

// NewCloudinaryUploader builds an uploader from a CLOUDINARY_URL-style
// connection string.
func NewCloudinaryUploader(cloudinaryURL string, logger ...*zap.Logger) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, err
	}

	l := zap.L().Named("media.uploader")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("media.uploader")
	}
	return &CloudinaryUploader{cld: cld, logger: l}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, image string) (string, error) {
	res, err := u.cld.Upload.Upload(ctx, image, uploader.UploadParams{
		Folder:       photoFolder,
		ResourceType: "image",
	})
	if err != nil {
		u.logger.Warn("image upload failed", zap.Error(err))
		return "", err
	}
	// The SDK reports API-level rejections in the result body.
	if res.Error.Message != "" {
		u.logger.Warn("image upload rejected", zap.String("reason", res.Error.Message))
		return "", errors.New(res.Error.Message)
	}

	return res.SecureURL, nil
}

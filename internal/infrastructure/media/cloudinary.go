package media

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"job-portal/internal/config"
)

// Asset is the stored reference to an uploaded file.
type Asset struct {
	PublicID string
	URL      string
}

// Store uploads resume files from their on-disk temp location.
type Store interface {
	Upload(ctx context.Context, filePath string) (Asset, error)
	Destroy(ctx context.Context, publicID string) error
}

const resumeFolder = "job_portal/resumes"

type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryStore(cfg config.CloudinaryConfig) (*CloudinaryStore, error) {
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, errors.New("cloudinary credentials not configured")
	}

	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &CloudinaryStore{cld: cld}, nil
}

func (s *CloudinaryStore) Upload(ctx context.Context, filePath string) (Asset, error) {
	res, err := s.cld.Upload.Upload(ctx, filePath, uploader.UploadParams{
		Folder:       resumeFolder,
		ResourceType: "auto",
	})
	if err != nil {
		return Asset{}, fmt.Errorf("cloudinary upload: %w", err)
	}
	if res.Error.Message != "" {
		return Asset{}, fmt.Errorf("cloudinary upload: %s", res.Error.Message)
	}
	return Asset{PublicID: res.PublicID, URL: res.SecureURL}, nil
}

func (s *CloudinaryStore) Destroy(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	return err
}

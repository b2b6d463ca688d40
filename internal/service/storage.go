package service

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/contactmansi/Recipe-Box/config"
)

// ImageStore persists raw image bytes under a relative name and returns
// the public path the stored image is reachable at.
type ImageStore interface {
	Save(ctx context.Context, data []byte, name string) (string, error)
}

// LocalImageStore writes images to a directory on disk. The server mounts
// the directory under /static.
type LocalImageStore struct {
	Dir string
}

func NewLocalImageStore(dir string) *LocalImageStore {
	return &LocalImageStore{Dir: dir}
}

func (s *LocalImageStore) Save(ctx context.Context, data []byte, name string) (string, error) {
	fullPath := filepath.Join(s.Dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	return "/static/" + name, nil
}

// S3ImageStore uploads images to an S3 bucket and returns the public URL.
type S3ImageStore struct {
	cfg *config.S3Config
}

func NewS3ImageStore(cfg *config.S3Config) *S3ImageStore {
	return &S3ImageStore{cfg: cfg}
}

func (s *S3ImageStore) Save(ctx context.Context, data []byte, name string) (string, error) {
	contentType := http.DetectContentType(data)

	_, err := s.cfg.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.BucketName),
		Key:         aws.String(name),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.cfg.BucketName, name), nil
}

package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/metehanbayar/orman/config"
)

// ErrUnsafePath is returned when a save path tries to escape the public
// directory.
var ErrUnsafePath = fmt.Errorf("save path escapes the public directory")

// ImageService stores menu images, on local disk under the public
// directory or in S3 when a bucket is configured.
type ImageService struct {
	publicDir string
	s3Config  *config.S3Config
	client    *http.Client
}

// NewImageService creates a new ImageService. s3Config may be nil for
// local-disk deployments.
func NewImageService(publicDir string, s3Config *config.S3Config) *ImageService {
	return &ImageService{
		publicDir: publicDir,
		s3Config:  s3Config,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// SaveUpload stores an uploaded image and returns the URL path to serve
// it from.
func (s *ImageService) SaveUpload(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}

	fileName := uniqueFileName(fileHeader.Filename)

	if s.s3Config != nil {
		return s.uploadToS3(ctx, data, "menu-images/"+fileName, contentTypeFor(fileName))
	}

	dir := filepath.Join(s.publicDir, "images")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create image directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, fileName), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}
	return "/public/images/" + fileName, nil
}

// DownloadImage fetches an image from a URL and stores it under the
// public directory at savePath.
func (s *ImageService) DownloadImage(ctx context.Context, imageURL, savePath string) (string, error) {
	cleaned := filepath.Clean("/" + savePath)
	if strings.Contains(savePath, "..") {
		return "", ErrUnsafePath
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return "", fmt.Errorf("invalid image URL: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download image: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to download image, status: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read image data: %w", err)
	}

	if s.s3Config != nil {
		key := strings.TrimPrefix(cleaned, "/")
		return s.uploadToS3(ctx, data, key, contentTypeFor(cleaned))
	}

	target := filepath.Join(s.publicDir, cleaned)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("failed to create image directory: %w", err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}
	return "/public" + cleaned, nil
}

// uploadToS3 uploads image data to S3 and returns the public URL.
func (s *ImageService) uploadToS3(ctx context.Context, data []byte, key, contentType string) (string, error) {
	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, key)
	log.Printf("[ImageService] Uploaded image to S3: %s", publicURL)
	return publicURL, nil
}

// uniqueFileName keeps the original extension but replaces the name with
// a UUID, so uploads never collide or smuggle path separators.
func uniqueFileName(original string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(original)))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg":
	default:
		ext = ".jpg"
	}
	return uuid.New().String() + ext
}

func contentTypeFor(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".svg":
		return "image/svg+xml"
	default:
		return "image/jpeg"
	}
}

// internal/services/storage_service.go
package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/variant-catalog/internal/config"
)

// StorageService stores product image files in S3, or on local disk when no
// AWS credentials are configured.
type StorageService struct {
	s3Client  s3iface.S3API
	bucket    string
	baseURL   string
	localDir  string
	publicURL string
}

type UploadResult struct {
	URL      string `json:"url"`
	Key      string `json:"key"`
	Size     int64  `json:"size"`
	MimeType string `json:"mime_type"`
}

type UploadOptions struct {
	Folder       string
	MaxSize      int64 // in bytes
	AllowedTypes []string
	IsPublic     bool
}

// ProductImageUploadOptions limits product images to 10MB of jpg, png or gif.
var ProductImageUploadOptions = UploadOptions{
	Folder:       "products",
	MaxSize:      10 * 1024 * 1024,
	AllowedTypes: []string{".jpg", ".jpeg", ".png", ".gif"},
	IsPublic:     true,
}

var ErrInvalidImage = fmt.Errorf("%w: file is not a supported image", ErrInvalidInput)

func NewStorageService(cfg *config.Config) (*StorageService, error) {
	if cfg.AWS.AccessKeyID == "" {
		return NewLocalStorageService(cfg.Storage.LocalDir, cfg.Server.PublicURL), nil
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.AWS.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.AWS.AccessKeyID,
			cfg.AWS.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return NewS3StorageService(s3.New(sess), cfg.AWS), nil
}

func NewS3StorageService(client s3iface.S3API, cfg config.AWSConfig) *StorageService {
	baseURL := cfg.CloudFrontURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.Region)
	}

	return &StorageService{
		s3Client: client,
		bucket:   cfg.S3Bucket,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}
}

func NewLocalStorageService(dir, publicURL string) *StorageService {
	return &StorageService{
		localDir:  dir,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

func (s *StorageService) UploadFile(ctx context.Context, file multipart.File, header *multipart.FileHeader, options UploadOptions) (*UploadResult, error) {
	if options.MaxSize > 0 && header.Size > options.MaxSize {
		return nil, invalidInput("file size %d bytes exceeds maximum allowed size %d bytes", header.Size, options.MaxSize)
	}

	if len(options.AllowedTypes) > 0 {
		fileExt := strings.ToLower(filepath.Ext(header.Filename))
		allowed := false
		for _, allowedType := range options.AllowedTypes {
			if fileExt == allowedType {
				allowed = true
				break
			}
		}
		if !allowed {
			return nil, invalidInput("file type %s is not allowed", fileExt)
		}
	}

	key := s.generateFileName(header.Filename, options.Folder)

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(fileBytes)
	}

	if s.s3Client != nil {
		return s.uploadToS3(ctx, fileBytes, key, contentType, options.IsPublic)
	}
	return s.uploadToLocal(fileBytes, key, contentType)
}

func (s *StorageService) uploadToS3(ctx context.Context, fileBytes []byte, key, contentType string, isPublic bool) (*UploadResult, error) {
	params := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(fileBytes),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(fileBytes))),
	}
	if isPublic {
		params.ACL = aws.String(s3.ObjectCannedACLPublicRead)
	}

	if _, err := s.s3Client.PutObjectWithContext(ctx, params); err != nil {
		return nil, fmt.Errorf("failed to upload to S3: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"bucket": s.bucket,
		"key":    key,
		"size":   len(fileBytes),
	}).Info("File uploaded to S3")

	return &UploadResult{
		URL:      s.baseURL + "/" + key,
		Key:      key,
		Size:     int64(len(fileBytes)),
		MimeType: contentType,
	}, nil
}

func (s *StorageService) uploadToLocal(fileBytes []byte, key, contentType string) (*UploadResult, error) {
	path := filepath.Join(s.localDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	if err := os.WriteFile(path, fileBytes, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	return &UploadResult{
		URL:      fmt.Sprintf("%s/uploads/%s", s.publicURL, key),
		Key:      key,
		Size:     int64(len(fileBytes)),
		MimeType: contentType,
	}, nil
}

func (s *StorageService) DeleteFile(ctx context.Context, key string) error {
	if s.s3Client == nil {
		err := os.Remove(filepath.Join(s.localDir, filepath.FromSlash(key)))
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to delete file: %w", err)
		}
		return nil
	}

	_, err := s.s3Client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file from S3: %w", err)
	}
	return nil
}

func (s *StorageService) generateFileName(originalName, folder string) string {
	id := uuid.New()
	ext := strings.ToLower(filepath.Ext(originalName))

	timestamp := time.Now().Format("20060102")
	filename := fmt.Sprintf("%s_%s%s", timestamp, id.String()[:8], ext)

	if folder != "" {
		return fmt.Sprintf("%s/%s", folder, filename)
	}
	return filename
}

// ValidateImage sniffs the file signature and rewinds the file.
func (s *StorageService) ValidateImage(file multipart.File) error {
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read file: %w", err)
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to rewind file: %w", err)
	}

	if !isValidImageType(buffer[:n]) {
		return ErrInvalidImage
	}
	return nil
}

func isValidImageType(buffer []byte) bool {
	// JPEG
	if len(buffer) >= 3 && buffer[0] == 0xFF && buffer[1] == 0xD8 && buffer[2] == 0xFF {
		return true
	}

	// PNG
	if len(buffer) >= 8 && bytes.Equal(buffer[:8], []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}) {
		return true
	}

	// GIF
	if len(buffer) >= 6 && (string(buffer[:6]) == "GIF87a" || string(buffer[:6]) == "GIF89a") {
		return true
	}

	return false
}

package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"wuddevdet/internal/config"
)

var (
	ErrStorageUnavailable = errors.New("avatar storage is not configured")
	ErrUnsupportedImage   = errors.New("unsupported image type")
)

var allowedImageTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

type Storage interface {
	UploadAvatar(ctx context.Context, userID string, fileName string, file io.Reader, size int64) (string, string, error)
	DeleteAvatar(ctx context.Context, objectName string) error
	// ObjectName maps a URL returned by UploadAvatar back to its object. It
	// reports false for URLs this storage did not produce.
	ObjectName(avatarURL string) (string, bool)
}

// objectStore is the part of *minio.Client the avatar storage uses.
type objectStore interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

type MinIOClient struct {
	client  objectStore
	bucket  string
	baseURL string
	now     func() time.Time
}

// NewMinIOClient connects to MinIO and makes sure the avatar bucket exists.
// An empty endpoint yields a storage that refuses every upload.
func NewMinIOClient(cfg *config.Config) (Storage, error) {
	if cfg.MinIO.Endpoint == "" {
		log.Println("MinIO endpoint not set, avatar uploads disabled")
		return Disabled{}, nil
	}

	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating MinIO client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.MinIO.BucketName)
	if err != nil {
		return nil, fmt.Errorf("error checking bucket %s: %w", cfg.MinIO.BucketName, err)
	}
	if !exists {
		err = client.MakeBucket(ctx, cfg.MinIO.BucketName, minio.MakeBucketOptions{Region: cfg.MinIO.Region})
		if err != nil {
			return nil, fmt.Errorf("error creating bucket %s: %w", cfg.MinIO.BucketName, err)
		}
		log.Printf("Created MinIO bucket %s", cfg.MinIO.BucketName)
	}

	return newMinIOClient(client, cfg.MinIO), nil
}

func newMinIOClient(client objectStore, cfg config.MinIO) *MinIOClient {
	return &MinIOClient{
		client:  client,
		bucket:  cfg.BucketName,
		baseURL: publicBaseURL(cfg),
		now:     time.Now,
	}
}

func publicBaseURL(cfg config.MinIO) string {
	if cfg.PublicURL != "" {
		return strings.TrimSuffix(cfg.PublicURL, "/") + "/" + cfg.BucketName
	}
	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.BucketName)
}

func (m *MinIOClient) UploadAvatar(ctx context.Context, userID string, fileName string, file io.Reader, size int64) (string, string, error) {
	fileExt := strings.ToLower(filepath.Ext(fileName))
	contentType, ok := allowedImageTypes[fileExt]
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedImage, fileExt)
	}

	now := m.now()
	objectName := fmt.Sprintf("avatars/%s/%d/%02d/%s%s",
		userID,
		now.Year(),
		now.Month(),
		uuid.New().String(),
		fileExt)

	_, err := m.client.PutObject(ctx, m.bucket, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": fileName,
				"user-id":           userID,
				"uploaded-at":       now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", "", fmt.Errorf("error uploading to MinIO: %w", err)
	}

	return objectName, m.baseURL + "/" + objectName, nil
}

func (m *MinIOClient) DeleteAvatar(ctx context.Context, objectName string) error {
	err := m.client.RemoveObject(ctx, m.bucket, objectName,
		minio.RemoveObjectOptions{
			GovernanceBypass: true,
		})
	if err != nil {
		return fmt.Errorf("error deleting from MinIO: %w", err)
	}
	return nil
}

func (m *MinIOClient) ObjectName(avatarURL string) (string, bool) {
	prefix := m.baseURL + "/"
	if !strings.HasPrefix(avatarURL, prefix) {
		return "", false
	}
	return strings.TrimPrefix(avatarURL, prefix), true
}

// Disabled is the storage used when MinIO is not configured.
type Disabled struct{}

func (Disabled) UploadAvatar(context.Context, string, string, io.Reader, int64) (string, string, error) {
	return "", "", ErrStorageUnavailable
}

func (Disabled) DeleteAvatar(context.Context, string) error {
	return ErrStorageUnavailable
}

func (Disabled) ObjectName(string) (string, bool) {
	return "", false
}

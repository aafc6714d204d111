package utils

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/dmchealth/student-health-clinic/internal/config"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type StorageService struct {
	client   *minio.Client
	bucket   string
	endpoint string
	useSSL   bool
}

func NewStorageService(cfg *config.MinIOConfig) (*StorageService, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.User, cfg.Password, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	// Pastikan bucket ada
	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}

	return &StorageService{
		client:   client,
		bucket:   cfg.Bucket,
		endpoint: fmt.Sprintf("%s://%s", scheme, cfg.Endpoint),
		useSSL:   cfg.UseSSL,
	}, nil
}

// UploadPDF mengarsipkan dokumen PDF (surat keterangan) ke MinIO
func (s *StorageService) UploadPDF(ctx context.Context, folder string, data []byte, name string) (string, error) {
	// Sanitasi nama file
	name = strings.ReplaceAll(name, " ", "-")
	name = strings.ReplaceAll(name, "/", "-")
	fileName := fmt.Sprintf("%s/%s-%s.pdf", folder, name, uuid.New().String()[:8])

	reader := bytes.NewReader(data)
	_, err := s.client.PutObject(ctx, s.bucket, fileName, reader, int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/pdf",
	})
	if err != nil {
		return "", fmt.Errorf("gagal upload PDF: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, fileName), nil
}

// DeleteFile hapus file dari MinIO
func (s *StorageService) DeleteFile(ctx context.Context, fileURL string) error {
	// Extract object name dari URL
	prefix := fmt.Sprintf("%s/%s/", s.endpoint, s.bucket)
	objectName := strings.TrimPrefix(fileURL, prefix)

	return s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{})
}

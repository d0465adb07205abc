package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"moviegrid/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// AssetService manages the placeholder poster art in object storage. Cards
// whose catalog entry has no poster fall back to this asset.
type AssetService struct {
	client    *minio.Client
	bucket    string
	publicURL string
	logger    *logrus.Logger
}

const placeholderObject = "placeholder-poster.jpg"

func NewAssetService(cfg *config.MinIOConfig, logger *logrus.Logger) (*AssetService, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
		"useSSL":   cfg.UseSSL,
	}).Info("MinIO client initialized successfully")

	service := &AssetService{
		client:    minioClient,
		bucket:    cfg.BucketName,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
		logger:    logger,
	}

	if err := service.ensureBucket(context.Background()); err != nil {
		logger.WithError(err).Warn("Failed to configure bucket, but continuing...")
	}

	return service, nil
}

func (s *AssetService) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: "us-east-1"}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		s.logger.WithField("bucket", s.bucket).Info("Bucket created successfully")
	}

	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/*"]
			}
		]
	}`, s.bucket)

	if err := s.client.SetBucketPolicy(ctx, s.bucket, policy); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}

	s.logger.WithField("bucket", s.bucket).Info("Bucket policy set to public read")
	return nil
}

// PlaceholderURL returns the public URL of the shared placeholder asset, or
// empty if it has not been uploaded yet.
func (s *AssetService) PlaceholderURL(ctx context.Context) string {
	if _, err := s.client.StatObject(ctx, s.bucket, placeholderObject, minio.StatObjectOptions{}); err != nil {
		return ""
	}
	return fmt.Sprintf("%s/%s", s.publicURL, placeholderObject)
}

// PresignPlaceholderUpload returns a presigned PUT URL for replacing the
// placeholder asset, plus the public URL it will be served from.
func (s *AssetService) PresignPlaceholderUpload() (string, string, error) {
	expiry := 15 * time.Minute

	presignedURL, err := s.client.PresignedPutObject(
		context.Background(),
		s.bucket,
		placeholderObject,
		expiry,
	)
	if err != nil {
		s.logger.WithError(err).Error("Failed to generate presigned URL")
		return "", "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	publicURL := fmt.Sprintf("%s/%s", s.publicURL, placeholderObject)

	s.logger.WithFields(logrus.Fields{
		"object": placeholderObject,
		"expiry": expiry,
	}).Info("Generated presigned URL")

	return presignedURL.String(), publicURL, nil
}

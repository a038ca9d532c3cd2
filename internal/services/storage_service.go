// internal/services/storage_service.go
package services

import (
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/sirupsen/logrus"

	"github.com/bahiapp/bahi-backend/internal/config"
)

// StorageService wraps the S3 bucket that holds banner images and
// exported report files. Without AWS credentials it degrades to a
// no-op local mode so the API stays usable in development. Files land
// in the bucket out of band; this service only resolves their URLs
// and removes them.
type StorageService struct {
	s3Client *s3.S3
	config   *config.Config
}

func NewStorageService(cfg *config.Config) *StorageService {
	if cfg.AWS.AccessKeyID == "" {
		// Local development - no S3 client.
		return &StorageService{config: cfg}
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
		logrus.WithError(err).Warn("Failed to create AWS session, storage running in local mode")
		return &StorageService{config: cfg}
	}

	return &StorageService{
		s3Client: s3.New(sess),
		config:   cfg,
	}
}

// PublicURL resolves an object key to the URL clients should fetch,
// preferring the CDN when one is configured.
func (s *StorageService) PublicURL(key string) string {
	if key == "" {
		return ""
	}
	if strings.HasPrefix(key, "http://") || strings.HasPrefix(key, "https://") {
		return key
	}
	if s.config.AWS.CloudFrontURL != "" {
		return fmt.Sprintf("%s/%s", strings.TrimSuffix(s.config.AWS.CloudFrontURL, "/"), key)
	}
	if s.s3Client == nil {
		return fmt.Sprintf("/media/%s", key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s",
		s.config.AWS.S3Bucket, s.config.AWS.Region, key)
}

func (s *StorageService) DeleteFile(key string) error {
	if s.s3Client == nil {
		logrus.WithField("key", key).Debug("storage delete skipped, no S3 client")
		return nil
	}

	_, err := s.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(s.config.AWS.S3Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete file from S3: %w", err)
	}
	return nil
}

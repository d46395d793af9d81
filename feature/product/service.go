package product

import (
	"context"
	"fmt"
	"io"
	"strings"

	"retail-storage/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Service uploads product images to the public image bucket.
type Service struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewService creates a new product service.
func NewService(client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{client: client, bucket: bucket, logger: logger}
}

// ensureBucket provisions the image bucket with anonymous read access.
// Product images are non-sensitive, so a public bucket keeps retrieval to a
// plain URL.
func (s *Service) ensureBucket(ctx context.Context) bool {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		s.logger.Error("Failed to check image bucket",
			zap.String("bucket", s.bucket), zap.Error(err))
		return false
	}
	if exists {
		return true
	}

	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		s.logger.Error("Failed to create image bucket",
			zap.String("bucket", s.bucket), zap.Error(err))
		return false
	}
	if err := s.client.SetBucketPolicy(ctx, s.bucket, storage.PublicReadPolicy(s.bucket)); err != nil {
		s.logger.Error("Failed to set image bucket policy",
			zap.String("bucket", s.bucket), zap.Error(err))
		return false
	}

	s.logger.Info("Image bucket created", zap.String("bucket", s.bucket))
	return true
}

// UploadImage stores the payload under "{productID}_{fileName}" and returns
// the public URL, or an empty string on any failure. An existing object with
// the same name is overwritten.
func (s *Service) UploadImage(ctx context.Context, payload io.Reader, size int64, productID, fileName, contentType string) string {
	if !s.ensureBucket(ctx) {
		return ""
	}

	objectName := fmt.Sprintf("%s_%s", productID, fileName)

	opts := minio.PutObjectOptions{ContentType: contentType}
	if _, err := s.client.PutObject(ctx, s.bucket, objectName, payload, size, opts); err != nil {
		s.logger.Error("Failed to upload product image",
			zap.String("product_id", productID), zap.Error(err))
		return ""
	}

	s.logger.Info("Image uploaded", zap.String("product_id", productID),
		zap.String("object", objectName))
	return s.objectURL(objectName)
}

func (s *Service) objectURL(objectName string) string {
	base := strings.TrimRight(s.client.EndpointURL().String(), "/")
	return fmt.Sprintf("%s/%s/%s", base, s.bucket, objectName)
}

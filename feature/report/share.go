package report

import (
	"context"
	"io"
	"strings"

	"retail-storage/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Share is the file-share backend for report artifacts: write-once creation
// and full-content read-back, keyed by file name.
type Share struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewShare creates a new report file share.
func NewShare(client storage.Client, bucket string, logger *zap.Logger) *Share {
	return &Share{client: client, bucket: bucket, logger: logger}
}

// ensureShare provisions the report bucket if it is missing.
func (s *Share) ensureShare(ctx context.Context) bool {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		s.logger.Error("Failed to check report share",
			zap.String("bucket", s.bucket), zap.Error(err))
		return false
	}
	if exists {
		return true
	}

	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		s.logger.Error("Failed to create report share",
			zap.String("bucket", s.bucket), zap.Error(err))
		return false
	}
	s.logger.Info("Report share created", zap.String("bucket", s.bucket))
	return true
}

// Write stores the full content under name in a single upload, sized to
// exactly the content length. A name collision overwrites silently.
func (s *Share) Write(ctx context.Context, content, name string) bool {
	if !s.ensureShare(ctx) {
		return false
	}

	reader := strings.NewReader(content)
	opts := minio.PutObjectOptions{ContentType: "text/csv"}
	if _, err := s.client.PutObject(ctx, s.bucket, name, reader, int64(len(content)), opts); err != nil {
		s.logger.Error("Failed to save report",
			zap.String("file", name), zap.Error(err))
		return false
	}

	s.logger.Info("Report saved", zap.String("file", name))
	return true
}

// Read returns the full content stored under name. A missing file and a
// failed read both yield ("", false).
func (s *Share) Read(ctx context.Context, name string) (string, bool) {
	if _, err := s.client.StatObject(ctx, s.bucket, name, minio.StatObjectOptions{}); err != nil {
		s.logger.Warn("Report not found", zap.String("file", name), zap.Error(err))
		return "", false
	}

	obj, err := s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		s.logger.Error("Failed to download report",
			zap.String("file", name), zap.Error(err))
		return "", false
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		s.logger.Error("Failed to read report content",
			zap.String("file", name), zap.Error(err))
		return "", false
	}
	return string(data), true
}

// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified interface for the
// operations the retail gateway needs: provisioning buckets, uploading
// content, and reading it back. The abstraction supports both AWS S3 and
// self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easy to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: Lazy, idempotent bucket provisioning.
//   - SetBucketPolicy: Applies the public-read policy for image buckets.
//   - PutObject: Uploads content (with size and options).
//   - StatObject: Existence check before a download.
//   - GetObject: Retrieves content as a stream.
//   - EndpointURL: Base URL for building public object URLs.
package storage

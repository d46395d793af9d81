package product

import (
	"bytes"
	"context"
	"net/url"
	"testing"

	"retail-storage/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func endpoint() *url.URL {
	return &url.URL{Scheme: "http", Host: "localhost:9000"}
}

func TestService_UploadImage(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		client := new(mocks.Client)
		svc := NewService(client, "product-images", zap.NewNop())

		client.On("BucketExists", mock.Anything, "product-images").Return(true, nil)
		client.On("PutObject", mock.Anything, "product-images", "prod-1_widget.png",
			mock.Anything, int64(4), mock.Anything).Return(minio.UploadInfo{}, nil)
		client.On("EndpointURL").Return(endpoint())

		payload := bytes.NewReader([]byte("data"))
		url := svc.UploadImage(context.Background(), payload, 4, "prod-1", "widget.png", "image/png")

		assert.Equal(t, "http://localhost:9000/product-images/prod-1_widget.png", url)
	})

	t.Run("ProvisionsPublicBucket", func(t *testing.T) {
		client := new(mocks.Client)
		svc := NewService(client, "product-images", zap.NewNop())

		client.On("BucketExists", mock.Anything, "product-images").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "product-images", mock.Anything).Return(nil)
		client.On("SetBucketPolicy", mock.Anything, "product-images", mock.Anything).Return(nil)
		client.On("PutObject", mock.Anything, "product-images", mock.Anything,
			mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)
		client.On("EndpointURL").Return(endpoint())

		payload := bytes.NewReader([]byte("data"))
		url := svc.UploadImage(context.Background(), payload, 4, "prod-1", "widget.png", "image/png")

		assert.NotEmpty(t, url)
		client.AssertCalled(t, "SetBucketPolicy", mock.Anything, "product-images", mock.Anything)
	})

	t.Run("UploadFailure", func(t *testing.T) {
		client := new(mocks.Client)
		svc := NewService(client, "product-images", zap.NewNop())

		client.On("BucketExists", mock.Anything, "product-images").Return(true, nil)
		client.On("PutObject", mock.Anything, "product-images", mock.Anything,
			mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, assert.AnError)

		payload := bytes.NewReader([]byte("data"))
		url := svc.UploadImage(context.Background(), payload, 4, "prod-1", "widget.png", "image/png")

		assert.Empty(t, url)
	})

	t.Run("ProvisioningFailure", func(t *testing.T) {
		client := new(mocks.Client)
		svc := NewService(client, "product-images", zap.NewNop())

		client.On("BucketExists", mock.Anything, "product-images").Return(false, assert.AnError)

		payload := bytes.NewReader([]byte("data"))
		url := svc.UploadImage(context.Background(), payload, 4, "prod-1", "widget.png", "image/png")

		assert.Empty(t, url)
		client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything,
			mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPriceValue(t *testing.T) {
	assert.Equal(t, 9.99, priceValue("9.99"))
	assert.Equal(t, 0.0, priceValue(""))
	assert.Equal(t, 0.0, priceValue("not-a-number"))
}

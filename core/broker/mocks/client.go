package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of broker.Client
type Client struct {
	mock.Mock
}

func (m *Client) EnsureQueue(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *Client) Publish(ctx context.Context, queue string, body []byte) error {
	args := m.Called(ctx, queue, body)
	return args.Error(0)
}

func (m *Client) Fetch(ctx context.Context, queue string, max int) ([][]byte, error) {
	args := m.Called(ctx, queue, max)
	if msgs, ok := args.Get(0).([][]byte); ok {
		return msgs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) IsHealthy() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *Client) Close() error {
	args := m.Called()
	return args.Error(0)
}

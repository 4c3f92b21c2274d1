package testutil

import (
	"context"

	"github.com/letybo/ordering/internal/support"
	"github.com/stretchr/testify/mock"
)

var _ support.Client = (*MockSupportClient)(nil)

type MockSupportClient struct {
	mock.Mock
}

func NewMockSupportClient() *MockSupportClient {
	return &MockSupportClient{}
}

func (m *MockSupportClient) CreateThread(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockSupportClient) AddMessage(ctx context.Context, threadID, text string) error {
	args := m.Called(ctx, threadID, text)
	return args.Error(0)
}

func (m *MockSupportClient) CreateRun(ctx context.Context, threadID string) (string, error) {
	args := m.Called(ctx, threadID)
	return args.String(0), args.Error(1)
}

func (m *MockSupportClient) GetRunStatus(ctx context.Context, threadID, runID string) (support.RunStatus, error) {
	args := m.Called(ctx, threadID, runID)
	return args.Get(0).(support.RunStatus), args.Error(1)
}

func (m *MockSupportClient) WaitForRun(ctx context.Context, threadID, runID string) (support.RunStatus, error) {
	args := m.Called(ctx, threadID, runID)
	return args.Get(0).(support.RunStatus), args.Error(1)
}

func (m *MockSupportClient) LatestMessage(ctx context.Context, threadID string) (string, error) {
	args := m.Called(ctx, threadID)
	return args.String(0), args.Error(1)
}

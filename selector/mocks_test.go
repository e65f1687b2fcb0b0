package selector

import (
	"context"

	"github.com/sestrella/ecsr/client"
	"github.com/stretchr/testify/mock"
)

var (
	_ client.Client = (*MockClient)(nil)
	_ Chooser       = (*MockChooser)(nil)
)

// MockClient mocks the client.Client interface
type MockClient struct {
	mock.Mock
}

func (m *MockClient) ListClusters(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockClient) ListServices(ctx context.Context, cluster string) ([]string, error) {
	args := m.Called(ctx, cluster)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockClient) ListTasks(ctx context.Context, cluster string, service string) ([]string, error) {
	args := m.Called(ctx, cluster, service)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockClient) ListContainers(ctx context.Context, cluster string, task string) ([]string, error) {
	args := m.Called(ctx, cluster, task)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockChooser mocks the Chooser interface
type MockChooser struct {
	mock.Mock
}

func (m *MockChooser) Select(title string, options []string) (int, error) {
	args := m.Called(title, options)
	return args.Int(0), args.Error(1)
}

func (m *MockChooser) Input(title string) (string, error) {
	args := m.Called(title)
	return args.String(0), args.Error(1)
}

package coordinator

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"projectmanager/internal/core/ports"
)

type remoteClientMock struct {
	mock.Mock
}

var _ ports.RemoteClient = (*remoteClientMock)(nil)

func (m *remoteClientMock) Get(ctx context.Context, path string, out any) error {
	args := m.Called(ctx, path, out)
	return args.Error(0)
}

func (m *remoteClientMock) Post(ctx context.Context, path string, body any, out any) error {
	args := m.Called(ctx, path, body, out)
	return args.Error(0)
}

func (m *remoteClientMock) Patch(ctx context.Context, path string, body any, out any) error {
	args := m.Called(ctx, path, body, out)
	return args.Error(0)
}

func (m *remoteClientMock) Delete(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

type memoryVault struct {
	mu     sync.Mutex
	values map[string]string
}

var _ ports.KeyValue = (*memoryVault)(nil)

func newMemoryVault() *memoryVault {
	return &memoryVault{values: map[string]string{}}
}

func (v *memoryVault) Get(key string) (string, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	value, ok := v.values[key]
	return value, ok
}

func (v *memoryVault) Set(pairs map[string]string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	for key, value := range pairs {
		v.values[key] = value
	}
	return nil
}

func (v *memoryVault) Remove(keys ...string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, key := range keys {
		delete(v.values, key)
	}
	return nil
}

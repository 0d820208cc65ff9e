package usecase_test

import (
	"context"
	"sync"

	"github.com/bnema/readably/internal/domain/entity"
	"github.com/bnema/readably/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// memorySettings is an in-process settings store shared by two simulated pages.
type memorySettings struct {
	mu     sync.Mutex
	values entity.Patch
}

func newMemorySettings() *memorySettings {
	return &memorySettings{values: entity.Patch{}}
}

func (m *memorySettings) Get(_ context.Context, defaults entity.Settings) (entity.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return defaults.Merge(m.values), nil
}

func (m *memorySettings) Set(_ context.Context, patch entity.Patch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for d, v := range patch {
		m.values[d] = v
	}
	return nil
}

func (m *memorySettings) Reset(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = entity.Patch{}
	return nil
}

package storage

import (
	"context"

	"github.com/mfarouk/trend-corpus/internal/corpus"
)

// MockLibraryStore is a mock implementation of LibraryStore for testing
type MockLibraryStore struct {
	Saved    *corpus.Library
	LoadLib  *corpus.Library
	SaveErr  error
	LoadErr  error
	CloseErr error

	SaveCalls int
	LoadCalls int
}

func (m *MockLibraryStore) Save(ctx context.Context, lib *corpus.Library) error {
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Saved = lib
	return nil
}

func (m *MockLibraryStore) Load(ctx context.Context) (*corpus.Library, error) {
	m.LoadCalls++
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.LoadLib, nil
}

func (m *MockLibraryStore) Close() error {
	return m.CloseErr
}

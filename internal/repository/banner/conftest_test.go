package banner

import (
	"context"
	"testing"

	"github.com/kailas-cloud/propdex/internal/db"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	hgetAllFn   func(ctx context.Context, key string) (map[string]string, error)
	hsetMultiFn func(ctx context.Context, items []db.HashSetItem) error
}

func (m *mockStore) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	if m.hgetAllFn != nil {
		return m.hgetAllFn(ctx, key)
	}
	return map[string]string{}, nil
}

func (m *mockStore) HSetMulti(ctx context.Context, items []db.HashSetItem) error {
	if m.hsetMultiFn != nil {
		return m.hsetMultiFn(ctx, items)
	}
	return nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms, "propdex:"), ms
}

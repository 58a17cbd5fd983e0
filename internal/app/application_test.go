package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"techexpo.dev/landing/internal/appconf"
	"techexpo.dev/landing/internal/docstore"
)

var _ Store = (*docstore.Client)(nil)

type fakeStore struct {
	pingErr  error
	closeErr error
	closed   bool
}

func (f *fakeStore) Name() string                  { return "techexpo" }
func (f *fakeStore) Ping(ctx context.Context) error { return f.pingErr }
func (f *fakeStore) Close(ctx context.Context) error {
	f.closed = true
	return f.closeErr
}

func TestIsDevelopment(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{"development", true},
		{"test", true},
		{"production", false},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			a := &Application{Config: appconf.Config{EnvName: tt.env}}
			assert.Equal(t, tt.want, a.IsDevelopment())
		})
	}
}

func TestStoreHelpers(t *testing.T) {
	ctx := context.Background()

	t.Run("without a handle", func(t *testing.T) {
		a := &Application{}
		assert.Empty(t, a.StoreName())
		assert.ErrorIs(t, a.PingStore(ctx), docstore.ErrNotConnected)
		assert.NoError(t, a.CloseStore(ctx))
	})

	t.Run("with a handle", func(t *testing.T) {
		store := &fakeStore{pingErr: assert.AnError, closeErr: assert.AnError}
		a := &Application{Store: store}

		assert.Equal(t, "techexpo", a.StoreName())
		assert.ErrorIs(t, a.PingStore(ctx), assert.AnError)
		assert.ErrorIs(t, a.CloseStore(ctx), assert.AnError)
		assert.True(t, store.closed)
	})
}

package wazero_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/ladle-app/ladle"
	ladlewazero "github.com/ladle-app/ladle/wazero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackend_Preload(t *testing.T) {
	t.Parallel()

	t.Run("flags start unset", func(t *testing.T) {
		t.Parallel()

		b := ladlewazero.NewBackend(func() ([]byte, error) { return nil, errors.New("unused") })
		assert.False(t, b.Ready())
		assert.False(t, b.Failed())
	})

	t.Run("loader failure marks the backend failed", func(t *testing.T) {
		t.Parallel()

		b := ladlewazero.NewBackend(func() ([]byte, error) {
			return nil, errors.New("module not downloaded")
		})

		err := b.Preload(context.Background())
		require.Error(t, err)
		assert.Equal(t, ladle.ETUNSUPPORTED, ladle.ErrorType(err))
		assert.True(t, b.Failed())
		assert.False(t, b.Ready())
	})

	t.Run("invalid module marks the backend failed", func(t *testing.T) {
		t.Parallel()

		b := ladlewazero.NewBackend(func() ([]byte, error) {
			return []byte("not a wasm binary"), nil
		})
		defer b.Close(context.Background())

		err := b.Preload(context.Background())
		require.Error(t, err)
		assert.Equal(t, ladle.ETUNSUPPORTED, ladle.ErrorType(err))
		assert.True(t, b.Failed())
	})

	t.Run("initialization runs once and is shared", func(t *testing.T) {
		t.Parallel()

		var calls int
		var mu sync.Mutex
		b := ladlewazero.NewBackend(func() ([]byte, error) {
			mu.Lock()
			calls++
			mu.Unlock()
			return nil, errors.New("still broken")
		})

		var wg sync.WaitGroup
		for n := 0; n < 8; n++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = b.Preload(context.Background())
			}()
		}
		wg.Wait()

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, 1, calls)
	})
}

func TestBackend_Extract(t *testing.T) {
	t.Parallel()

	t.Run("unavailable sandbox reports UnsupportedPlatform", func(t *testing.T) {
		t.Parallel()

		b := ladlewazero.NewBackend(func() ([]byte, error) {
			return nil, errors.New("module not downloaded")
		})

		_, err := b.Extract(context.Background(), "<html></html>", "https://example.com/r", false)
		require.Error(t, err)
		assert.Equal(t, ladle.ETUNSUPPORTED, ladle.ErrorType(err))
	})

	t.Run("host queries fail the same way", func(t *testing.T) {
		t.Parallel()

		b := ladlewazero.NewBackend(func() ([]byte, error) {
			return nil, errors.New("module not downloaded")
		})

		_, err := b.SupportedHosts(context.Background())
		require.Error(t, err)

		ok, err := b.IsHostSupported(context.Background(), "example.com")
		require.Error(t, err)
		assert.False(t, ok)
	})
}

func TestBackend_Name(t *testing.T) {
	t.Parallel()

	b := ladlewazero.NewBackend(nil)
	assert.Equal(t, "sandbox", b.Name())
}

package pubkeystore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	calls := 0
	lookup := store.Wrap(func(_ context.Context, address string) (string, error) {
		calls++
		if address == "unknown" {
			return "", errors.New("no pubkey")
		}
		return "02" + address, nil
	})

	ctx := context.Background()

	t.Run("should serve repeated lookups from the cache", func(t *testing.T) {
		first, err := lookup(ctx, "addrA")
		require.NoError(t, err)
		second, err := lookup(ctx, "addrA")
		require.NoError(t, err)

		assert.Equal(t, "02addrA", first)
		assert.Equal(t, first, second)
		assert.Equal(t, 1, calls)
	})

	t.Run("should not cache failures", func(t *testing.T) {
		before := calls
		_, err := lookup(ctx, "unknown")
		require.Error(t, err)
		_, err = lookup(ctx, "unknown")
		require.Error(t, err)
		assert.Equal(t, before+2, calls)
	})
}

package integration_tests

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"professionals-api/internal/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Integration_ResetTokenIsSingleUse(t *testing.T) {
	store := cache.New(getTestRedis(t))
	ctx := context.Background()
	require.NoError(t, store.StoreResetToken(ctx, "Ada@Example.com", "tok-1", time.Minute))

	ok, err := store.ConsumeResetToken(ctx, "ada@example.com", "wrong")
	require.NoError(t, err)
	assert.False(t, ok, "a wrong token must not burn the stored one")

	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := store.ConsumeResetToken(ctx, "ada@example.com", "tok-1")
			if err == nil && ok {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), wins.Load(), "only one concurrent reset may succeed")
}

func TestStore_Integration_SessionCutoff(t *testing.T) {
	store := cache.New(getTestRedis(t))
	ctx := context.Background()

	cutoff, err := store.SessionsRevokedAt(ctx, 11)
	require.NoError(t, err)
	assert.True(t, cutoff.IsZero())

	before := time.Now().Truncate(time.Second)
	require.NoError(t, store.RevokeUserSessions(ctx, 11, time.Minute))

	cutoff, err = store.SessionsRevokedAt(ctx, 11)
	require.NoError(t, err)
	assert.False(t, cutoff.Before(before))

	other, err := store.SessionsRevokedAt(ctx, 12)
	require.NoError(t, err)
	assert.True(t, other.IsZero())
}

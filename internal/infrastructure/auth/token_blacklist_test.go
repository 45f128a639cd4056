package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appidentity "github.com/jetcongo/backend/internal/application/identity"
	"github.com/jetcongo/backend/internal/infrastructure/auth"
)

func TestInMemoryTokenBlacklist_Revoke(t *testing.T) {
	blacklist := auth.NewInMemoryTokenBlacklist()
	ctx := context.Background()

	err := blacklist.Revoke(ctx, "token-1", 1*time.Hour)
	require.NoError(t, err)

	revoked, err := blacklist.IsRevoked(ctx, "token-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	// Other token IDs are unaffected
	revoked, err = blacklist.IsRevoked(ctx, "token-2")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestInMemoryTokenBlacklist_ExpirationCleanup(t *testing.T) {
	blacklist := auth.NewInMemoryTokenBlacklist()
	ctx := context.Background()

	err := blacklist.Revoke(ctx, "token-expire", 1*time.Millisecond)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	revoked, err := blacklist.IsRevoked(ctx, "token-expire")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestInMemoryTokenBlacklist_NonPositiveTTLIsNoOp(t *testing.T) {
	blacklist := auth.NewInMemoryTokenBlacklist()
	ctx := context.Background()

	// An already expired token needs no blacklist entry
	err := blacklist.Revoke(ctx, "token-stale", -1*time.Minute)
	require.NoError(t, err)

	revoked, err := blacklist.IsRevoked(ctx, "token-stale")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestInMemoryTokenBlacklist_MultipleTokens(t *testing.T) {
	blacklist := auth.NewInMemoryTokenBlacklist()
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		tokenID := "token-" + string(rune('a'+i))
		err := blacklist.Revoke(ctx, tokenID, 1*time.Hour)
		require.NoError(t, err)
	}

	for i := 0; i < 10; i++ {
		tokenID := "token-" + string(rune('a'+i))
		revoked, err := blacklist.IsRevoked(ctx, tokenID)
		require.NoError(t, err)
		assert.True(t, revoked, "token %s should be revoked", tokenID)
	}

	revoked, err := blacklist.IsRevoked(ctx, "not-revoked")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestTokenBlacklist_Interface(t *testing.T) {
	var _ appidentity.TokenBlacklist = (*auth.InMemoryTokenBlacklist)(nil)
	var _ appidentity.TokenBlacklist = (*auth.RedisTokenBlacklist)(nil)
	var _ appidentity.TokenBlacklist = auth.NewInMemoryTokenBlacklist()
}

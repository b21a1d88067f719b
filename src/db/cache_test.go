package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionCacheLifecycle(t *testing.T) {
	InitCache()

	key := TransactionCacheKey(7)
	SetTransactionCache(key, "payload")
	Cache.Wait()

	got, found := Cache.Get(key)
	require.True(t, found)
	assert.Equal(t, "payload", got)

	DelTransactionCache(key)
	_, found = Cache.Get(key)
	assert.False(t, found)

	TransactionCacheKeys.RLock()
	_, tracked := TransactionCacheKeys.m[key]
	TransactionCacheKeys.RUnlock()
	assert.False(t, tracked)
}

func TestClearAllTransactionCaches(t *testing.T) {
	InitCache()

	keys := []string{TransactionCacheKey(1), TransactionCacheKey(2), TransactionCacheKey(3)}
	for _, key := range keys {
		SetTransactionCache(key, key)
	}
	Cache.Wait()

	ClearAllTransactionCaches()

	for _, key := range keys {
		_, found := Cache.Get(key)
		assert.False(t, found, "key %s should be gone", key)
	}

	TransactionCacheKeys.RLock()
	remaining := len(TransactionCacheKeys.m)
	TransactionCacheKeys.RUnlock()
	assert.Zero(t, remaining)
}

func TestUserCacheIsolatedFromTransactionCache(t *testing.T) {
	InitCache()

	userKey := UserCacheKey(5)
	txnKey := TransactionCacheKey(5)
	SetUserCache(userKey, "user")
	SetTransactionCache(txnKey, "txns")
	Cache.Wait()

	ClearAllTransactionCaches()

	_, found := Cache.Get(userKey)
	assert.True(t, found, "clearing transaction caches must not evict user entries")
}

package db

import (
	"fmt"
	"log"
	"sync"

	"github.com/dgraph-io/ristretto"
)

// Cache keys are tracked per type so an admin can clear all caches of
// one kind without touching the rest.
var (
	Cache                *ristretto.Cache
	TransactionCacheKeys = struct {
		sync.RWMutex
		m map[string]struct{}
	}{m: make(map[string]struct{})}
	UserCacheKeys = struct {
		sync.RWMutex
		m map[string]struct{}
	}{m: make(map[string]struct{})}
)

func InitCache() {
	var err error
	Cache, err = ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}
}

func TransactionCacheKey(userID int64) string {
	return fmt.Sprintf("transactions:%d", userID)
}

func UserCacheKey(userID int64) string {
	return fmt.Sprintf("user:%d", userID)
}

// Transaction Cache Functions
func SetTransactionCache(cacheKey string, value interface{}) {
	TransactionCacheKeys.Lock()
	TransactionCacheKeys.m[cacheKey] = struct{}{}
	TransactionCacheKeys.Unlock()
	Cache.Set(cacheKey, value, 1)
}

func DelTransactionCache(cacheKey string) {
	TransactionCacheKeys.Lock()
	delete(TransactionCacheKeys.m, cacheKey)
	TransactionCacheKeys.Unlock()
	Cache.Del(cacheKey)
}

func ClearAllTransactionCaches() {
	TransactionCacheKeys.Lock()
	for key := range TransactionCacheKeys.m {
		Cache.Del(key)
	}
	TransactionCacheKeys.m = make(map[string]struct{})
	TransactionCacheKeys.Unlock()
}

// User Cache Functions
func SetUserCache(cacheKey string, value interface{}) {
	UserCacheKeys.Lock()
	UserCacheKeys.m[cacheKey] = struct{}{}
	UserCacheKeys.Unlock()
	Cache.Set(cacheKey, value, 1)
}

func DelUserCache(cacheKey string) {
	UserCacheKeys.Lock()
	delete(UserCacheKeys.m, cacheKey)
	UserCacheKeys.Unlock()
	Cache.Del(cacheKey)
}

func ClearAllUserCaches() {
	UserCacheKeys.Lock()
	for key := range UserCacheKeys.m {
		Cache.Del(key)
	}
	UserCacheKeys.m = make(map[string]struct{})
	UserCacheKeys.Unlock()
}

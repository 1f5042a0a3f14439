package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// hasherPool is a package-level pool of reusable HMAC-SHA256 hash instances.
// Must be initialized via InitHasherPool before use.
var (
	hasherMu   sync.RWMutex
	hasherPool *sync.Pool
)

// InitHasherPool initializes a sync.Pool of HMAC-SHA256 hashers keyed with
// hashKey. An empty key disables hashing: [Hash] then returns nil.
//
// Example usage:
//
//	utils.InitHasherPool("my-secret-key")
func InitHasherPool(hashKey string) {
	hasherMu.Lock()
	defer hasherMu.Unlock()

	if hashKey == "" {
		hasherPool = nil
		return
	}

	key := []byte(hashKey)
	hasherPool = &sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, key)
		},
	}
}

// Hash computes an HMAC-SHA256 signature over data using a hasher pulled
// from the global pool. Returns nil when no key was configured.
//
// Example usage:
//
//	digest := utils.Hash([]byte("some data"))
func Hash(data []byte) []byte {
	hasherMu.RLock()
	pool := hasherPool
	hasherMu.RUnlock()

	if pool == nil {
		return nil
	}

	h := pool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	pool.Put(h)

	return sum
}

// HashString computes an HMAC-SHA256 signature over data with hashKey and
// returns it hex-encoded. It does not use the global pool; the fake remote
// in tests uses it to verify request signatures.
func HashString(data string, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write([]byte(data))
	return hex.EncodeToString(hasher.Sum(nil))
}

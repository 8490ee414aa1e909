package distcache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// hashKey builds "prefix:sha256(json(parts))".
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(sum[:]))
}

// Hash returns the hex SHA-256 of data (64 characters).
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// PairKey is the cache key of the unordered pair {a, b} within namespace.
// PairKey(ns, a, b) == PairKey(ns, b, a).
func PairKey(namespace, a, b string) string {
	if b < a {
		a, b = b, a
	}
	return hashKey("dist", namespace, a, b)
}

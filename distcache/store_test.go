package distcache_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/antcolony/distcache"
	"github.com/stretchr/testify/require"
)

// TestNullStore never hits.
func TestNullStore(t *testing.T) {
	ctx := context.Background()
	s := distcache.NewNullStore()
	defer s.Close()

	require.NoError(t, s.Set(ctx, "k", []byte("1"), time.Hour))
	data, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, data)
	require.NoError(t, s.Delete(ctx, "k"))
}

// TestFileStore_RoundTrip covers set/get/delete on a temp directory.
func TestFileStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := distcache.NewFileStore(filepath.Join(t.TempDir(), "cache"))
	require.NoError(t, err)
	defer s.Close()

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Set(ctx, "k", []byte("12.5"), 0))
	data, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("12.5"), data)

	require.NoError(t, s.Delete(ctx, "k"))
	require.NoError(t, s.Delete(ctx, "k"))
	_, ok, err = s.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, ok)
}

// TestFileStore_ExpiredAndCorrupt entries read as misses.
func TestFileStore_ExpiredAndCorrupt(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := distcache.NewFileStore(dir)
	require.NoError(t, err)
	require.Equal(t, dir, s.Dir())

	require.NoError(t, s.Set(ctx, "old", []byte("1"), time.Nanosecond))
	time.Sleep(5 * time.Millisecond)
	_, ok, err := s.Get(ctx, "old")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Set(ctx, "bad", []byte("1"), 0))
	h := distcache.Hash([]byte("bad"))
	path := filepath.Join(dir, h[:2], h[2:]+".json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, ok, err = s.Get(ctx, "bad")
	require.NoError(t, err)
	require.False(t, ok)
	require.NoFileExists(t, path)
}

// TestRedisStore runs only against a live server named by ANTCOLONY_TEST_REDIS.
func TestRedisStore(t *testing.T) {
	addr := os.Getenv("ANTCOLONY_TEST_REDIS")
	if addr == "" {
		t.Skip("ANTCOLONY_TEST_REDIS not set")
	}
	ctx := context.Background()
	s, err := distcache.NewRedisStore(ctx, distcache.RedisConfig{Addr: addr, Prefix: "antcolony-test:"})
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set(ctx, "k", []byte("3"), time.Minute))
	data, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("3"), data)

	require.NoError(t, s.Delete(ctx, "k"))
	_, ok, err = s.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, ok)
}

// TestOpen selects backends by name.
func TestOpen(t *testing.T) {
	ctx := context.Background()

	s, err := distcache.Open(ctx, distcache.Config{})
	require.NoError(t, err)
	require.IsType(t, &distcache.NullStore{}, s)

	s, err = distcache.Open(ctx, distcache.Config{Backend: distcache.BackendFile, Dir: t.TempDir()})
	require.NoError(t, err)
	require.IsType(t, &distcache.FileStore{}, s)

	_, err = distcache.Open(ctx, distcache.Config{Backend: "memcached"})
	require.ErrorIs(t, err, distcache.ErrUnknownBackend)
}

// TestPairKey is order-independent and namespace-sensitive.
func TestPairKey(t *testing.T) {
	require.Equal(t, distcache.PairKey("ns", "a", "b"), distcache.PairKey("ns", "b", "a"))
	require.NotEqual(t, distcache.PairKey("ns", "a", "b"), distcache.PairKey("other", "a", "b"))
	require.NotEqual(t, distcache.PairKey("ns", "a", "b"), distcache.PairKey("ns", "a", "c"))
	require.Len(t, distcache.Hash([]byte("x")), 64)
}

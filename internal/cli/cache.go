package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/antcolony/distcache"
)

// envRedisAddr supplies --redis-addr when the flag is not given.
const envRedisAddr = "ANTCOLONY_REDIS_ADDR"

// cacheFlags selects the cross-run distance cache.
type cacheFlags struct {
	backend   string
	dir       string
	redisAddr string
}

func (c *cacheFlags) register(f *pflag.FlagSet) {
	f.StringVar(&c.backend, "cache", distcache.BackendNone, "distance cache: none, file or redis")
	f.StringVar(&c.dir, "cache-dir", "", "file cache directory (default: user cache dir)")
	f.StringVar(&c.redisAddr, "redis-addr", "", "redis address (env "+envRedisAddr+")")
}

func (c *cacheFlags) open(ctx context.Context) (distcache.Store, error) {
	cfg := distcache.Config{Backend: c.backend, Dir: c.dir}
	if cfg.Backend == distcache.BackendFile && cfg.Dir == "" {
		dir, err := defaultCacheDir()
		if err != nil {
			return nil, err
		}
		cfg.Dir = dir
	}
	cfg.Redis.Addr = c.redisAddr
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = os.Getenv(envRedisAddr)
	}
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = "localhost:6379"
	}
	cfg.Redis.Prefix = "antcolony:"

	return distcache.Open(ctx, cfg)
}

func defaultCacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "antcolony"), nil
}

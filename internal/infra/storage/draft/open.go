package draft

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/go-redis/redis/v8"
	bolt "go.etcd.io/bbolt"
)

// Open выбирает backend по схеме строки подключения:
//
//	kvdb://data/drafts.db       - файл bbolt
//	redis://host:6379/0         - Redis
func Open(ctx context.Context, rawURL, password string, ttl time.Duration) (Store, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %q: %v", ErrUnsupportedScheme, rawURL, err)
	}

	switch u.Scheme {
	case "kvdb":
		path := u.Host + u.Path
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("%w: create dir for %q: %v", ErrStore, path, err)
		}
		db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
		if err != nil {
			return nil, fmt.Errorf("%w: open bbolt %q: %v", ErrStore, path, err)
		}
		store, err := NewKVStore(db, ttl)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%w: create bucket: %v", ErrStore, err)
		}
		return store, nil

	case "redis", "rediss":
		opts, err := redis.ParseURL(rawURL)
		if err != nil {
			return nil, fmt.Errorf("%w: parse redis url: %v", ErrStore, err)
		}
		if password != "" {
			opts.Password = password
		}
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("%w: ping redis: %v", ErrStore, err)
		}
		return NewRedisStore(client, ttl), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
}

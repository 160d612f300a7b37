package registry

import (
	"context"
	"encoding/json"

	goredis "github.com/redis/go-redis/v9"

	"github.com/TinyChain-Inc/tc-ir/id"
	"github.com/TinyChain-Inc/tc-ir/library"
)

// redisHashKey is the single Redis hash every RedisStore reads and writes,
// keyed by library.Schema.Id().String(), with JSON-encoded Schema values.
const redisHashKey = "tc-ir:library-schemas"

// RedisStore is a Store backed by a Redis hash, for sharing registered
// schemas across nodes. It implements no consensus, liveness pinging, or
// leader election of its own — it is a plain key/value Store.
type RedisStore struct {
	client *goredis.Client
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore wraps an existing Redis client.
func NewRedisStore(client *goredis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Put(ctx context.Context, schema library.Schema) error {
	data, err := json.Marshal(schema)
	if err != nil {
		return err
	}
	return s.client.HSet(ctx, redisHashKey, schema.Id().String(), data).Err()
}

func (s *RedisStore) Get(ctx context.Context, libID id.Link) (library.Schema, bool, error) {
	data, err := s.client.HGet(ctx, redisHashKey, libID.String()).Result()
	if err == goredis.Nil {
		return library.Schema{}, false, nil
	}
	if err != nil {
		return library.Schema{}, false, err
	}
	var schema library.Schema
	if err := json.Unmarshal([]byte(data), &schema); err != nil {
		return library.Schema{}, false, err
	}
	return schema, true, nil
}

func (s *RedisStore) List(ctx context.Context) ([]library.Schema, error) {
	all, err := s.client.HGetAll(ctx, redisHashKey).Result()
	if err != nil {
		return nil, err
	}
	out := make([]library.Schema, 0, len(all))
	for _, data := range all {
		var schema library.Schema
		if err := json.Unmarshal([]byte(data), &schema); err != nil {
			return nil, err
		}
		out = append(out, schema)
	}
	return out, nil
}

func (s *RedisStore) Delete(ctx context.Context, libID id.Link) error {
	n, err := s.client.HDel(ctx, redisHashKey, libID.String()).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

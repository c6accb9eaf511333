package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/gamegenius/internal/logger"
	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	client     *redis.Client
	prefix     string
	classifier ErrorClassificator
	logger     *logger.Logger
}

// RedisErrorClassifier implements [ErrorClassificator] for Redis replies and
// client errors.
type RedisErrorClassifier struct{}

// NewConnectRedis parses a redis:// or rediss:// DSN, pings the server and
// returns a [KeyValueStore] that namespaces every key with prefix.
func NewConnectRedis(ctx context.Context, dsn, prefix string, log *logger.Logger) (KeyValueStore, error) {
	opts, err := redis.ParseURL(dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectRedis").Msg("invalid redis dsn")
		return nil, fmt.Errorf("%w: parse redis dsn: %w", ErrStorage, err)
	}

	client := redis.NewClient(opts)
	if err = client.Ping(ctx).Err(); err != nil {
		client.Close()
		log.Err(err).Str("func", "NewConnectRedis").Msg("error connecting redis (ping)")
		return nil, storageError("ping", opts.Addr, err, RedisErrorClassifier{})
	}
	log.Debug().Str("func", "NewConnectRedis").Msg("connected to redis successfully")

	return newRedisStore(client, prefix, log), nil
}

func newRedisStore(client *redis.Client, prefix string, log *logger.Logger) *redisStore {
	return &redisStore{
		client:     client,
		prefix:     prefix,
		classifier: RedisErrorClassifier{},
		logger:     log,
	}
}

func (s *redisStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := checkCall(ctx, "get", key); err != nil {
		return "", false, err
	}

	value, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "redisStore.Get").Str("key", key).Msg("failed to get value from redis")
		return "", false, storageError("get", key, err, s.classifier)
	}

	return value, true, nil
}

func (s *redisStore) Set(ctx context.Context, key, value string) error {
	if err := checkCall(ctx, "set", key); err != nil {
		return err
	}

	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		s.logger.Err(err).Str("func", "redisStore.Set").Str("key", key).Msg("failed to set value in redis")
		return storageError("set", key, err, s.classifier)
	}

	return nil
}

func (s *redisStore) Remove(ctx context.Context, key string) error {
	if err := checkCall(ctx, "remove", key); err != nil {
		return err
	}

	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		s.logger.Err(err).Str("func", "redisStore.Remove").Str("key", key).Msg("failed to delete value from redis")
		return storageError("remove", key, err, s.classifier)
	}

	return nil
}

func (s *redisStore) Close() error {
	return s.client.Close()
}

// Classify implements [ErrorClassificator]. OOM replies mean the server hit
// maxmemory; LOADING, BUSY and a closed client mean it cannot serve now.
func (RedisErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return Unclassified
	}
	if errors.Is(err, redis.ErrClosed) {
		return Unavailable
	}

	msg := err.Error()
	switch {
	case strings.HasPrefix(msg, "OOM"):
		return QuotaExceeded
	case strings.HasPrefix(msg, "LOADING"),
		strings.HasPrefix(msg, "BUSY"),
		strings.HasPrefix(msg, "MASTERDOWN"),
		strings.HasPrefix(msg, "TRYAGAIN"):
		return Unavailable
	}

	return Unclassified
}

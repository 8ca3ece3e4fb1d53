package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-webhooks/internal/config"
	"github.com/MKhiriev/go-webhooks/internal/logger"
	"github.com/MKhiriev/go-webhooks/models"
)

// redisRegistryStorage keeps the registry document as one JSON string under
// key, the same layout as the file backend.
type redisRegistryStorage struct {
	client *redis.Client
	key    string
	logger *logger.Logger
}

func NewConnectRedis(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewConnectRedis").Msg("error connecting redis (ping)")
		client.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectRedis").Str("address", cfg.Address).Msg("connected to redis successfully")

	return client, nil
}

// NewRedisRegistryStorage constructs a Redis backed [RegistryStorage].
func NewRedisRegistryStorage(client *redis.Client, key string, logger *logger.Logger) RegistryStorage {
	return &redisRegistryStorage{
		client: client,
		key:    key,
		logger: logger,
	}
}

// InitRegistryKey stores an empty registry under key unless the key is
// already set.
func InitRegistryKey(ctx context.Context, client *redis.Client, key string) error {
	if err := client.SetNX(ctx, key, "{}", 0).Err(); err != nil {
		return fmt.Errorf("error initializing registry key: %w", err)
	}

	return nil
}

// Load reads the registry document. A missing key is unavailable storage.
func (s *redisRegistryStorage) Load(ctx context.Context) (models.Registry, error) {
	content, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, storageUnavailable(fmt.Sprintf("registry key %s does not exist", s.key), nil)
		}
		logger.FromContext(ctx).Err(err).Str("func", "*redisRegistryStorage.Load").Msg("error reading registry key")
		return nil, storageUnavailable(fmt.Sprintf("error reading registry key %s", s.key), err)
	}

	var registry models.Registry
	if err = json.Unmarshal(content, &registry); err != nil {
		return nil, storageUnavailable(fmt.Sprintf("corrupt registry under key %s", s.key), err)
	}

	if registry == nil {
		registry = models.Registry{}
	}

	return registry, nil
}

// Save overwrites the registry document with a single SET.
func (s *redisRegistryStorage) Save(ctx context.Context, registry models.Registry) error {
	payload, err := json.Marshal(registry)
	if err != nil {
		return storageUnavailable("encode registry", err)
	}

	if err = s.client.Set(ctx, s.key, payload, 0).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisRegistryStorage.Save").Msg("error writing registry key")
		return storageUnavailable(fmt.Sprintf("error writing registry key %s", s.key), err)
	}

	return nil
}

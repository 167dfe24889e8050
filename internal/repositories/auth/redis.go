package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hopkinton-cheetahs/rosterd/internal/models"
	"github.com/redis/go-redis/v9"
)

// authKey is the single key holding the password-override document
const authKey = "roster:auth"

// Config holds configuration for the Redis auth repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed auth repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// GetOverrides retrieves the override document from Redis. A missing key
// yields an empty map so callers always fall through to the defaults.
func (r *redisRepository) GetOverrides(ctx context.Context, input *GetOverridesInput) (*GetOverridesOutput, error) {
	authJSON, err := r.client.Get(ctx, authKey).Result()
	if err != nil {
		if err == redis.Nil {
			return &GetOverridesOutput{Hashes: map[models.Role]string{}}, nil
		}
		return nil, fmt.Errorf("failed to get auth overrides: %w", err)
	}

	var hashes map[models.Role]string
	if err := json.Unmarshal([]byte(authJSON), &hashes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal auth overrides: %w", err)
	}

	return &GetOverridesOutput{Hashes: hashes}, nil
}

// SetOverride stores one role's password hash, rewriting the whole document
func (r *redisRepository) SetOverride(ctx context.Context, input *SetOverrideInput) error {
	if input == nil || input.Role == "" || input.Hash == "" {
		return errors.New("input, role and hash cannot be empty")
	}

	current, err := r.GetOverrides(ctx, &GetOverridesInput{})
	if err != nil {
		return err
	}

	current.Hashes[input.Role] = input.Hash

	authJSON, err := json.Marshal(current.Hashes)
	if err != nil {
		return fmt.Errorf("failed to marshal auth overrides: %w", err)
	}

	if err := r.client.Set(ctx, authKey, authJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save auth overrides: %w", err)
	}

	return nil
}

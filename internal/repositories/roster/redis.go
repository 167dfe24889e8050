package roster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hopkinton-cheetahs/rosterd/internal/models"
	"github.com/redis/go-redis/v9"
)

// rosterKey is the single key holding the whole roster document
const rosterKey = "roster:data"

// Config holds configuration for the Redis roster repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed roster repository
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

// GetData retrieves the roster document from Redis. A missing key yields an
// empty document, matching first-run behavior.
func (r *redisRepository) GetData(ctx context.Context, input *GetDataInput) (*GetDataOutput, error) {
	dataJSON, err := r.client.Get(ctx, rosterKey).Result()
	if err != nil {
		if err == redis.Nil {
			return &GetDataOutput{Data: models.NewTeamData()}, nil
		}
		return nil, fmt.Errorf("failed to get roster data: %w", err)
	}

	var data models.TeamData
	if err := json.Unmarshal([]byte(dataJSON), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal roster data: %w", err)
	}

	return &GetDataOutput{Data: &data}, nil
}

// SaveData persists the whole roster document to Redis in one write
func (r *redisRepository) SaveData(ctx context.Context, input *SaveDataInput) error {
	if input == nil || input.Data == nil {
		return errors.New("input and data cannot be nil")
	}

	dataJSON, err := json.Marshal(input.Data)
	if err != nil {
		return fmt.Errorf("failed to marshal roster data: %w", err)
	}

	if err := r.client.Set(ctx, rosterKey, dataJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save roster data: %w", err)
	}

	return nil
}

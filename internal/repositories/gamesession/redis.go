package gamesession

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/ironvale/campaign-api/internal/errors"
	"github.com/ironvale/campaign-api/internal/pkg/clock"
	redisclient "github.com/ironvale/campaign-api/internal/redis"
)

const activeSessionKeyPrefix = "session:active:"

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis session repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed session repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) SetActive(ctx context.Context, input SetActiveInput) (*SetActiveOutput, error) {
	if input.CampaignID == "" {
		return nil, errors.InvalidArgument("campaign ID cannot be empty")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID cannot be empty")
	}

	session := &ActiveSession{
		SessionID:  input.SessionID,
		CampaignID: input.CampaignID,
		StartedAt:  r.clock.Now().Unix(),
	}

	data, err := json.Marshal(session)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal session")
	}

	if err := r.client.Set(ctx, activeSessionKeyPrefix+input.CampaignID, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to set active session")
	}

	return &SetActiveOutput{Session: session}, nil
}

func (r *redisRepository) GetActive(ctx context.Context, input GetActiveInput) (*GetActiveOutput, error) {
	if input.CampaignID == "" {
		return nil, errors.InvalidArgument("campaign ID cannot be empty")
	}

	result, err := r.client.Get(ctx, activeSessionKeyPrefix+input.CampaignID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("campaign %s has no active session", input.CampaignID)
		}
		return nil, errors.Wrapf(err, "failed to get active session")
	}

	var session ActiveSession
	if err := json.Unmarshal([]byte(result), &session); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal session")
	}

	return &GetActiveOutput{Session: &session}, nil
}

func (r *redisRepository) ClearActive(ctx context.Context, input ClearActiveInput) (*ClearActiveOutput, error) {
	if input.CampaignID == "" {
		return nil, errors.InvalidArgument("campaign ID cannot be empty")
	}

	if err := r.client.Del(ctx, activeSessionKeyPrefix+input.CampaignID).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to clear active session")
	}

	return &ClearActiveOutput{}, nil
}

package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ironvale/campaign-api/internal/errors"
	"github.com/ironvale/campaign-api/internal/pkg/clock"
	"github.com/ironvale/campaign-api/internal/pkg/idgen"
	redisclient "github.com/ironvale/campaign-api/internal/redis"
)

// campaignChannel is the pub/sub channel the web tier subscribes each
// connected client to.
func campaignChannel(campaignID string) string {
	return fmt.Sprintf("campaign:%s:events", campaignID)
}

type redisPublisher struct {
	client redisclient.Client
	clock  clock.Clock
	idGen  idgen.Generator
}

// RedisConfig contains configuration for the Redis event publisher.
type RedisConfig struct {
	Client      redisclient.Client
	Clock       clock.Clock
	IDGenerator idgen.Generator
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

// NewRedis creates a pub/sub backed event publisher
func NewRedis(cfg *RedisConfig) (Publisher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	g := cfg.IDGenerator
	if g == nil {
		g = idgen.NewPrefixed("evt")
	}

	return &redisPublisher{
		client: cfg.Client,
		clock:  c,
		idGen:  g,
	}, nil
}

func (p *redisPublisher) Publish(ctx context.Context, event Event) error {
	if event.CampaignID == "" {
		return errors.InvalidArgument("event campaign ID cannot be empty")
	}

	if event.ID == "" {
		event.ID = p.idGen.Generate()
	}
	if event.EmittedAt == 0 {
		event.EmittedAt = p.clock.Now().Unix()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal event")
	}

	if err := p.client.Publish(ctx, campaignChannel(event.CampaignID), data).Err(); err != nil {
		return errors.Wrapf(err, "failed to publish event")
	}

	return nil
}

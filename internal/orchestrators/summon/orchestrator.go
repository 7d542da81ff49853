// Package summon implements the registry of auxiliary creatures a character
// controls: familiars, conjured spirits, animated objects.
package summon

//go:generate mockgen -destination=mock/mock_service.go -package=summonmock github.com/ironvale/campaign-api/internal/orchestrators/summon Service

import (
	"context"
	"log/slog"

	"github.com/ironvale/campaign-api/internal/clients/catalog"
	"github.com/ironvale/campaign-api/internal/entities/dnd5e"
	"github.com/ironvale/campaign-api/internal/errors"
	"github.com/ironvale/campaign-api/internal/events"
	"github.com/ironvale/campaign-api/internal/pkg/clock"
	"github.com/ironvale/campaign-api/internal/pkg/idgen"
	"github.com/ironvale/campaign-api/internal/repositories/character"
)

// Service defines the interface for summon registry operations
type Service interface {
	Store(ctx context.Context, input *StoreInput) (*StoreOutput, error)
	Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error)
	Destroy(ctx context.Context, input *DestroyInput) (*DestroyOutput, error)
	List(ctx context.Context, input *ListInput) (*ListOutput, error)
}

// Config holds the dependencies for the summon orchestrator
type Config struct {
	CharacterRepo character.Repository
	Catalog       catalog.Client
	Publisher     events.Publisher
	IDGenerator   idgen.Generator
	Clock         clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Publisher == nil {
		vb.RequiredField("Publisher")
	}

	return vb.Build()
}

type orchestrator struct {
	charRepo  character.Repository
	catalog   catalog.Client
	publisher events.Publisher
	idGen     idgen.Generator
	clock     clock.Clock
}

// NewOrchestrator creates a new summon orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	gen := cfg.IDGenerator
	if gen == nil {
		gen = idgen.NewPrefixed("summon")
	}
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &orchestrator{
		charRepo:  cfg.CharacterRepo,
		catalog:   cfg.Catalog,
		publisher: cfg.Publisher,
		idGen:     gen,
		clock:     c,
	}, nil
}

func (o *orchestrator) getCharacter(ctx context.Context, id string) (*dnd5e.Character, error) {
	if id == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}
	out, err := o.charRepo.Get(ctx, character.GetInput{ID: id})
	if err != nil {
		return nil, err
	}
	return out.Character, nil
}

func (o *orchestrator) saveCharacter(ctx context.Context, char *dnd5e.Character) error {
	_, err := o.charRepo.Update(ctx, character.UpdateInput{Character: char})
	return err
}

func (o *orchestrator) publish(ctx context.Context, eventType string, char *dnd5e.Character, payload map[string]interface{}) {
	err := o.publisher.Publish(ctx, events.Event{
		Type:        eventType,
		CampaignID:  char.CampaignID,
		CharacterID: char.ID,
		Snapshot:    char,
		Payload:     payload,
	})
	if err != nil {
		slog.Warn("failed to publish event",
			"type", eventType,
			"character_id", char.ID,
			"error", err,
		)
	}
}

// Store registers a new summon on the character. The statblock is seeded
// from the catalog template when a monster slug is given, then overridden by
// the explicit inputs.
func (o *orchestrator) Store(ctx context.Context, input *StoreInput) (*StoreOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument("summon name cannot be empty")
	}
	if _, ok := dnd5e.ValidSummonTypes[input.Type]; !ok {
		return nil, errors.InvalidArgumentf("invalid summon type %q", input.Type)
	}

	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	summon := dnd5e.Summon{
		ID:          o.idGen.Generate(),
		Name:        input.Name,
		Type:        input.Type,
		CustomStats: input.CustomStats,
		SourceSpell: input.SourceSpell,
		Duration:    input.Duration,
		SummonedAt:  o.clock.Now().Unix(),
	}

	if input.MonsterSlug != "" {
		monster, err := o.catalog.GetMonster(ctx, input.MonsterSlug)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get monster %s", input.MonsterSlug)
		}
		summon.MonsterRef = monster.Slug
		summon.MaxHP = monster.HitPoints
	}
	if input.MaxHP > 0 {
		summon.MaxHP = input.MaxHP
	}
	summon.CurrentHP = summon.MaxHP

	if input.UsesWildShapeCharge {
		if char.Class != dnd5e.ClassDruid {
			return nil, errors.WrongClassf("only druids can spend wild shape charges; %s cannot", char.Class)
		}
		if char.WildShapeCharges <= 0 {
			return nil, errors.NoCharges("no wild shape charges remaining")
		}
		char.WildShapeCharges--
	}

	char.SummonedCreatures = append(char.SummonedCreatures, summon)

	if err := o.saveCharacter(ctx, char); err != nil {
		return nil, err
	}

	o.publish(ctx, events.TypeSummonAdded, char, map[string]interface{}{
		"summon_id": summon.ID,
		"name":      summon.Name,
		"type":      summon.Type,
	})

	return &StoreOutput{
		Character: char,
		Summon:    char.Summon(summon.ID),
	}, nil
}

// Update patches a summon in place. A patch that changes nothing skips the
// write and the event.
func (o *orchestrator) Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error) {
	if input.SummonID == "" {
		return nil, errors.InvalidArgument("summon ID cannot be empty")
	}

	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	summon := char.Summon(input.SummonID)
	if summon == nil {
		return nil, errors.SummonNotFoundf("no summon %s on character %s", input.SummonID, char.ID)
	}

	changes := summon.Apply(input.Patch)
	if len(changes) == 0 {
		return &UpdateOutput{Character: char, Summon: summon, Changes: changes}, nil
	}

	if err := o.saveCharacter(ctx, char); err != nil {
		return nil, err
	}

	o.publish(ctx, events.TypeSummonUpdated, char, map[string]interface{}{
		"summon_id": summon.ID,
		"changes":   changes,
	})

	return &UpdateOutput{
		Character: char,
		Summon:    summon,
		Changes:   changes,
	}, nil
}

// Destroy dismisses a summon.
func (o *orchestrator) Destroy(ctx context.Context, input *DestroyInput) (*DestroyOutput, error) {
	if input.SummonID == "" {
		return nil, errors.InvalidArgument("summon ID cannot be empty")
	}

	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	if !char.RemoveSummon(input.SummonID) {
		return nil, errors.SummonNotFoundf("no summon %s on character %s", input.SummonID, char.ID)
	}

	if err := o.saveCharacter(ctx, char); err != nil {
		return nil, err
	}

	o.publish(ctx, events.TypeSummonDismissed, char, map[string]interface{}{
		"summon_id": input.SummonID,
	})

	return &DestroyOutput{Character: char}, nil
}

// List returns every summon the character controls.
func (o *orchestrator) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	return &ListOutput{Summons: char.SummonedCreatures}, nil
}

// Package catalog wraps the dnd5e-api client for the static rule-table
// lookups the engine makes: spell metadata and monster statblocks. The
// catalog is read-only reference data; everything mutable lives on the
// character row.
package catalog

//go:generate mockgen -destination=mock/mock_client.go -package=catalogmock github.com/ironvale/campaign-api/internal/clients/catalog Client

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"

	"github.com/ironvale/campaign-api/internal/errors"
)

// Client defines the interface for catalog lookups
type Client interface {
	// GetSpell fetches spell metadata by slug
	GetSpell(ctx context.Context, slug string) (*SpellData, error)

	// ListSpellsByClass returns every spell on a class's list.
	// Implementation handles reference->details conversion internally.
	ListSpellsByClass(ctx context.Context, class string) ([]*SpellData, error)

	// GetMonster fetches a monster statblock by slug
	GetMonster(ctx context.Context, slug string) (*MonsterData, error)

	// ListBeasts returns every monster of type "beast" with full details,
	// for wild shape eligibility filtering.
	ListBeasts(ctx context.Context) ([]*MonsterData, error)
}

type client struct {
	dnd5eClient dnd5e.Interface
}

// Config contains configuration options for the catalog client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.dnd5eapi.co/api/2014/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	return nil
}

// New creates a catalog client backed by the D&D 5e API.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  httpClient,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create D&D 5e API client")
	}

	// The catalog is static; cache aggressively.
	cachedClient := dnd5e.NewCachedClient(baseClient, cfg.CacheTTL)

	return &client{
		dnd5eClient: cachedClient,
	}, nil
}

func (c *client) GetSpell(_ context.Context, slug string) (*SpellData, error) {
	spell, err := c.dnd5eClient.GetSpell(slug)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get spell %s", slug)
	}
	return convertSpell(spell), nil
}

func (c *client) ListSpellsByClass(_ context.Context, class string) ([]*SpellData, error) {
	slog.Info("Calling D&D 5e API to list spells", "class", class)
	refs, err := c.dnd5eClient.ListSpells(&dnd5e.ListSpellsInput{Class: class})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list spells for class %s", class)
	}
	slog.Info("Got spell references", "count", len(refs))

	// Concurrently load full details for each spell; the cached client
	// makes repeat listings cheap.
	spells := make([]*SpellData, len(refs))
	errChan := make(chan error, len(refs))
	var wg sync.WaitGroup

	for i, ref := range refs {
		wg.Add(1)
		go func(idx int, key string) {
			defer wg.Done()
			spell, err := c.dnd5eClient.GetSpell(key)
			if err != nil {
				errChan <- errors.Wrapf(err, "failed to get spell %s", key)
				return
			}
			spells[idx] = convertSpell(spell)
		}(i, ref.Key)
	}

	wg.Wait()
	close(errChan)
	if err := <-errChan; err != nil {
		return nil, err
	}

	return spells, nil
}

func (c *client) GetMonster(_ context.Context, slug string) (*MonsterData, error) {
	monster, err := c.dnd5eClient.GetMonster(slug)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get monster %s", slug)
	}
	return convertMonster(monster), nil
}

func (c *client) ListBeasts(_ context.Context) ([]*MonsterData, error) {
	slog.Info("Calling D&D 5e API to list monsters")
	refs, err := c.dnd5eClient.ListMonsters()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list monsters")
	}
	slog.Info("Got monster references", "count", len(refs))

	monsters := make([]*MonsterData, len(refs))
	errChan := make(chan error, len(refs))
	var wg sync.WaitGroup

	for i, ref := range refs {
		wg.Add(1)
		go func(idx int, key string) {
			defer wg.Done()
			monster, err := c.dnd5eClient.GetMonster(key)
			if err != nil {
				errChan <- errors.Wrapf(err, "failed to get monster %s", key)
				return
			}
			monsters[idx] = convertMonster(monster)
		}(i, ref.Key)
	}

	wg.Wait()
	close(errChan)
	if err := <-errChan; err != nil {
		return nil, err
	}

	beasts := make([]*MonsterData, 0, len(monsters))
	for _, m := range monsters {
		if m != nil && m.Type == "beast" {
			beasts = append(beasts, m)
		}
	}
	return beasts, nil
}

func convertSpell(spell *entities.Spell) *SpellData {
	if spell == nil {
		return nil
	}
	data := &SpellData{
		Slug:          spell.Key,
		Name:          spell.Name,
		Level:         spell.SpellLevel,
		CastingTime:   spell.CastingTime,
		Range:         spell.Range,
		Duration:      spell.Duration,
		Concentration: spell.Concentration,
		Ritual:        spell.Ritual,
	}
	if spell.SpellSchool != nil {
		data.School = spell.SpellSchool.Name
	}
	return data
}

func convertMonster(monster *entities.Monster) *MonsterData {
	if monster == nil {
		return nil
	}
	data := &MonsterData{
		Slug:            monster.Key,
		Name:            monster.Name,
		Size:            monster.Size,
		Type:            monster.Type,
		ArmorClass:      monster.ArmorClass,
		HitPoints:       monster.HitPoints,
		ChallengeRating: float64(monster.ChallengeRating),
		Abilities: MonsterAbilities{
			Strength:     monster.Strength,
			Dexterity:    monster.Dexterity,
			Constitution: monster.Constitution,
			Intelligence: monster.Intelligence,
			Wisdom:       monster.Wisdom,
			Charisma:     monster.Charisma,
		},
	}
	// Some statblocks omit the speed block entirely; missing means the
	// monster has no movement mode of that kind.
	if monster.Speed != nil {
		data.Speed = MonsterSpeed{
			Walk: monster.Speed.Walk,
			Swim: monster.Speed.Swim,
			Fly:  monster.Speed.Fly,
		}
	}
	if monster.MonsterSenses != nil {
		data.Senses = MonsterSenses{
			Blindsight:        monster.MonsterSenses.Blindsight,
			Darkvision:        monster.MonsterSenses.Darkvision,
			Tremorsense:       monster.MonsterSenses.Tremorsense,
			Truesight:         monster.MonsterSenses.Truesight,
			PassivePerception: monster.MonsterSenses.PassivePerception,
		}
	}
	// Statblock proficiencies mix skills and saving throws; only the
	// skill entries belong on the snapshot.
	for _, p := range monster.Proficiencies {
		if p == nil || p.Proficiency == nil {
			continue
		}
		skill, ok := strings.CutPrefix(p.Proficiency.Key, "skill-")
		if !ok {
			continue
		}
		if data.Skills == nil {
			data.Skills = make(map[string]int)
		}
		data.Skills[skill] = p.Value
	}
	// Traits stay empty until the upstream entity carries special abilities.
	for _, a := range monster.MonsterActions {
		if a == nil {
			continue
		}
		data.Actions = append(data.Actions, MonsterFeature{Name: a.Name, Description: a.Description})
	}
	return data
}

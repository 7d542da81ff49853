// Package spellbook implements the spell slot, prepared-spell, and
// concentration accounting for one character.
package spellbook

//go:generate mockgen -destination=mock/mock_service.go -package=spellbookmock github.com/ironvale/campaign-api/internal/orchestrators/spellbook Service

import (
	"context"
	"log/slog"

	"github.com/ironvale/campaign-api/internal/clients/catalog"
	"github.com/ironvale/campaign-api/internal/entities/dnd5e"
	"github.com/ironvale/campaign-api/internal/errors"
	"github.com/ironvale/campaign-api/internal/events"
	"github.com/ironvale/campaign-api/internal/pkg/clock"
	"github.com/ironvale/campaign-api/internal/repositories/character"
	"github.com/ironvale/campaign-api/internal/rules"
)

// Service defines the interface for spellbook operations
type Service interface {
	GetSpellbook(ctx context.Context, input *GetSpellbookInput) (*GetSpellbookOutput, error)
	ListAvailableSpells(ctx context.Context, input *ListAvailableSpellsInput) (*ListAvailableSpellsOutput, error)
	UseSlot(ctx context.Context, input *UseSlotInput) (*UseSlotOutput, error)
	RestoreSlot(ctx context.Context, input *RestoreSlotInput) (*RestoreSlotOutput, error)
	UpdatePreparedSpells(ctx context.Context, input *UpdatePreparedSpellsInput) (*UpdatePreparedSpellsOutput, error)
	StartConcentration(ctx context.Context, input *StartConcentrationInput) (*StartConcentrationOutput, error)
	EndConcentration(ctx context.Context, input *EndConcentrationInput) (*EndConcentrationOutput, error)
}

// Config holds the dependencies for the spellbook orchestrator
type Config struct {
	CharacterRepo character.Repository
	Catalog       catalog.Client
	Rules         rules.Provider
	Publisher     events.Publisher
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
	if c.Rules == nil {
		vb.RequiredField("Rules")
	}
	if c.Publisher == nil {
		vb.RequiredField("Publisher")
	}

	return vb.Build()
}

type orchestrator struct {
	charRepo  character.Repository
	catalog   catalog.Client
	rules     rules.Provider
	publisher events.Publisher
	clock     clock.Clock
}

// NewOrchestrator creates a new spellbook orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &orchestrator{
		charRepo:  cfg.CharacterRepo,
		catalog:   cfg.Catalog,
		rules:     cfg.Rules,
		publisher: cfg.Publisher,
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

// publish emits a domain event after the state change is committed.
// Publishing is fire-and-forget: failures are logged and never surfaced.
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

// GetSpellbook is a pure read: slot maxima come from the rules table, and
// nothing on the character changes.
func (o *orchestrator) GetSpellbook(ctx context.Context, input *GetSpellbookInput) (*GetSpellbookOutput, error) {
	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	out := &GetSpellbookOutput{
		PreparedSpells:      char.PreparedSpells,
		SlotsRemaining:      make(map[int]int),
		SlotsMax:            o.rules.SlotTable(char.Class, char.Level),
		Concentration:       char.Concentration,
		SpellcastingAbility: o.rules.SpellcastingAbility(char.Class),
	}

	for _, spell := range char.KnownSpells {
		if spell.Level == 0 {
			out.Cantrips = append(out.Cantrips, spell)
		} else {
			out.KnownSpells = append(out.KnownSpells, spell)
		}
	}

	// Report remaining counts for every level the class has slots at,
	// treating absent map entries as zero.
	for level := range out.SlotsMax {
		out.SlotsRemaining[level] = char.SlotsRemaining(level)
	}

	return out, nil
}

func (o *orchestrator) ListAvailableSpells(ctx context.Context, input *ListAvailableSpellsInput) (*ListAvailableSpellsOutput, error) {
	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	if !o.rules.CanPrepareSpells(char.Class) {
		return nil, errors.NotSpellcasterf("class %s does not prepare spells", char.Class)
	}

	spells, err := o.catalog.ListSpellsByClass(ctx, char.Class)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list class spells")
	}

	maxLevel := o.rules.MaxSpellLevel(char.Class, char.Level)
	available := make([]*catalog.SpellData, 0, len(spells))
	for _, spell := range spells {
		if spell.Level >= 1 && spell.Level <= maxLevel {
			available = append(available, spell)
		}
	}

	return &ListAvailableSpellsOutput{Spells: available}, nil
}

func (o *orchestrator) UseSlot(ctx context.Context, input *UseSlotInput) (*UseSlotOutput, error) {
	if input.Level < dnd5e.MinSlotLevel || input.Level > dnd5e.MaxSlotLevel {
		return nil, errors.InvalidArgumentf("slot level must be between %d and %d", dnd5e.MinSlotLevel, dnd5e.MaxSlotLevel)
	}

	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	slotsMax := o.rules.SlotTable(char.Class, char.Level)
	if slotsMax[input.Level] == 0 {
		return nil, errors.NoSlotsAvailablef("%s has no level %d spell slots at level %d", char.Class, input.Level, char.Level)
	}
	if char.SlotsRemaining(input.Level) <= 0 {
		return nil, errors.NoSlotsAvailablef("no level %d spell slots remaining", input.Level)
	}

	char.SetSlotsRemaining(input.Level, char.SlotsRemaining(input.Level)-1)

	if err := o.saveCharacter(ctx, char); err != nil {
		return nil, err
	}

	o.publish(ctx, events.TypeSpellSlotUsed, char, map[string]interface{}{
		"level":     input.Level,
		"remaining": char.SlotsRemaining(input.Level),
	})

	return &UseSlotOutput{
		Character:      char,
		SlotsRemaining: char.SpellSlotsRemaining,
	}, nil
}

// RestoreSlot is best-effort by design: it models abilities that restore
// "up to X" slots, so over-restoring clamps silently instead of erroring.
func (o *orchestrator) RestoreSlot(ctx context.Context, input *RestoreSlotInput) (*RestoreSlotOutput, error) {
	if input.Level < dnd5e.MinSlotLevel || input.Level > dnd5e.MaxSlotLevel {
		return nil, errors.InvalidArgumentf("slot level must be between %d and %d", dnd5e.MinSlotLevel, dnd5e.MaxSlotLevel)
	}

	count := input.Count
	if count == 0 {
		count = 1
	}
	if count < 0 {
		return nil, errors.InvalidArgument("count cannot be negative")
	}

	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	restored := restoreSlots(char, o.rules, input.Level, count)
	if restored == 0 {
		// Nothing to do; skip the write and the event.
		return &RestoreSlotOutput{Character: char, SlotsRemaining: char.SpellSlotsRemaining}, nil
	}

	if err := o.saveCharacter(ctx, char); err != nil {
		return nil, err
	}

	o.publish(ctx, events.TypeSpellSlotRestored, char, map[string]interface{}{
		"level":    input.Level,
		"restored": restored,
	})

	return &RestoreSlotOutput{
		Character:      char,
		SlotsRemaining: char.SpellSlotsRemaining,
		Restored:       restored,
	}, nil
}

// restoreSlots clamps to the class/level maximum and returns the count
// actually applied.
func restoreSlots(char *dnd5e.Character, provider rules.Provider, level, count int) int {
	slotsMax := provider.SlotTable(char.Class, char.Level)
	maxAtLevel := slotsMax[level]
	current := char.SlotsRemaining(level)

	target := current + count
	if target > maxAtLevel {
		target = maxAtLevel
	}
	if target <= current {
		return 0
	}

	char.SetSlotsRemaining(level, target)
	return target - current
}

func (o *orchestrator) UpdatePreparedSpells(ctx context.Context, input *UpdatePreparedSpellsInput) (*UpdatePreparedSpellsOutput, error) {
	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	if !o.rules.CanPrepareSpells(char.Class) {
		return nil, errors.NotSpellcasterf("class %s does not prepare spells", char.Class)
	}

	// Prepared spells are a set; dedupe before checking the limit.
	seen := make(map[string]struct{}, len(input.SpellSlugs))
	slugs := make([]string, 0, len(input.SpellSlugs))
	for _, slug := range input.SpellSlugs {
		if _, ok := seen[slug]; ok {
			continue
		}
		seen[slug] = struct{}{}
		slugs = append(slugs, slug)
	}

	limit := o.rules.PreparedLimit(char.Class, char.Level, char.SpellcastingMod)
	if len(slugs) > limit {
		return nil, errors.TooManyPreparedf("cannot prepare %d spells; limit is %d", len(slugs), limit)
	}

	accessible, err := o.catalog.ListSpellsByClass(ctx, char.Class)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list class spells")
	}

	maxLevel := o.rules.MaxSpellLevel(char.Class, char.Level)
	byslug := make(map[string]*catalog.SpellData, len(accessible))
	for _, spell := range accessible {
		byslug[spell.Slug] = spell
	}

	for _, slug := range slugs {
		spell, ok := byslug[slug]
		if !ok {
			return nil, errors.UnknownSpellf("%s is not on the %s spell list", slug, char.Class)
		}
		if spell.Level < 1 || spell.Level > maxLevel {
			return nil, errors.UnknownSpellf("%s (level %d) cannot be prepared at level %d", slug, spell.Level, char.Level)
		}
	}

	char.PreparedSpells = slugs

	if err := o.saveCharacter(ctx, char); err != nil {
		return nil, err
	}

	o.publish(ctx, events.TypePreparedSpellsUpdated, char, map[string]interface{}{
		"prepared_spells": slugs,
	})

	return &UpdatePreparedSpellsOutput{
		Character:      char,
		PreparedSpells: slugs,
	}, nil
}

// StartConcentration always replaces any existing entry: casting a new
// concentration spell breaks the old one. That is a game rule, not a user
// choice, so there is no conflict error here.
func (o *orchestrator) StartConcentration(ctx context.Context, input *StartConcentrationInput) (*StartConcentrationOutput, error) {
	if input.SpellSlug == "" {
		return nil, errors.InvalidArgument("spell slug cannot be empty")
	}

	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	entry := &dnd5e.Concentration{
		SpellSlug: input.SpellSlug,
		StartedAt: o.clock.Now().Unix(),
	}

	// Enrich from the catalog when reachable; a catalog outage must not
	// block concentration tracking.
	if spell, err := o.catalog.GetSpell(ctx, input.SpellSlug); err != nil {
		slog.Warn("failed to look up concentration spell",
			"spell", input.SpellSlug,
			"error", err,
		)
	} else if spell != nil {
		entry.SpellName = spell.Name
		entry.Duration = spell.Duration
	}

	replaced := char.Concentration
	char.Concentration = entry

	if err := o.saveCharacter(ctx, char); err != nil {
		return nil, err
	}

	payload := map[string]interface{}{
		"spell_slug": input.SpellSlug,
	}
	if replaced != nil {
		payload["replaced"] = replaced.SpellSlug
	}
	o.publish(ctx, events.TypeConcentrationStarted, char, payload)

	return &StartConcentrationOutput{
		Character:     char,
		Concentration: entry,
		Replaced:      replaced,
	}, nil
}

// EndConcentration is idempotent: ending with nothing active is a no-op,
// not an error.
func (o *orchestrator) EndConcentration(ctx context.Context, input *EndConcentrationInput) (*EndConcentrationOutput, error) {
	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	ended := char.Concentration
	if ended == nil {
		return &EndConcentrationOutput{Character: char}, nil
	}

	char.Concentration = nil

	if err := o.saveCharacter(ctx, char); err != nil {
		return nil, err
	}

	o.publish(ctx, events.TypeConcentrationEnded, char, map[string]interface{}{
		"spell_slug": ended.SpellSlug,
	})

	return &EndConcentrationOutput{
		Character: char,
		Ended:     ended,
	}, nil
}

// Package rest implements short and long rest resolution plus the
// short-rest slot-recovery abilities (Arcane Recovery and kin).
package rest

//go:generate mockgen -destination=mock/mock_service.go -package=restmock github.com/ironvale/campaign-api/internal/orchestrators/rest Service

import (
	"context"
	"log/slog"

	"github.com/ironvale/campaign-api/internal/entities/dnd5e"
	"github.com/ironvale/campaign-api/internal/errors"
	"github.com/ironvale/campaign-api/internal/events"
	"github.com/ironvale/campaign-api/internal/pkg/clock"
	"github.com/ironvale/campaign-api/internal/repositories/character"
	"github.com/ironvale/campaign-api/internal/rules"
)

// Service defines the interface for rest operations
type Service interface {
	TakeRest(ctx context.Context, input *TakeRestInput) (*TakeRestOutput, error)
	GetRecoveryOptions(ctx context.Context, input *GetRecoveryOptionsInput) (*GetRecoveryOptionsOutput, error)
	UseRecovery(ctx context.Context, input *UseRecoveryInput) (*UseRecoveryOutput, error)
	SpendResource(ctx context.Context, input *SpendResourceInput) (*SpendResourceOutput, error)
}

// Config holds the dependencies for the rest orchestrator
type Config struct {
	CharacterRepo character.Repository
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
	rules     rules.Provider
	publisher events.Publisher
	clock     clock.Clock
}

// NewOrchestrator creates a new rest orchestrator with the provided dependencies
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

// TakeRest applies a full rest. Resting is idempotent: resting at full
// resources is a valid no-op rest, never an error.
func (o *orchestrator) TakeRest(ctx context.Context, input *TakeRestInput) (*TakeRestOutput, error) {
	if input.RestType != dnd5e.RestTypeShort && input.RestType != dnd5e.RestTypeLong {
		return nil, errors.InvalidArgumentf("rest type must be %q or %q", dnd5e.RestTypeShort, dnd5e.RestTypeLong)
	}

	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	var restored map[string]interface{}
	var messages []string
	switch input.RestType {
	case dnd5e.RestTypeLong:
		restored, messages = o.applyLongRest(char)
	case dnd5e.RestTypeShort:
		restored, messages = o.applyShortRest(char)
	}

	// Any rest, short or long, opens a fresh recovery-ability cycle.
	char.ResetRecoveryUsed()

	if err := o.saveCharacter(ctx, char); err != nil {
		return nil, err
	}

	label, reason := o.rules.RestDuration(input.RestType, char.Class, char.Subclass)

	o.publish(ctx, events.TypeRestTaken, char, map[string]interface{}{
		"rest_type": input.RestType,
		"duration":  label,
		"restored":  restored,
	})

	return &TakeRestOutput{
		Character:      char,
		RestType:       input.RestType,
		Restored:       restored,
		Messages:       messages,
		DurationLabel:  label,
		DurationReason: reason,
	}, nil
}

func (o *orchestrator) applyLongRest(char *dnd5e.Character) (map[string]interface{}, []string) {
	restored := make(map[string]interface{})
	var messages []string

	if healed := char.MaxHP - char.CurrentHP; healed > 0 {
		restored["hit_points"] = healed
		messages = append(messages, "hit points restored to maximum")
	}
	char.CurrentHP = char.MaxHP
	char.TempHP = 0

	// All slots back, whatever the source.
	slots := o.rules.SlotTable(char.Class, char.Level)
	if regained := slotsRegained(char, slots); regained > 0 {
		restored["spell_slots"] = regained
		messages = append(messages, "spell slots restored")
	}
	char.SpellSlotsRemaining = slots

	// Sleeping for eight hours ends concentration.
	if char.Concentration != nil {
		char.Concentration = nil
		messages = append(messages, "concentration ended")
	}

	// Wild shape ends with the day.
	if char.IsTransformed() {
		char.WildShapeForm = nil
		messages = append(messages, "wild shape ended")
	}
	restoreWildShapeCharges(char, o.maxWildShapeCharges(char), restored, &messages)

	refilled := 0
	for i := range char.ClassResources {
		if char.ClassResources[i].Current < char.ClassResources[i].Max {
			refilled++
			messages = append(messages, resourceLabel(&char.ClassResources[i])+" restored")
		}
		char.ClassResources[i].RestoreToMax()
	}
	if refilled > 0 {
		restored["class_resources"] = refilled
	}

	return restored, messages
}

func (o *orchestrator) applyShortRest(char *dnd5e.Character) (map[string]interface{}, []string) {
	restored := make(map[string]interface{})
	var messages []string

	// Pact magic slots come back on a short rest; spellcasting slots do not.
	if o.rules.SlotSource(char.Class) == dnd5e.SlotSourcePactMagic {
		slots := o.rules.SlotTable(char.Class, char.Level)
		if regained := slotsRegained(char, slots); regained > 0 {
			restored["spell_slots"] = regained
			messages = append(messages, "pact magic slots restored")
		}
		char.SpellSlotsRemaining = slots
	}

	restoreWildShapeCharges(char, o.maxWildShapeCharges(char), restored, &messages)

	refilled := 0
	for i := range char.ClassResources {
		if char.ClassResources[i].Recharge != dnd5e.RestTypeShort {
			continue
		}
		if char.ClassResources[i].Current < char.ClassResources[i].Max {
			refilled++
			messages = append(messages, resourceLabel(&char.ClassResources[i])+" restored")
		}
		char.ClassResources[i].RestoreToMax()
	}
	if refilled > 0 {
		restored["class_resources"] = refilled
	}

	return restored, messages
}

func resourceLabel(r *dnd5e.ClassResource) string {
	if r.Name != "" {
		return r.Name
	}
	return r.Key
}

// slotsRegained counts the slots a refill to the given table would add.
func slotsRegained(char *dnd5e.Character, slotsMax map[int]int) int {
	regained := 0
	for level, maxCount := range slotsMax {
		if diff := maxCount - char.SlotsRemaining(level); diff > 0 {
			regained += diff
		}
	}
	return regained
}

func restoreWildShapeCharges(char *dnd5e.Character, maxCharges int, restored map[string]interface{}, messages *[]string) {
	if diff := maxCharges - char.WildShapeCharges; diff > 0 {
		restored["wild_shape_charges"] = diff
		*messages = append(*messages, "wild shape charges restored")
	}
	char.WildShapeCharges = maxCharges
}

func (o *orchestrator) maxWildShapeCharges(char *dnd5e.Character) int {
	if char.Class != dnd5e.ClassDruid {
		return char.WildShapeCharges
	}
	return o.rules.WildShapeMaxCharges(char.Level)
}

// GetRecoveryOptions lists the character's short-rest slot-recovery
// abilities with their remaining per-cycle budgets.
func (o *orchestrator) GetRecoveryOptions(ctx context.Context, input *GetRecoveryOptionsInput) (*GetRecoveryOptionsOutput, error) {
	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	abilities := o.rules.RecoveryAbilities(char.Class, char.Subclass, char.Level)
	options := make([]RecoveryOption, 0, len(abilities))
	for _, a := range abilities {
		used := char.RecoveryUsed(a.Key)
		remaining := a.MaxSlotLevels - used
		if remaining < 0 {
			remaining = 0
		}
		options = append(options, RecoveryOption{
			Key:           a.Key,
			Name:          a.Name,
			MaxSlotLevels: a.MaxSlotLevels,
			MaxSlotLevel:  a.MaxSlotLevel,
			Used:          used,
			Remaining:     remaining,
		})
	}

	return &GetRecoveryOptionsOutput{Abilities: options}, nil
}

// UseRecovery spends a recovery ability to restore slots, one per entry in
// SlotLevels. An accepted call always consumes the full sum of the listed
// levels from the budget, even where a restore clamps at the slot maximum.
func (o *orchestrator) UseRecovery(ctx context.Context, input *UseRecoveryInput) (*UseRecoveryOutput, error) {
	if input.AbilityKey == "" {
		return nil, errors.InvalidArgument("ability key cannot be empty")
	}
	if len(input.SlotLevels) == 0 {
		return nil, errors.InvalidArgument("slot levels cannot be empty")
	}

	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	ability, err := findAbility(o.rules.RecoveryAbilities(char.Class, char.Subclass, char.Level), input.AbilityKey)
	if err != nil {
		return nil, err
	}

	slotsMax := o.rules.SlotTable(char.Class, char.Level)
	cost := 0
	for _, level := range input.SlotLevels {
		if level < dnd5e.MinSlotLevel || level > ability.MaxSlotLevel {
			return nil, errors.InvalidSlotLevelf("%s can restore slot levels %d through %d", ability.Name, dnd5e.MinSlotLevel, ability.MaxSlotLevel)
		}
		if slotsMax[level] == 0 {
			return nil, errors.InvalidSlotLevelf("%s has no level %d spell slots", char.Class, level)
		}
		cost += level
	}

	used := char.RecoveryUsed(ability.Key)
	if used+cost > ability.MaxSlotLevels {
		return nil, errors.RecoveryLimitExceededf(
			"%s has %d slot-levels remaining this rest; the requested slots cost %d",
			ability.Name, ability.MaxSlotLevels-used, cost,
		)
	}

	restored := 0
	for _, level := range input.SlotLevels {
		if char.SlotsRemaining(level) < slotsMax[level] {
			char.SetSlotsRemaining(level, char.SlotsRemaining(level)+1)
			restored++
		}
	}
	char.AddRecoveryUsed(ability.Key, cost)

	if err := o.saveCharacter(ctx, char); err != nil {
		return nil, err
	}

	o.publish(ctx, events.TypeRecoveryUsed, char, map[string]interface{}{
		"ability":     ability.Key,
		"slot_levels": input.SlotLevels,
		"restored":    restored,
	})

	return &UseRecoveryOutput{
		Character:       char,
		Restored:        restored,
		BudgetRemaining: ability.MaxSlotLevels - char.RecoveryUsed(ability.Key),
		SlotsRemaining:  char.SpellSlotsRemaining,
	}, nil
}

// SpendResource consumes uses of a class resource (Rage, Ki points, ...).
// The rest resolver owns the recharge side of the ledger; this is the
// spending side.
func (o *orchestrator) SpendResource(ctx context.Context, input *SpendResourceInput) (*SpendResourceOutput, error) {
	if input.ResourceKey == "" {
		return nil, errors.InvalidArgument("resource key cannot be empty")
	}
	amount := input.Amount
	if amount == 0 {
		amount = 1
	}
	if amount < 0 {
		return nil, errors.InvalidArgument("amount must be positive")
	}

	char, err := o.getCharacter(ctx, input.CharacterID)
	if err != nil {
		return nil, err
	}

	res := char.Resource(input.ResourceKey)
	if res == nil {
		return nil, errors.NotFoundf("no class resource %q", input.ResourceKey)
	}
	if !res.Spend(amount) {
		return nil, errors.NoChargesf("%s has %d of %d uses remaining", resourceLabel(res), res.Current, res.Max)
	}

	if err := o.saveCharacter(ctx, char); err != nil {
		return nil, err
	}

	o.publish(ctx, events.TypeResourceSpent, char, map[string]interface{}{
		"resource":  res.Key,
		"amount":    amount,
		"remaining": res.Current,
	})

	return &SpendResourceOutput{
		Character: char,
		Resource:  res,
	}, nil
}

func findAbility(abilities []rules.RecoveryAbility, key string) (rules.RecoveryAbility, error) {
	for _, a := range abilities {
		if a.Key == key {
			return a, nil
		}
	}
	return rules.RecoveryAbility{}, errors.UnknownRecoveryAbilityf("no recovery ability %q available", key)
}

package rest

import (
	"github.com/ironvale/campaign-api/internal/entities/dnd5e"
)

// TakeRestInput defines the request for taking a rest
type TakeRestInput struct {
	CharacterID string
	// RestType is dnd5e.RestTypeShort or dnd5e.RestTypeLong.
	RestType string
}

// TakeRestOutput defines the response for taking a rest
type TakeRestOutput struct {
	Character *dnd5e.Character
	RestType  string
	// Restored summarizes what the rest brought back, keyed by resource
	// ("hit_points", "spell_slots", ...). Empty for a no-op rest.
	Restored map[string]interface{}
	// Messages are human-readable notes about the restoration, in order.
	Messages []string
	// DurationLabel is the effective rest duration ("1 hour", "8 hours").
	DurationLabel string
	// DurationReason names the class rule that shortened the rest, or "".
	DurationReason string
}

// GetRecoveryOptionsInput defines the request for listing recovery abilities
type GetRecoveryOptionsInput struct {
	CharacterID string
}

// RecoveryOption is one short-rest slot-recovery ability with its current
// budget state.
type RecoveryOption struct {
	Key           string
	Name          string
	MaxSlotLevels int
	MaxSlotLevel  int
	// Used is the slot-levels consumed since the last rest.
	Used int
	// Remaining is the slot-levels still available this cycle.
	Remaining int
}

// GetRecoveryOptionsOutput defines the response for listing recovery abilities
type GetRecoveryOptionsOutput struct {
	Abilities []RecoveryOption
}

// UseRecoveryInput defines the request for spending a recovery ability
type UseRecoveryInput struct {
	CharacterID string
	AbilityKey  string
	// SlotLevels lists one entry per slot to restore; the budget cost of
	// the call is their sum.
	SlotLevels []int
}

// SpendResourceInput defines the request for spending a class resource
type SpendResourceInput struct {
	CharacterID string
	ResourceKey string
	// Amount of uses to consume; zero means one.
	Amount int
}

// SpendResourceOutput defines the response for spending a class resource
type SpendResourceOutput struct {
	Character *dnd5e.Character
	Resource  *dnd5e.ClassResource
}

// UseRecoveryOutput defines the response for spending a recovery ability
type UseRecoveryOutput struct {
	Character *dnd5e.Character
	// Restored is the number of slots actually recovered after clamping
	// each level at its maximum.
	Restored int
	// BudgetRemaining is the slot-levels left in the ability this cycle.
	BudgetRemaining int
	SlotsRemaining  map[int]int
}

// Package events defines the domain events the engine emits and the
// publisher that pushes them to connected clients. Publishing is
// fire-and-forget: the persisted character row is the source of truth, and
// a publish failure never rolls back a committed state change.
package events

//go:generate mockgen -destination=mock/mock_publisher.go -package=eventsmock github.com/ironvale/campaign-api/internal/events Publisher

import (
	"context"

	"github.com/ironvale/campaign-api/internal/entities/dnd5e"
)

// Event types, one per engine mutation.
const (
	TypeSpellSlotUsed          = "spell_slot_used"
	TypeSpellSlotRestored      = "spell_slot_restored"
	TypePreparedSpellsUpdated  = "prepared_spells_updated"
	TypeConcentrationStarted   = "concentration_started"
	TypeConcentrationEnded     = "concentration_ended"
	TypeRestTaken              = "rest_taken"
	TypeRecoveryUsed           = "recovery_used"
	TypeResourceSpent          = "resource_spent"
	TypeWildShapeTransform     = "wild_shape_transform"
	TypeWildShapeDamage        = "wild_shape_damage"
	TypeWildShapeHeal          = "wild_shape_heal"
	TypeWildShapeRevert        = "wild_shape_revert"
	TypeSummonAdded            = "summon_added"
	TypeSummonUpdated          = "summon_updated"
	TypeSummonDismissed        = "summon_dismissed"
)

// Event carries enough payload for other viewers (the DM's screen, the rest
// of the table) to render the change without re-fetching the character.
type Event struct {
	ID          string                 `json:"id"`
	Type        string                 `json:"type"`
	CampaignID  string                 `json:"campaign_id"`
	CharacterID string                 `json:"character_id"`
	Snapshot    *dnd5e.Character       `json:"character_snapshot,omitempty"`
	Payload     map[string]interface{} `json:"payload,omitempty"`
	EmittedAt   int64                  `json:"emitted_at"`
}

// Publisher pushes one event per committed mutation. Delivery is at most
// once; callers log errors and move on.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

package wildshape

import (
	"github.com/ironvale/campaign-api/internal/clients/catalog"
	"github.com/ironvale/campaign-api/internal/entities/dnd5e"
	"github.com/ironvale/campaign-api/internal/rules"
)

// GetStatusInput defines the request for reading wild shape state
type GetStatusInput struct {
	CharacterID string
}

// GetStatusOutput defines the response for reading wild shape state
type GetStatusOutput struct {
	Transformed bool
	Form        *dnd5e.BeastForm
	Charges     int
	MaxCharges  int
	Limits      rules.WildShapeLimits
}

// ListFormsInput defines the request for listing assumable beasts
type ListFormsInput struct {
	CharacterID string
}

// ListFormsOutput defines the response for listing assumable beasts
type ListFormsOutput struct {
	Beasts []*catalog.MonsterData
	Limits rules.WildShapeLimits
}

// TransformInput defines the request for assuming a beast form
type TransformInput struct {
	CharacterID string
	BeastSlug   string
}

// TransformOutput defines the response for assuming a beast form
type TransformOutput struct {
	Character *dnd5e.Character
	Form      *dnd5e.BeastForm
	// ChargesRemaining after the transformation consumed one.
	ChargesRemaining int
}

// DamageInput defines the request for applying damage to the beast form
type DamageInput struct {
	CharacterID string
	Amount      int
}

// DamageOutput defines the response for applying damage to the beast form
type DamageOutput struct {
	Character *dnd5e.Character
	// Form is nil when the damage dropped the form.
	Form *dnd5e.BeastForm
	// Reverted is true when form HP hit zero and the druid snapped back.
	Reverted bool
	// ExcessDamage is the overflow carried into the true form on revert.
	ExcessDamage int
}

// HealInput defines the request for healing the beast form
type HealInput struct {
	CharacterID string
	Amount      int
}

// HealOutput defines the response for healing the beast form
type HealOutput struct {
	Character *dnd5e.Character
	Form      *dnd5e.BeastForm
	// Healed is the amount actually applied after the max-HP cap.
	Healed int
}

// RevertInput defines the request for voluntarily ending the transformation
type RevertInput struct {
	CharacterID string
}

// RevertOutput defines the response for voluntarily ending the transformation
type RevertOutput struct {
	Character *dnd5e.Character
	// Form is the statblock that was just shed.
	Form *dnd5e.BeastForm
}

package summon

import (
	"github.com/ironvale/campaign-api/internal/entities/dnd5e"
)

// StoreInput defines the request for registering a summoned creature
type StoreInput struct {
	CharacterID string
	Name        string
	// Type is one of dnd5e.ValidSummonTypes.
	Type string
	// MonsterSlug optionally seeds the statblock from a catalog template.
	MonsterSlug string
	// MaxHP overrides the template HP when nonzero.
	MaxHP       int
	CustomStats map[string]interface{}
	SourceSpell string
	Duration    string
	// UsesWildShapeCharge spends a wild shape charge to create the summon
	// (Circle of the Shepherd style features).
	UsesWildShapeCharge bool
}

// StoreOutput defines the response for registering a summoned creature
type StoreOutput struct {
	Character *dnd5e.Character
	Summon    *dnd5e.Summon
}

// UpdateInput defines the request for patching a summoned creature
type UpdateInput struct {
	CharacterID string
	SummonID    string
	Patch       dnd5e.SummonPatch
}

// UpdateOutput defines the response for patching a summoned creature
type UpdateOutput struct {
	Character *dnd5e.Character
	Summon    *dnd5e.Summon
	// Changes lists the fields the patch actually altered.
	Changes map[string]interface{}
}

// DestroyInput defines the request for dismissing a summoned creature
type DestroyInput struct {
	CharacterID string
	SummonID    string
}

// DestroyOutput defines the response for dismissing a summoned creature
type DestroyOutput struct {
	Character *dnd5e.Character
}

// ListInput defines the request for listing a character's summons
type ListInput struct {
	CharacterID string
}

// ListOutput defines the response for listing a character's summons
type ListOutput struct {
	Summons []dnd5e.Summon
}

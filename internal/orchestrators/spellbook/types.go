package spellbook

import (
	"github.com/ironvale/campaign-api/internal/clients/catalog"
	"github.com/ironvale/campaign-api/internal/entities/dnd5e"
)

// GetSpellbookInput defines the request for reading a character's spellbook
type GetSpellbookInput struct {
	CharacterID string
}

// GetSpellbookOutput is the full spellbook view. Slot maxima are derived
// from the rules provider, never stored.
type GetSpellbookOutput struct {
	Cantrips            []dnd5e.SpellRef
	KnownSpells         []dnd5e.SpellRef
	PreparedSpells      []string
	SlotsRemaining      map[int]int
	SlotsMax            map[int]int
	Concentration       *dnd5e.Concentration
	SpellcastingAbility string
}

// ListAvailableSpellsInput defines the request for listing preparable spells
type ListAvailableSpellsInput struct {
	CharacterID string
}

// ListAvailableSpellsOutput defines the response for listing preparable spells
type ListAvailableSpellsOutput struct {
	Spells []*catalog.SpellData
}

// UseSlotInput defines the request for expending a spell slot
type UseSlotInput struct {
	CharacterID string
	Level       int
}

// UseSlotOutput defines the response for expending a spell slot
type UseSlotOutput struct {
	Character      *dnd5e.Character
	SlotsRemaining map[int]int
}

// RestoreSlotInput defines the request for restoring spell slots
type RestoreSlotInput struct {
	CharacterID string
	Level       int
	// Count defaults to 1 when zero.
	Count int
}

// RestoreSlotOutput defines the response for restoring spell slots
type RestoreSlotOutput struct {
	Character      *dnd5e.Character
	SlotsRemaining map[int]int
	// Restored is the count actually applied after clamping to the
	// class/level maximum.
	Restored int
}

// UpdatePreparedSpellsInput defines the request for replacing the prepared set
type UpdatePreparedSpellsInput struct {
	CharacterID string
	SpellSlugs  []string
}

// UpdatePreparedSpellsOutput defines the response for replacing the prepared set
type UpdatePreparedSpellsOutput struct {
	Character      *dnd5e.Character
	PreparedSpells []string
}

// StartConcentrationInput defines the request for starting concentration
type StartConcentrationInput struct {
	CharacterID string
	SpellSlug   string
}

// StartConcentrationOutput defines the response for starting concentration
type StartConcentrationOutput struct {
	Character     *dnd5e.Character
	Concentration *dnd5e.Concentration
	// Replaced is the concentration entry that was broken, if any.
	Replaced *dnd5e.Concentration
}

// EndConcentrationInput defines the request for ending concentration
type EndConcentrationInput struct {
	CharacterID string
}

// EndConcentrationOutput defines the response for ending concentration
type EndConcentrationOutput struct {
	Character *dnd5e.Character
	// Ended is the entry that was cleared; nil when there was none.
	Ended *dnd5e.Concentration
}

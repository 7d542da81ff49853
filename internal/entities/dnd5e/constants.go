package dnd5e

// Class keys. Lowercase slugs match the catalog API and the persisted
// character documents.
const (
	ClassBarbarian = "barbarian"
	ClassBard      = "bard"
	ClassCleric    = "cleric"
	ClassDruid     = "druid"
	ClassFighter   = "fighter"
	ClassMonk      = "monk"
	ClassPaladin   = "paladin"
	ClassRanger    = "ranger"
	ClassRogue     = "rogue"
	ClassSorcerer  = "sorcerer"
	ClassWarlock   = "warlock"
	ClassWizard    = "wizard"
)

// Druid circle keys
const (
	SubclassCircleOfTheMoon = "circle-of-the-moon"
	SubclassCircleOfTheLand = "circle-of-the-land"
)

// Rest types
const (
	RestTypeShort = "short"
	RestTypeLong  = "long"
)

// Slot sources. Pact magic slots come back on a short rest; regular
// spellcasting slots only on a long rest.
const (
	SlotSourceSpellcasting = "spellcasting"
	SlotSourcePactMagic    = "pact_magic"
)

// Summon types
const (
	SummonTypeFamiliar = "familiar"
	SummonTypeSpirit   = "spirit"
	SummonTypeBeast    = "beast"
	SummonTypeConjured = "conjured"
	SummonTypeAnimated = "animated"
	SummonTypeOther    = "other"
)

// ValidSummonTypes lists every accepted summon type.
var ValidSummonTypes = map[string]struct{}{
	SummonTypeFamiliar: {},
	SummonTypeSpirit:   {},
	SummonTypeBeast:    {},
	SummonTypeConjured: {},
	SummonTypeAnimated: {},
	SummonTypeOther:    {},
}

// Spell slot levels run 1..9; cantrips are level 0 and never consume slots.
const (
	MinSlotLevel = 1
	MaxSlotLevel = 9
)

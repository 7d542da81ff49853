package rules

import (
	"github.com/ironvale/campaign-api/internal/entities/dnd5e"
)

// SRD implements Provider with the reference 5e ruleset tables.
type SRD struct{}

// NewSRD returns the static reference ruleset.
func NewSRD() *SRD {
	return &SRD{}
}

// fullCasterSlots[characterLevel-1][slotLevel-1] = max slots.
var fullCasterSlots = [20][9]int{
	{2, 0, 0, 0, 0, 0, 0, 0, 0},
	{3, 0, 0, 0, 0, 0, 0, 0, 0},
	{4, 2, 0, 0, 0, 0, 0, 0, 0},
	{4, 3, 0, 0, 0, 0, 0, 0, 0},
	{4, 3, 2, 0, 0, 0, 0, 0, 0},
	{4, 3, 3, 0, 0, 0, 0, 0, 0},
	{4, 3, 3, 1, 0, 0, 0, 0, 0},
	{4, 3, 3, 2, 0, 0, 0, 0, 0},
	{4, 3, 3, 3, 1, 0, 0, 0, 0},
	{4, 3, 3, 3, 2, 0, 0, 0, 0},
	{4, 3, 3, 3, 2, 1, 0, 0, 0},
	{4, 3, 3, 3, 2, 1, 0, 0, 0},
	{4, 3, 3, 3, 2, 1, 1, 0, 0},
	{4, 3, 3, 3, 2, 1, 1, 0, 0},
	{4, 3, 3, 3, 2, 1, 1, 1, 0},
	{4, 3, 3, 3, 2, 1, 1, 1, 0},
	{4, 3, 3, 3, 2, 1, 1, 1, 1},
	{4, 3, 3, 3, 3, 1, 1, 1, 1},
	{4, 3, 3, 3, 3, 2, 1, 1, 1},
	{4, 3, 3, 3, 3, 2, 2, 1, 1},
}

// pactSlot is the warlock progression: all pact slots share one level.
type pactSlot struct {
	count int
	level int
}

var pactSlots = [20]pactSlot{
	{1, 1}, {2, 1}, {2, 2}, {2, 2}, {2, 3}, {2, 3}, {2, 4}, {2, 4},
	{2, 5}, {2, 5}, {3, 5}, {3, 5}, {3, 5}, {3, 5}, {3, 5}, {3, 5},
	{4, 5}, {4, 5}, {4, 5}, {4, 5},
}

var fullCasters = map[string]struct{}{
	dnd5e.ClassBard:     {},
	dnd5e.ClassCleric:   {},
	dnd5e.ClassDruid:    {},
	dnd5e.ClassSorcerer: {},
	dnd5e.ClassWizard:   {},
}

var halfCasters = map[string]struct{}{
	dnd5e.ClassPaladin: {},
	dnd5e.ClassRanger:  {},
}

var preparedCasters = map[string]struct{}{
	dnd5e.ClassCleric:  {},
	dnd5e.ClassDruid:   {},
	dnd5e.ClassPaladin: {},
	dnd5e.ClassWizard:  {},
}

var castingAbilities = map[string]string{
	dnd5e.ClassBard:     "charisma",
	dnd5e.ClassCleric:   "wisdom",
	dnd5e.ClassDruid:    "wisdom",
	dnd5e.ClassPaladin:  "charisma",
	dnd5e.ClassRanger:   "wisdom",
	dnd5e.ClassSorcerer: "charisma",
	dnd5e.ClassWarlock:  "charisma",
	dnd5e.ClassWizard:   "intelligence",
}

// SlotTable returns max spell slots per slot level for a class at a level.
func (s *SRD) SlotTable(class string, level int) map[int]int {
	if level < 1 {
		return map[int]int{}
	}
	if level > 20 {
		level = 20
	}

	table := make(map[int]int)
	switch {
	case isFullCaster(class):
		fillSlots(table, fullCasterSlots[level-1])
	case isHalfCaster(class):
		// Half casters track the full-caster table at half pace and have
		// no slots at level 1.
		if level < 2 {
			return table
		}
		fillSlots(table, fullCasterSlots[(level+1)/2-1])
	case class == dnd5e.ClassWarlock:
		p := pactSlots[level-1]
		table[p.level] = p.count
	}
	return table
}

func fillSlots(table map[int]int, row [9]int) {
	for i, count := range row {
		if count > 0 {
			table[i+1] = count
		}
	}
}

func isFullCaster(class string) bool {
	_, ok := fullCasters[class]
	return ok
}

func isHalfCaster(class string) bool {
	_, ok := halfCasters[class]
	return ok
}

// SlotSource reports where the class's slots come from.
func (s *SRD) SlotSource(class string) string {
	if class == dnd5e.ClassWarlock {
		return dnd5e.SlotSourcePactMagic
	}
	return dnd5e.SlotSourceSpellcasting
}

// MaxSpellLevel is the highest slot level with a nonzero maximum.
func (s *SRD) MaxSpellLevel(class string, level int) int {
	maxLevel := 0
	for slotLevel := range s.SlotTable(class, level) {
		if slotLevel > maxLevel {
			maxLevel = slotLevel
		}
	}
	return maxLevel
}

// CanPrepareSpells reports whether the class prepares spells from a list.
func (s *SRD) CanPrepareSpells(class string) bool {
	_, ok := preparedCasters[class]
	return ok
}

// SpellcastingAbility names the class's casting ability.
func (s *SRD) SpellcastingAbility(class string) string {
	return castingAbilities[class]
}

// PreparedLimit is level + casting modifier for full prepared casters,
// half level + modifier for half casters, floored at 1.
func (s *SRD) PreparedLimit(class string, level, abilityMod int) int {
	if !s.CanPrepareSpells(class) {
		return 0
	}
	limit := level + abilityMod
	if isHalfCaster(class) {
		limit = level/2 + abilityMod
	}
	if limit < 1 {
		limit = 1
	}
	return limit
}

// Recovery ability keys
const (
	RecoveryArcaneRecovery  = "arcane-recovery"
	RecoveryNaturalRecovery = "natural-recovery"
)

// RecoveryAbilities lists short-rest slot-recovery features for the class.
func (s *SRD) RecoveryAbilities(class, subclass string, level int) []RecoveryAbility {
	budget := (level + 1) / 2 // half class level, rounded up

	switch {
	case class == dnd5e.ClassWizard:
		return []RecoveryAbility{{
			Key:           RecoveryArcaneRecovery,
			Name:          "Arcane Recovery",
			MaxSlotLevels: budget,
			MaxSlotLevel:  5,
		}}
	case class == dnd5e.ClassDruid && subclass == dnd5e.SubclassCircleOfTheLand && level >= 2:
		return []RecoveryAbility{{
			Key:           RecoveryNaturalRecovery,
			Name:          "Natural Recovery",
			MaxSlotLevels: budget,
			MaxSlotLevel:  5,
		}}
	}
	return nil
}

// WildShapeLimits derives transformation gates from level and circle.
func (s *SRD) WildShapeLimits(level int, subclass string) WildShapeLimits {
	limits := WildShapeLimits{
		CanSwim:       level >= 4,
		CanFly:        level >= 8,
		MoonCircle:    subclass == dnd5e.SubclassCircleOfTheMoon,
		DurationHours: level / 2,
	}
	if limits.DurationHours < 1 {
		limits.DurationHours = 1
	}

	if limits.MoonCircle {
		if level < 6 {
			limits.MaxCR = 1
		} else {
			limits.MaxCR = float64(level / 3)
		}
		return limits
	}

	switch {
	case level < 4:
		limits.MaxCR = 0.25
	case level < 8:
		limits.MaxCR = 0.5
	default:
		limits.MaxCR = 1
	}
	return limits
}

// WildShapeMaxCharges is the charge-pool cap. Druids gain Wild Shape at
// level 2.
func (s *SRD) WildShapeMaxCharges(level int) int {
	if level < 2 {
		return 0
	}
	return 2
}

// RestDuration reports the effective duration label for a rest. No shipped
// class shortens a rest; the hook exists so subclass rules can.
func (s *SRD) RestDuration(restType, class, subclass string) (string, string) {
	if restType == dnd5e.RestTypeShort {
		return "1 hour", ""
	}
	return "8 hours", ""
}

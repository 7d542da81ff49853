// Package rules provides the read-only ruleset the resource engine runs
// against. The engine never reads rule data from storage; it asks the
// injected Provider, which keeps every orchestrator testable without a
// database or catalog round-trip.
package rules

//go:generate mockgen -destination=mock/mock_provider.go -package=rulesmock github.com/ironvale/campaign-api/internal/rules Provider

// RecoveryAbility describes a class feature that restores spell slots on a
// short rest under a total-levels-restored budget (Arcane Recovery and kin).
type RecoveryAbility struct {
	Key  string
	Name string
	// MaxSlotLevels is the total slot-levels the ability may restore per
	// rest cycle.
	MaxSlotLevels int
	// MaxSlotLevel is the highest individual slot level the ability can
	// restore (5 for every shipped ability: none restore 6th+).
	MaxSlotLevel int
}

// WildShapeLimits gates which beasts a druid may assume at a given level.
type WildShapeLimits struct {
	MaxCR         float64
	CanSwim       bool
	CanFly        bool
	DurationHours int
	MoonCircle    bool
}

// Provider answers every rule question the engine asks.
type Provider interface {
	// SlotTable returns max spell slots per slot level for a class at a
	// character level. Empty map means the class has no slots at that level.
	SlotTable(class string, level int) map[int]int

	// SlotSource reports where a class's slots come from: spellcasting or
	// pact magic. Pact slots recharge on a short rest.
	SlotSource(class string) string

	// MaxSpellLevel is the highest slot level with a nonzero maximum.
	MaxSpellLevel(class string, level int) int

	// CanPrepareSpells reports whether the class prepares spells from a
	// list (vs knowing a fixed set).
	CanPrepareSpells(class string) bool

	// SpellcastingAbility names the class's casting ability, or "" for
	// non-casters.
	SpellcastingAbility(class string) string

	// PreparedLimit is the number of spells the class may have prepared.
	PreparedLimit(class string, level, abilityMod int) int

	// RecoveryAbilities lists the short-rest slot-recovery features
	// available to the class/subclass at this level.
	RecoveryAbilities(class, subclass string, level int) []RecoveryAbility

	// WildShapeLimits derives transformation gates from level and circle.
	WildShapeLimits(level int, subclass string) WildShapeLimits

	// WildShapeMaxCharges is the charge-pool cap at a level.
	WildShapeMaxCharges(level int) int

	// RestDuration reports the effective duration label for a rest and,
	// when a class/subclass rule shortens it, the reason. Reason is ""
	// for the standard duration.
	RestDuration(restType, class, subclass string) (label, reason string)
}

// Package dnd5e implements the D&D 5e entities
package dnd5e

// Character is the aggregate root for the resource engine. It is persisted
// as a single self-contained document; every mutation is a read-modify-write
// of the whole row.
// NOTE: This is a data-only struct plus invariant-preserving accessors.
// Game rules (slot maxima, CR gates, recovery budgets) live in the rules
// provider and the orchestrators, not here.
type Character struct {
	ID         string `json:"id"`
	CampaignID string `json:"campaign_id"`
	PlayerID   string `json:"player_id"`
	Name       string `json:"name"`

	Level    int    `json:"level"`
	Class    string `json:"class"`
	Subclass string `json:"subclass,omitempty"`

	// IsActive characters may only be mutated during a live session;
	// inactive ones ("experimentation mode") are always mutable.
	IsActive bool `json:"is_active"`

	CurrentHP int `json:"current_hp"`
	MaxHP     int `json:"max_hp"`
	TempHP    int `json:"temp_hp"`

	// SpellcastingMod is the casting-ability modifier, derived upstream from
	// ability scores. It feeds the prepared-spell limit only.
	SpellcastingMod int `json:"spellcasting_mod"`

	KnownSpells    []SpellRef `json:"known_spells,omitempty"`
	PreparedSpells []string   `json:"prepared_spells,omitempty"`

	// SpellSlotsRemaining maps slot level (1..9) to remaining count.
	// An absent level means the character has no slots of that level.
	SpellSlotsRemaining map[int]int `json:"spell_slots_remaining,omitempty"`

	Concentration *Concentration `json:"concentration_spell,omitempty"`

	// ShortRestRecoveryUsed tracks slot-levels consumed per recovery ability
	// since the last rest of either kind.
	ShortRestRecoveryUsed map[string]int `json:"short_rest_recovery_used,omitempty"`

	ClassResources []ClassResource `json:"class_resources,omitempty"`

	WildShapeCharges int        `json:"wild_shape_charges"`
	WildShapeForm    *BeastForm `json:"wild_shape_form,omitempty"`

	SummonedCreatures []Summon `json:"summoned_creatures,omitempty"`

	// Version is the optimistic concurrency token checked by the repository
	// on every update.
	Version   int64 `json:"version"`
	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}

// SpellRef is a lightweight reference to a spell the character knows.
type SpellRef struct {
	Slug  string `json:"slug"`
	Name  string `json:"name"`
	Level int    `json:"level"` // 0 for cantrips
}

// Concentration is the single ongoing concentration effect. At most one
// entry exists per character; starting a new one replaces it.
type Concentration struct {
	SpellSlug string `json:"spell_slug"`
	SpellName string `json:"spell_name,omitempty"`
	StartedAt int64  `json:"started_at"`
	Duration  string `json:"duration,omitempty"`
}

// ClassResource is a generic countable resource (Rage uses, Ki points, ...)
// with its own cap and recharge policy.
type ClassResource struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Current  int    `json:"current"`
	Max      int    `json:"max"`
	Recharge string `json:"recharge"` // RestTypeShort or RestTypeLong
}

// RestoreToMax refills the resource.
func (r *ClassResource) RestoreToMax() {
	r.Current = r.Max
}

// Spend consumes uses, reporting whether enough remained.
func (r *ClassResource) Spend(n int) bool {
	if n <= 0 || r.Current < n {
		return false
	}
	r.Current -= n
	return true
}

// SlotsRemaining returns the remaining slot count at a level, treating an
// absent level as zero.
func (c *Character) SlotsRemaining(level int) int {
	if c.SpellSlotsRemaining == nil {
		return 0
	}
	return c.SpellSlotsRemaining[level]
}

// SetSlotsRemaining writes a slot count, allocating the map on first use.
func (c *Character) SetSlotsRemaining(level, count int) {
	if c.SpellSlotsRemaining == nil {
		c.SpellSlotsRemaining = make(map[int]int)
	}
	c.SpellSlotsRemaining[level] = count
}

// RecoveryUsed returns the slot-levels already consumed by a recovery
// ability this rest cycle.
func (c *Character) RecoveryUsed(key string) int {
	if c.ShortRestRecoveryUsed == nil {
		return 0
	}
	return c.ShortRestRecoveryUsed[key]
}

// AddRecoveryUsed accumulates consumed slot-levels for a recovery ability.
func (c *Character) AddRecoveryUsed(key string, levels int) {
	if c.ShortRestRecoveryUsed == nil {
		c.ShortRestRecoveryUsed = make(map[string]int)
	}
	c.ShortRestRecoveryUsed[key] += levels
}

// ResetRecoveryUsed clears the per-rest-cycle recovery budget. Called on
// any rest, short or long.
func (c *Character) ResetRecoveryUsed() {
	c.ShortRestRecoveryUsed = nil
}

// Resource finds a class resource by key.
func (c *Character) Resource(key string) *ClassResource {
	for i := range c.ClassResources {
		if c.ClassResources[i].Key == key {
			return &c.ClassResources[i]
		}
	}
	return nil
}

// IsTransformed reports whether the character is currently wild shaped.
func (c *Character) IsTransformed() bool {
	return c.WildShapeForm != nil
}

// Summon finds a summoned creature by id, or nil.
func (c *Character) Summon(id string) *Summon {
	for i := range c.SummonedCreatures {
		if c.SummonedCreatures[i].ID == id {
			return &c.SummonedCreatures[i]
		}
	}
	return nil
}

// RemoveSummon deletes a summon by id, reporting whether it existed.
func (c *Character) RemoveSummon(id string) bool {
	for i := range c.SummonedCreatures {
		if c.SummonedCreatures[i].ID == id {
			c.SummonedCreatures = append(c.SummonedCreatures[:i], c.SummonedCreatures[i+1:]...)
			return true
		}
	}
	return false
}

// ApplyTrueFormDamage reduces the character's own HP, floored at zero.
// Temp HP absorbs first.
func (c *Character) ApplyTrueFormDamage(amount int) {
	if amount <= 0 {
		return
	}
	if c.TempHP > 0 {
		if c.TempHP >= amount {
			c.TempHP -= amount
			return
		}
		amount -= c.TempHP
		c.TempHP = 0
	}
	c.CurrentHP -= amount
	if c.CurrentHP < 0 {
		c.CurrentHP = 0
	}
}

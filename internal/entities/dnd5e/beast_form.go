package dnd5e

// BeastForm is the statblock a wild-shaped druid is currently wearing.
// It is a value snapshot taken at transform time: the source monster
// template may change later without affecting an in-progress transformation.
// Created by transform, destroyed by revert or by HP reaching zero.
type BeastForm struct {
	BeastRef   string `json:"beast_ref"`
	Name       string `json:"name"`
	Size       string `json:"size,omitempty"`
	MaxHP      int    `json:"max_hp"`
	CurrentHP  int    `json:"current_hp"`
	TempHP     int    `json:"temp_hp"`
	ArmorClass int    `json:"armor_class"`

	Speed     FormSpeed     `json:"speed"`
	Abilities FormAbilities `json:"abilities"`
	Senses    FormSenses    `json:"senses"`

	// Skills maps skill slug ("perception") to the form's modifier.
	Skills map[string]int `json:"skills,omitempty"`

	ChallengeRating float64 `json:"challenge_rating"`

	Traits  []FormFeature `json:"traits,omitempty"`
	Actions []FormFeature `json:"actions,omitempty"`

	TransformedAt int64 `json:"transformed_at"`
}

// FormSpeed holds the movement modes of the form, as catalog strings
// ("40 ft."). Empty means the form lacks that mode.
type FormSpeed struct {
	Walk string `json:"walk,omitempty"`
	Swim string `json:"swim,omitempty"`
	Fly  string `json:"fly,omitempty"`
}

// FormAbilities is the six ability scores of the form. The druid keeps
// their own INT/WIS/CHA at the table; the snapshot carries the full
// statblock and leaves that rule to the players.
type FormAbilities struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// FormSenses holds the form's senses as catalog strings ("60 ft.").
type FormSenses struct {
	Blindsight        string `json:"blindsight,omitempty"`
	Darkvision        string `json:"darkvision,omitempty"`
	Tremorsense       string `json:"tremorsense,omitempty"`
	Truesight         string `json:"truesight,omitempty"`
	PassivePerception int    `json:"passive_perception,omitempty"`
}

// FormFeature is a named trait or action copied from the beast statblock.
type FormFeature struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// DamageResult reports what a hit did to the form.
type DamageResult struct {
	Absorbed int // soaked by temp HP
	Applied  int // subtracted from form HP
	Excess   int // overflow past zero, carried to the true form
	Dropped  bool
}

// ApplyDamage routes damage into the form: temp HP absorbs first, the
// remainder comes off form HP floored at zero, and anything past zero is
// reported as excess for the caller to carry over to the true form.
func (f *BeastForm) ApplyDamage(amount int) DamageResult {
	var res DamageResult
	if amount <= 0 {
		return res
	}

	if f.TempHP > 0 {
		if f.TempHP >= amount {
			f.TempHP -= amount
			res.Absorbed = amount
			return res
		}
		res.Absorbed = f.TempHP
		amount -= f.TempHP
		f.TempHP = 0
	}

	res.Applied = amount
	f.CurrentHP -= amount
	if f.CurrentHP <= 0 {
		res.Excess = -f.CurrentHP
		res.Applied = amount - res.Excess
		f.CurrentHP = 0
		res.Dropped = true
	}
	return res
}

// ApplyHeal raises form HP, capped at the form's max. Returns the amount
// actually healed.
func (f *BeastForm) ApplyHeal(amount int) int {
	if amount <= 0 || f.CurrentHP >= f.MaxHP {
		return 0
	}
	before := f.CurrentHP
	f.CurrentHP += amount
	if f.CurrentHP > f.MaxHP {
		f.CurrentHP = f.MaxHP
	}
	return f.CurrentHP - before
}

// HasSwimSpeed reports whether the form has a swimming speed.
func (f *BeastForm) HasSwimSpeed() bool {
	return f.Speed.Swim != ""
}

// HasFlySpeed reports whether the form has a flying speed.
func (f *BeastForm) HasFlySpeed() bool {
	return f.Speed.Fly != ""
}

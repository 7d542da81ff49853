package catalog

// SpellData is the slice of spell metadata the engine needs: identity,
// level, and whether the spell is a concentration effect.
type SpellData struct {
	Slug          string
	Name          string
	Level         int // 0 for cantrips
	School        string
	CastingTime   string
	Range         string
	Duration      string
	Concentration bool
	Ritual        bool
}

// MonsterData is the statblock slice snapshotted into beast forms and
// summon templates.
type MonsterData struct {
	Slug            string
	Name            string
	Size            string
	Type            string
	ArmorClass      int
	HitPoints       int
	ChallengeRating float64
	Speed           MonsterSpeed
	Abilities       MonsterAbilities
	Senses          MonsterSenses
	// Skills maps skill slug ("perception") to the statblock modifier.
	Skills  map[string]int
	Traits  []MonsterFeature
	Actions []MonsterFeature
}

// MonsterSpeed holds movement modes as catalog strings ("40 ft.").
// Empty means the monster lacks that mode.
type MonsterSpeed struct {
	Walk string
	Swim string
	Fly  string
}

// MonsterAbilities is the six ability scores from the statblock.
type MonsterAbilities struct {
	Strength     int
	Dexterity    int
	Constitution int
	Intelligence int
	Wisdom       int
	Charisma     int
}

// MonsterSenses holds the statblock senses as catalog strings ("60 ft."),
// empty when the monster lacks the sense.
type MonsterSenses struct {
	Blindsight        string
	Darkvision        string
	Tremorsense       string
	Truesight         string
	PassivePerception int
}

// MonsterFeature is a named trait or action from the statblock.
type MonsterFeature struct {
	Name        string
	Description string
}

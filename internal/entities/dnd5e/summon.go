package dnd5e

// Summon is an auxiliary creature statblock owned by a character: familiars,
// conjured spirits, animated objects. Independent of wild shape, though some
// subclass features spend wild shape charges to summon.
type Summon struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`

	// MonsterRef optionally links back to the catalog template the summon
	// was created from, for display enrichment only.
	MonsterRef string `json:"monster_ref,omitempty"`

	MaxHP     int `json:"max_hp"`
	CurrentHP int `json:"current_hp"`
	TempHP    int `json:"temp_hp"`

	Conditions  []string               `json:"conditions,omitempty"`
	CustomStats map[string]interface{} `json:"custom_stats,omitempty"`

	SourceSpell string `json:"source_spell,omitempty"`
	Duration    string `json:"duration,omitempty"`

	SummonedAt int64 `json:"summoned_at"`
}

// SummonPatch carries the fields a caller may change on an existing summon.
// Nil means "leave as is".
type SummonPatch struct {
	CurrentHP   *int                   `json:"current_hp,omitempty"`
	TempHP      *int                   `json:"temp_hp,omitempty"`
	Conditions  []string               `json:"conditions,omitempty"`
	CustomStats map[string]interface{} `json:"custom_stats,omitempty"`
}

// Apply merges the patch into the summon and reports the fields that
// changed, keyed by document field name.
func (s *Summon) Apply(patch SummonPatch) map[string]interface{} {
	changes := make(map[string]interface{})

	if patch.CurrentHP != nil {
		hp := *patch.CurrentHP
		if hp < 0 {
			hp = 0
		}
		if hp > s.MaxHP {
			hp = s.MaxHP
		}
		if hp != s.CurrentHP {
			s.CurrentHP = hp
			changes["current_hp"] = hp
		}
	}
	if patch.TempHP != nil {
		tmp := *patch.TempHP
		if tmp < 0 {
			tmp = 0
		}
		if tmp != s.TempHP {
			s.TempHP = tmp
			changes["temp_hp"] = tmp
		}
	}
	if patch.Conditions != nil {
		s.Conditions = patch.Conditions
		changes["conditions"] = patch.Conditions
	}
	if patch.CustomStats != nil {
		if s.CustomStats == nil {
			s.CustomStats = make(map[string]interface{})
		}
		for k, v := range patch.CustomStats {
			s.CustomStats[k] = v
		}
		changes["custom_stats"] = patch.CustomStats
	}

	return changes
}

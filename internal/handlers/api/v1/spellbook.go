package v1

import (
	"net/http"

	"github.com/ironvale/campaign-api/internal/orchestrators/spellbook"
)

func (h *Handler) getSpellbook(w http.ResponseWriter, r *http.Request) {
	output, err := h.spellbook.GetSpellbook(r.Context(), &spellbook.GetSpellbookInput{
		CharacterID: r.PathValue("id"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"cantrips":             output.Cantrips,
		"known_spells":         output.KnownSpells,
		"prepared_spells":      output.PreparedSpells,
		"spell_slots_remaining": output.SlotsRemaining,
		"spell_slots_max":      output.SlotsMax,
		"concentration":        output.Concentration,
		"spellcasting_ability": output.SpellcastingAbility,
	})
}

func (h *Handler) listAvailableSpells(w http.ResponseWriter, r *http.Request) {
	output, err := h.spellbook.ListAvailableSpells(r.Context(), &spellbook.ListAvailableSpellsInput{
		CharacterID: r.PathValue("id"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"spells": output.Spells,
	})
}

func (h *Handler) useSlot(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Level int `json:"level"`
	}
	if err := decode(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	output, err := h.spellbook.UseSlot(r.Context(), &spellbook.UseSlotInput{
		CharacterID: r.PathValue("id"),
		Level:       body.Level,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"spell_slots_remaining": output.SlotsRemaining,
	})
}

func (h *Handler) restoreSlot(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Level int `json:"level"`
		Count int `json:"count"`
	}
	if err := decode(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	output, err := h.spellbook.RestoreSlot(r.Context(), &spellbook.RestoreSlotInput{
		CharacterID: r.PathValue("id"),
		Level:       body.Level,
		Count:       body.Count,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"spell_slots_remaining": output.SlotsRemaining,
		"restored":              output.Restored,
	})
}

func (h *Handler) updatePreparedSpells(w http.ResponseWriter, r *http.Request) {
	var body struct {
		PreparedSpells []string `json:"prepared_spells"`
	}
	if err := decode(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	output, err := h.spellbook.UpdatePreparedSpells(r.Context(), &spellbook.UpdatePreparedSpellsInput{
		CharacterID: r.PathValue("id"),
		SpellSlugs:  body.PreparedSpells,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"prepared_spells": output.PreparedSpells,
	})
}

func (h *Handler) startConcentration(w http.ResponseWriter, r *http.Request) {
	var body struct {
		SpellSlug string `json:"spell_slug"`
	}
	if err := decode(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	output, err := h.spellbook.StartConcentration(r.Context(), &spellbook.StartConcentrationInput{
		CharacterID: r.PathValue("id"),
		SpellSlug:   body.SpellSlug,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"concentration": output.Concentration,
		"replaced":      output.Replaced,
	})
}

func (h *Handler) endConcentration(w http.ResponseWriter, r *http.Request) {
	output, err := h.spellbook.EndConcentration(r.Context(), &spellbook.EndConcentrationInput{
		CharacterID: r.PathValue("id"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ended": output.Ended,
	})
}

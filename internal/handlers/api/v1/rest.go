package v1

import (
	"net/http"

	"github.com/ironvale/campaign-api/internal/orchestrators/rest"
)

func (h *Handler) takeRest(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Type string `json:"type"`
	}
	if err := decode(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	output, err := h.rest.TakeRest(r.Context(), &rest.TakeRestInput{
		CharacterID: r.PathValue("id"),
		RestType:    body.Type,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"character":       output.Character,
		"rest_type":       output.RestType,
		"restored":        output.Restored,
		"messages":        output.Messages,
		"duration":        output.DurationLabel,
		"duration_reason": output.DurationReason,
	})
}

func (h *Handler) getRecoveryOptions(w http.ResponseWriter, r *http.Request) {
	output, err := h.rest.GetRecoveryOptions(r.Context(), &rest.GetRecoveryOptionsInput{
		CharacterID: r.PathValue("id"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	abilities := make([]map[string]interface{}, 0, len(output.Abilities))
	for _, a := range output.Abilities {
		abilities = append(abilities, map[string]interface{}{
			"key":             a.Key,
			"name":            a.Name,
			"max_slot_levels": a.MaxSlotLevels,
			"max_slot_level":  a.MaxSlotLevel,
			"used":            a.Used,
			"remaining":       a.Remaining,
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"abilities": abilities,
	})
}

func (h *Handler) useRecovery(w http.ResponseWriter, r *http.Request) {
	var body struct {
		RecoveryKey string `json:"recovery_key"`
		Slots       []int  `json:"slots"`
	}
	if err := decode(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	output, err := h.rest.UseRecovery(r.Context(), &rest.UseRecoveryInput{
		CharacterID: r.PathValue("id"),
		AbilityKey:  body.RecoveryKey,
		SlotLevels:  body.Slots,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"restored":              output.Restored,
		"budget_remaining":      output.BudgetRemaining,
		"spell_slots_remaining": output.SlotsRemaining,
	})
}

func (h *Handler) spendResource(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Key    string `json:"key"`
		Amount int    `json:"amount"`
	}
	if err := decode(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	output, err := h.rest.SpendResource(r.Context(), &rest.SpendResourceInput{
		CharacterID: r.PathValue("id"),
		ResourceKey: body.Key,
		Amount:      body.Amount,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"resource": output.Resource,
	})
}

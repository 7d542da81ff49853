package v1

import (
	"net/http"

	"github.com/ironvale/campaign-api/internal/orchestrators/wildshape"
)

func (h *Handler) getWildShapeStatus(w http.ResponseWriter, r *http.Request) {
	output, err := h.wildshape.GetStatus(r.Context(), &wildshape.GetStatusInput{
		CharacterID: r.PathValue("id"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"transformed": output.Transformed,
		"form":        output.Form,
		"charges":     output.Charges,
		"max_charges": output.MaxCharges,
		"limits": map[string]interface{}{
			"max_cr":         output.Limits.MaxCR,
			"can_swim":       output.Limits.CanSwim,
			"can_fly":        output.Limits.CanFly,
			"duration_hours": output.Limits.DurationHours,
			"moon_circle":    output.Limits.MoonCircle,
		},
	})
}

func (h *Handler) listWildShapeBeasts(w http.ResponseWriter, r *http.Request) {
	output, err := h.wildshape.ListForms(r.Context(), &wildshape.ListFormsInput{
		CharacterID: r.PathValue("id"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"beasts": output.Beasts,
		"max_cr": output.Limits.MaxCR,
	})
}

func (h *Handler) transform(w http.ResponseWriter, r *http.Request) {
	var body struct {
		MonsterID string `json:"monster_id"`
	}
	if err := decode(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	output, err := h.wildshape.Transform(r.Context(), &wildshape.TransformInput{
		CharacterID: r.PathValue("id"),
		BeastSlug:   body.MonsterID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"form":              output.Form,
		"charges_remaining": output.ChargesRemaining,
	})
}

func (h *Handler) damageForm(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Amount int `json:"amount"`
	}
	if err := decode(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	output, err := h.wildshape.Damage(r.Context(), &wildshape.DamageInput{
		CharacterID: r.PathValue("id"),
		Amount:      body.Amount,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"form":          output.Form,
		"reverted":      output.Reverted,
		"excess_damage": output.ExcessDamage,
		"current_hp":    output.Character.CurrentHP,
	})
}

func (h *Handler) healForm(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Amount int `json:"amount"`
	}
	if err := decode(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	output, err := h.wildshape.Heal(r.Context(), &wildshape.HealInput{
		CharacterID: r.PathValue("id"),
		Amount:      body.Amount,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"form":   output.Form,
		"healed": output.Healed,
	})
}

func (h *Handler) revertForm(w http.ResponseWriter, r *http.Request) {
	output, err := h.wildshape.Revert(r.Context(), &wildshape.RevertInput{
		CharacterID: r.PathValue("id"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"form":       output.Form,
		"current_hp": output.Character.CurrentHP,
	})
}

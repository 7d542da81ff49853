package v1

import (
	"net/http"

	"github.com/ironvale/campaign-api/internal/entities/dnd5e"
	"github.com/ironvale/campaign-api/internal/orchestrators/summon"
)

func (h *Handler) listSummons(w http.ResponseWriter, r *http.Request) {
	output, err := h.summons.List(r.Context(), &summon.ListInput{
		CharacterID: r.PathValue("id"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"summons": output.Summons,
	})
}

func (h *Handler) storeSummon(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name                string                 `json:"name"`
		Type                string                 `json:"type"`
		MonsterID           string                 `json:"monster_id"`
		MaxHP               int                    `json:"max_hp"`
		CustomStats         map[string]interface{} `json:"custom_stats"`
		SourceSpell         string                 `json:"source_spell"`
		Duration            string                 `json:"duration"`
		UsesWildShapeCharge bool                   `json:"uses_wild_shape_charge"`
	}
	if err := decode(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	output, err := h.summons.Store(r.Context(), &summon.StoreInput{
		CharacterID:         r.PathValue("id"),
		Name:                body.Name,
		Type:                body.Type,
		MonsterSlug:         body.MonsterID,
		MaxHP:               body.MaxHP,
		CustomStats:         body.CustomStats,
		SourceSpell:         body.SourceSpell,
		Duration:            body.Duration,
		UsesWildShapeCharge: body.UsesWildShapeCharge,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"summon": output.Summon,
	})
}

func (h *Handler) updateSummon(w http.ResponseWriter, r *http.Request) {
	var patch dnd5e.SummonPatch
	if err := decode(r, &patch); err != nil {
		writeError(w, r, err)
		return
	}

	output, err := h.summons.Update(r.Context(), &summon.UpdateInput{
		CharacterID: r.PathValue("id"),
		SummonID:    r.PathValue("summonId"),
		Patch:       patch,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"summon":  output.Summon,
		"changes": output.Changes,
	})
}

func (h *Handler) destroySummon(w http.ResponseWriter, r *http.Request) {
	_, err := h.summons.Destroy(r.Context(), &summon.DestroyInput{
		CharacterID: r.PathValue("id"),
		SummonID:    r.PathValue("summonId"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusNoContent, nil)
}

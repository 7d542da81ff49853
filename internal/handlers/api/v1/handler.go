// Package v1 exposes the character resource engine over HTTP/JSON.
package v1

import (
	"net/http"

	"github.com/ironvale/campaign-api/internal/errors"
	"github.com/ironvale/campaign-api/internal/orchestrators/rest"
	"github.com/ironvale/campaign-api/internal/orchestrators/spellbook"
	"github.com/ironvale/campaign-api/internal/orchestrators/summon"
	"github.com/ironvale/campaign-api/internal/orchestrators/wildshape"
	"github.com/ironvale/campaign-api/internal/repositories/character"
	"github.com/ironvale/campaign-api/internal/repositories/gamesession"
)

// Config holds the dependencies for the v1 API handler
type Config struct {
	SpellbookService spellbook.Service
	RestService      rest.Service
	WildShapeService wildshape.Service
	SummonService    summon.Service

	// CharacterRepo and SessionRepo feed the modification gate.
	CharacterRepo character.Repository
	SessionRepo   gamesession.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SpellbookService == nil {
		vb.RequiredField("SpellbookService")
	}
	if c.RestService == nil {
		vb.RequiredField("RestService")
	}
	if c.WildShapeService == nil {
		vb.RequiredField("WildShapeService")
	}
	if c.SummonService == nil {
		vb.RequiredField("SummonService")
	}
	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}

	return vb.Build()
}

// Handler serves the /v1 API.
type Handler struct {
	spellbook spellbook.Service
	rest      rest.Service
	wildshape wildshape.Service
	summons   summon.Service

	charRepo    character.Repository
	sessionRepo gamesession.Repository
}

// NewHandler creates a new v1 API handler with the provided dependencies
func NewHandler(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		spellbook:   cfg.SpellbookService,
		rest:        cfg.RestService,
		wildshape:   cfg.WildShapeService,
		summons:     cfg.SummonService,
		charRepo:    cfg.CharacterRepo,
		sessionRepo: cfg.SessionRepo,
	}, nil
}

// Routes returns the mux for the /v1 API. Reads are open; every mutation
// goes through the session gate.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	// Spellbook
	mux.HandleFunc("GET /v1/characters/{id}/spellbook", h.getSpellbook)
	mux.HandleFunc("GET /v1/characters/{id}/spells/available", h.listAvailableSpells)
	mux.Handle("POST /v1/characters/{id}/spells/slots/use", h.gated(h.useSlot))
	mux.Handle("POST /v1/characters/{id}/spells/slots/restore", h.gated(h.restoreSlot))
	mux.Handle("POST /v1/characters/{id}/spells/prepared", h.gated(h.updatePreparedSpells))
	mux.Handle("POST /v1/characters/{id}/concentration/start", h.gated(h.startConcentration))
	mux.Handle("POST /v1/characters/{id}/concentration/end", h.gated(h.endConcentration))

	// Rest
	mux.Handle("POST /v1/characters/{id}/rest", h.gated(h.takeRest))
	mux.HandleFunc("GET /v1/characters/{id}/rest/recovery-options", h.getRecoveryOptions)
	mux.Handle("POST /v1/characters/{id}/rest/recovery/use", h.gated(h.useRecovery))
	mux.Handle("POST /v1/characters/{id}/resources/spend", h.gated(h.spendResource))

	// Wild shape
	mux.HandleFunc("GET /v1/characters/{id}/wild-shape/status", h.getWildShapeStatus)
	mux.HandleFunc("GET /v1/characters/{id}/wild-shape/beasts", h.listWildShapeBeasts)
	mux.Handle("POST /v1/characters/{id}/wild-shape/transform", h.gated(h.transform))
	mux.Handle("POST /v1/characters/{id}/wild-shape/damage", h.gated(h.damageForm))
	mux.Handle("POST /v1/characters/{id}/wild-shape/heal", h.gated(h.healForm))
	mux.Handle("POST /v1/characters/{id}/wild-shape/revert", h.gated(h.revertForm))

	// Summons
	mux.HandleFunc("GET /v1/characters/{id}/summons", h.listSummons)
	mux.Handle("POST /v1/characters/{id}/summons", h.gated(h.storeSummon))
	mux.Handle("PATCH /v1/characters/{id}/summons/{summonId}", h.gated(h.updateSummon))
	mux.Handle("DELETE /v1/characters/{id}/summons/{summonId}", h.gated(h.destroySummon))

	return mux
}

// gated enforces the modification gate: active characters may only be
// mutated while their campaign has a live session. Inactive characters
// ("experimentation mode") are always mutable.
func (h *Handler) gated(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		charID := r.PathValue("id")
		out, err := h.charRepo.Get(r.Context(), character.GetInput{ID: charID})
		if err != nil {
			writeError(w, r, err)
			return
		}

		char := out.Character
		if char.IsActive {
			_, err := h.sessionRepo.GetActive(r.Context(), gamesession.GetActiveInput{
				CampaignID: char.CampaignID,
			})
			if err != nil {
				if errors.IsNotFound(err) {
					writeError(w, r, errors.SessionRequired("active characters can only be modified during a live session"))
					return
				}
				writeError(w, r, err)
				return
			}
		}

		next(w, r)
	})
}

package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/smartgic/ovos-skill-share-to-mirror/internal/app"
	"github.com/smartgic/ovos-skill-share-to-mirror/internal/domain"
	"github.com/smartgic/ovos-skill-share-to-mirror/internal/httpjson"
)

type PreferencesHandler struct {
	skill *app.SkillService
}

func NewPreferencesHandler(skill *app.SkillService) *PreferencesHandler {
	return &PreferencesHandler{skill: skill}
}

func (h *PreferencesHandler) Routes(r chi.Router) {
	r.Get("/preferences", h.get)
	r.Put("/preferences", h.put)
	// Variante avec slash final (utile selon reverse-proxy / clients).
	r.Get("/preferences/", h.get)
	r.Put("/preferences/", h.put)
}

func (h *PreferencesHandler) get(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.skill.Preferences(r.Context())
	if err != nil {
		httpjson.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, prefs)
}

func (h *PreferencesHandler) put(w http.ResponseWriter, r *http.Request) {
	var prefs domain.Preferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		httpjson.WriteError(w, http.StatusBadRequest, "invalid json")
		return
	}
	updated, err := h.skill.SetPreferences(r.Context(), prefs)
	if err != nil {
		httpjson.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, updated)
}

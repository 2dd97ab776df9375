package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/smartgic/ovos-skill-share-to-mirror/internal/app"
	"github.com/smartgic/ovos-skill-share-to-mirror/internal/domain"
	"github.com/smartgic/ovos-skill-share-to-mirror/internal/httpjson"
)

// IntentsHandler reçoit les paramètres d'intent déjà parsés par la glue
// vocale (topic, classe de durée, chaîne, seek) et renvoie l'issue à
// prononcer. Jamais d'erreur brute : toujours un code stable + une phrase.
type IntentsHandler struct {
	skill *app.SkillService
}

func NewIntentsHandler(skill *app.SkillService) *IntentsHandler {
	return &IntentsHandler{skill: skill}
}

func (h *IntentsHandler) Routes(r chi.Router) {
	r.Route("/intents", func(r chi.Router) {
		r.Post("/play", h.play)
		r.Post("/control", h.control)
		r.Post("/stop", h.stop)
		r.Get("/status", h.status)
	})
}

type playIntentRequest struct {
	Topic    string `json:"topic,omitempty"`
	URL      string `json:"url,omitempty"`
	Channel  string `json:"channel,omitempty"`
	Duration string `json:"duration,omitempty"`
}

type controlIntentRequest struct {
	Action  string `json:"action"`
	Seconds int    `json:"seconds,omitempty"`
}

func (h *IntentsHandler) play(w http.ResponseWriter, r *http.Request) {
	var req playIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.WriteError(w, http.StatusBadRequest, "invalid json")
		return
	}

	var (
		res app.Result
		err error
	)
	switch {
	case strings.TrimSpace(req.URL) != "":
		res, err = h.skill.PlayURL(r.Context(), req.URL)
	case strings.TrimSpace(req.Channel) != "" && strings.TrimSpace(req.Topic) == "":
		res, err = h.skill.PlayChannel(r.Context(), req.Channel)
	default:
		res, err = h.skill.PlayTopic(r.Context(), req.Topic, domain.ParseDurationClass(req.Duration))
	}
	if err != nil {
		writeSkillError(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, res)
}

func (h *IntentsHandler) control(w http.ResponseWriter, r *http.Request) {
	var req controlIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.WriteError(w, http.StatusBadRequest, "invalid json")
		return
	}

	var (
		res app.Result
		err error
	)
	switch strings.ToLower(strings.TrimSpace(req.Action)) {
	case "pause":
		res, err = h.skill.Pause(r.Context())
	case "resume":
		res, err = h.skill.Resume(r.Context())
	case "rewind":
		res, err = h.skill.Seek(r.Context(), domain.SeekRewind, req.Seconds)
	case "forward":
		res, err = h.skill.Seek(r.Context(), domain.SeekForward, req.Seconds)
	case "restart":
		res, err = h.skill.Restart(r.Context())
	default:
		httpjson.WriteError(w, http.StatusBadRequest, "unknown action")
		return
	}
	if err != nil {
		writeSkillError(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, res)
}

func (h *IntentsHandler) stop(w http.ResponseWriter, r *http.Request) {
	res, err := h.skill.Stop(r.Context())
	if err != nil {
		writeSkillError(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, res)
}

func (h *IntentsHandler) status(w http.ResponseWriter, r *http.Request) {
	res, err := h.skill.Status(r.Context())
	if err != nil {
		writeSkillError(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, res)
}

type skillErrorResponse struct {
	Error  string `json:"error"`
	Code   string `json:"code"`
	Speech string `json:"speech"`
}

// writeSkillError traduit un CodedError en réponse HTTP. La phrase
// prononçable part dans le corps pour que la glue vocale la lise telle
// quelle.
func writeSkillError(w http.ResponseWriter, err error) {
	var coded *app.CodedError
	if !errors.As(err, &coded) {
		httpjson.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	status := http.StatusInternalServerError
	switch coded.Code {
	case app.CodeNoSearchResults:
		status = http.StatusNotFound
	case app.CodeInvalidCommandState:
		status = http.StatusConflict
	case app.CodeUnreachable, app.CodeRemoteRejected, app.CodeBadResponse:
		status = http.StatusBadGateway
	}

	httpjson.Write(w, status, skillErrorResponse{
		Error:  coded.Error(),
		Code:   coded.Code,
		Speech: coded.Message,
	})
}

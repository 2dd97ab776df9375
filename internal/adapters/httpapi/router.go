package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/smartgic/ovos-skill-share-to-mirror/internal/app"
	"github.com/smartgic/ovos-skill-share-to-mirror/internal/httpjson"
	"github.com/smartgic/ovos-skill-share-to-mirror/internal/ports"
)

// Server est la surface HTTP locale consommée par la glue vocale : elle ne
// fait que décoder des paramètres d'intent déjà parsés et encoder l'issue
// prononçable. Toute la logique vit dans app.SkillService.
type Server struct {
	logger zerolog.Logger
	skill  *app.SkillService
	bus    ports.EventBus
}

func NewServer(logger zerolog.Logger, skill *app.SkillService, bus ports.EventBus) *Server {
	return &Server{logger: logger, skill: skill, bus: bus}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(defaultRequestTimeout))
	r.Use(hlog.NewHandler(s.logger))
	r.Use(hlog.RequestIDHandler("request_id", "Request-Id"))
	r.Use(hlog.RemoteAddrHandler("remote_ip"))
	r.Use(hlog.UserAgentHandler("user_agent"))
	r.Use(hlog.AccessHandler(accessLogFn))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/version", s.handleVersion)
		r.Get("/openapi.json", s.handleOpenAPI)
		r.Get("/events", s.handleEvents)

		if s.skill != nil {
			NewIntentsHandler(s.skill).Routes(r)
			NewPreferencesHandler(s.skill).Routes(r)
			r.Get("/mirror/health", s.handleMirrorHealth)
		}
	})

	return r
}

func (s *Server) handleMirrorHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.skill.MirrorHealth(r.Context()); err != nil {
		writeSkillError(w, err)
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]string{"status": "ok"})
}

package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/xid"
	"github.com/rs/zerolog"

	"github.com/smartgic/ovos-skill-share-to-mirror/internal/domain"
	"github.com/smartgic/ovos-skill-share-to-mirror/internal/ports"
)

// searchLimit est fixé par l'appelant : 5 candidats équilibrent variété
// et latence/coût provider.
const searchLimit = 5

// Result est l'issue d'un intent : une phrase courte à prononcer, plus les
// détails utiles à la couche d'appel. Les échecs sortent en *CodedError.
type Result struct {
	Speech string                 `json:"speech"`
	Video  *domain.VideoCandidate `json:"video,omitempty"`
	Status *domain.StatusSnapshot `json:"status,omitempty"`
}

// SkillService est le chemin séquentiel d'un intent : composer la requête,
// chercher, sélectionner, commander le mirror, mettre à jour la session.
// Aucun fan-out, aucun pool : un intent à la fois, chaque appel bloquant
// avec son timeout propre.
type SkillService struct {
	logger   zerolog.Logger
	searcher ports.VideoSearcher
	mirror   ports.MirrorControl
	prefs    *PreferencesService
	session  *Session
	bus      ports.EventBus
}

func NewSkillService(logger zerolog.Logger, searcher ports.VideoSearcher, mirror ports.MirrorControl, prefs *PreferencesService, session *Session, bus ports.EventBus) *SkillService {
	return &SkillService{
		logger:   logger,
		searcher: searcher,
		mirror:   mirror,
		prefs:    prefs,
		session:  session,
		bus:      bus,
	}
}

// PlayTopic cherche une vidéo sur un sujet et la lance sur le mirror.
func (s *SkillService) PlayTopic(ctx context.Context, topic string, class domain.DurationClass) (Result, error) {
	return s.searchAndPlay(ctx, topic, class, "")
}

// PlayChannel lance une vidéo récente d'une chaîne donnée.
func (s *SkillService) PlayChannel(ctx context.Context, channel string) (Result, error) {
	return s.searchAndPlay(ctx, "", domain.DurationAny, channel)
}

// PlayURL lance une URL directe, sans recherche ni historique.
func (s *SkillService) PlayURL(ctx context.Context, rawURL string) (Result, error) {
	log := s.intentLogger("play_url")
	u := strings.TrimSpace(rawURL)
	if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		return Result{}, &CodedError{
			Code:    CodeInvalidCommandState,
			Message: "That doesn't look like a playable link",
		}
	}
	choice := domain.VideoCandidate{ID: domain.ExtractVideoID(u), URL: u}
	if err := s.playOnMirror(ctx, log, choice); err != nil {
		return Result{}, err
	}
	return Result{Speech: "Playing your link on the mirror", Video: &choice}, nil
}

func (s *SkillService) searchAndPlay(ctx context.Context, topic string, class domain.DurationClass, channel string) (Result, error) {
	log := s.intentLogger("play_topic")
	subject := describeSubject(topic, channel)
	if subject == "" {
		return Result{}, noResultsError("that", nil)
	}

	// La clé d'historique ne dépend pas du variety modifier : on compose
	// d'abord pour obtenir la clé, puis on rejoue la composition avec la
	// taille d'historique réelle.
	key := ComposeQuery(topic, class, channel, 0).Key()
	history := s.session.History(key)
	q := ComposeQuery(topic, class, channel, len(history))

	log.Debug().Str("terms", q.Terms()).Str("key", key).Int("history", len(history)).Msg("searching")

	cands, err := s.searcher.Search(ctx, q, searchLimit)
	if err != nil {
		// Échec provider == "no match" pour l'appelant, cause gardée au log.
		log.Warn().Err(err).Str("terms", q.Terms()).Msg("search failed")
		return Result{}, noResultsError(subject, err)
	}

	choice, err := SelectCandidate(cands, history, class)
	if err != nil {
		log.Info().Str("terms", q.Terms()).Msg("no eligible candidate")
		return Result{}, noResultsError(subject, err)
	}
	s.session.Remember(key, choice.ID)

	if err := s.playOnMirror(ctx, log, choice); err != nil {
		return Result{}, err
	}
	return Result{
		Speech: fmt.Sprintf("Playing %s on the mirror", subject),
		Video:  &choice,
	}, nil
}

// playOnMirror émet le Play puis, seulement s'il aboutit, écrase le pointeur
// vidéo courante. Jamais de mise à jour optimiste : un timeout laisse la
// session intacte.
func (s *SkillService) playOnMirror(ctx context.Context, log zerolog.Logger, choice domain.VideoCandidate) error {
	prefs, err := s.prefs.Get(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("preferences unavailable, using defaults")
		prefs = domain.DefaultPreferences()
	}

	if err := s.mirror.Play(ctx, choice.URL, prefs); err != nil {
		coded := asCodedMirrorError(err)
		log.Error().Err(err).Str("code", coded.Code).Str("url", choice.URL).Msg("play failed")
		s.publish("playback.error", eventPayload{VideoID: choice.ID, URL: choice.URL, Code: coded.Code})
		return coded
	}

	s.session.SetCurrent(choice)
	log.Info().Str("video_id", choice.ID).Str("url", choice.URL).Msg("playing")
	s.publish("playback.started", eventPayload{VideoID: choice.ID, URL: choice.URL, Title: choice.Title})
	return nil
}

// Pause met la lecture en pause.
func (s *SkillService) Pause(ctx context.Context) (Result, error) {
	if err := s.mirror.Pause(ctx); err != nil {
		return Result{}, asCodedMirrorError(err)
	}
	s.publish("playback.paused", eventPayload{})
	return Result{Speech: "Paused"}, nil
}

// Resume reprend la lecture.
func (s *SkillService) Resume(ctx context.Context) (Result, error) {
	if err := s.mirror.Resume(ctx); err != nil {
		return Result{}, asCodedMirrorError(err)
	}
	s.publish("playback.resumed", eventPayload{})
	return Result{Speech: "Resumed"}, nil
}

// Stop arrête complètement la lecture.
func (s *SkillService) Stop(ctx context.Context) (Result, error) {
	if err := s.mirror.Stop(ctx); err != nil {
		return Result{}, asCodedMirrorError(err)
	}
	s.publish("playback.stopped", eventPayload{})
	return Result{Speech: "Stopped"}, nil
}

// Seek avance ou recule la vidéo courante. Sans vidéo courante, aucun appel
// HTTP ne part : l'intent échoue en invalid_command_state.
func (s *SkillService) Seek(ctx context.Context, direction domain.SeekDirection, seconds int) (Result, error) {
	if _, ok := s.session.Current(); !ok {
		return Result{}, invalidStateError()
	}
	if seconds <= 0 {
		seconds = domain.DefaultSeekSeconds
	}
	if err := s.mirror.Seek(ctx, direction, seconds); err != nil {
		return Result{}, asCodedMirrorError(err)
	}
	if direction == domain.SeekRewind {
		return Result{Speech: fmt.Sprintf("Rewound %d seconds", seconds)}, nil
	}
	return Result{Speech: fmt.Sprintf("Skipped ahead %d seconds", seconds)}, nil
}

// Restart reprend la vidéo courante depuis le début.
func (s *SkillService) Restart(ctx context.Context) (Result, error) {
	if _, ok := s.session.Current(); !ok {
		return Result{}, invalidStateError()
	}
	if err := s.mirror.Restart(ctx); err != nil {
		return Result{}, asCodedMirrorError(err)
	}
	return Result{Speech: "Restarting the video"}, nil
}

// Status interroge le mirror sur l'état de lecture courant.
func (s *SkillService) Status(ctx context.Context) (Result, error) {
	snap, err := s.mirror.Status(ctx)
	if err != nil {
		return Result{}, asCodedMirrorError(err)
	}
	speech := "Nothing is playing on the mirror"
	if snap.Playing {
		speech = "The mirror is playing " + snap.Last()
	}
	return Result{Speech: speech, Status: &snap}, nil
}

// MirrorHealth sonde la vivacité du mirror.
func (s *SkillService) MirrorHealth(ctx context.Context) error {
	if err := s.mirror.Health(ctx); err != nil {
		return asCodedMirrorError(err)
	}
	return nil
}

// Preferences renvoie les options de lecture par défaut.
func (s *SkillService) Preferences(ctx context.Context) (domain.Preferences, error) {
	return s.prefs.Get(ctx)
}

// SetPreferences persiste les options puis les pousse au mirror
// (best-effort : la persistance prime).
func (s *SkillService) SetPreferences(ctx context.Context, prefs domain.Preferences) (domain.Preferences, error) {
	updated, err := s.prefs.Put(ctx, prefs)
	if err != nil {
		return domain.Preferences{}, err
	}
	if err := s.mirror.SetOptions(ctx, updated); err != nil {
		s.logger.Warn().Err(err).Msg("failed to push options to mirror")
	}
	return updated, nil
}

func (s *SkillService) intentLogger(intent string) zerolog.Logger {
	return s.logger.With().Str("intent", intent).Str("intent_id", xid.New().String()).Logger()
}

type eventPayload struct {
	VideoID string `json:"videoId,omitempty"`
	URL     string `json:"url,omitempty"`
	Title   string `json:"title,omitempty"`
	Code    string `json:"code,omitempty"`
}

func (s *SkillService) publish(topic string, payload eventPayload) {
	if s.bus == nil {
		return
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return
	}
	s.bus.Publish(topic, b)
}

func describeSubject(topic, channel string) string {
	topic = strings.TrimSpace(topic)
	channel = strings.TrimSpace(channel)
	switch {
	case topic != "" && channel != "":
		return topic + " from " + channel
	case channel != "":
		return channel + " channel"
	default:
		return topic
	}
}

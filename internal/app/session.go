package app

import (
	"sync"

	"github.com/smartgic/ovos-skill-share-to-mirror/internal/domain"
)

// historyBound est la profondeur K de l'historique anti-répétition par clé.
const historyBound = 5

// Session porte l'état process-wide du skill : historique de lecture par clé
// normalisée et pointeur "vidéo courante" (dernière vidéo lancée avec succès,
// cible implicite des contrôles relatifs).
//
// Construite au démarrage du skill, détruite à l'arrêt, jamais persistée.
// Un seul mutex suffit : la concurrence attendue est très faible.
type Session struct {
	mu      sync.Mutex
	history map[string][]string
	current *domain.VideoCandidate
}

func NewSession() *Session {
	return &Session{history: make(map[string][]string)}
}

// History renvoie une copie des derniers ids joués pour la clé.
func (s *Session) History(key string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := s.history[key]
	out := make([]string, len(entry))
	copy(out, entry)
	return out
}

// Remember ajoute un id joué à l'historique de la clé, en tronquant par
// l'avant au-delà de historyBound. Le Selector est le seul appelant.
func (s *Session) Remember(key, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry := append(s.history[key], id)
	if len(entry) > historyBound {
		entry = entry[len(entry)-historyBound:]
	}
	s.history[key] = entry
}

// SetCurrent écrase le pointeur vidéo courante. Appelé uniquement après un
// Play accepté par le mirror, jamais de mise à jour optimiste.
func (s *Session) SetCurrent(c domain.VideoCandidate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &c
}

// Current renvoie la vidéo courante, si un Play a déjà abouti.
func (s *Session) Current() (domain.VideoCandidate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return domain.VideoCandidate{}, false
	}
	return *s.current, true
}

package app

import (
	"github.com/smartgic/ovos-skill-share-to-mirror/internal/domain"
	"github.com/smartgic/ovos-skill-share-to-mirror/internal/ports"
)

// SelectCandidate applique le filtre de durée puis prend le premier candidat
// absent de l'historique. L'ordre de pertinence du provider fait foi : on ne
// re-classe jamais sur des signaux secondaires.
//
//  1. Durée non conforme => écarté, mais seulement si la durée est connue
//     (le backend scraping peut l'ignorer : on accepte alors de confiance).
//  2. Premier id hors historique => sélectionné.
//  3. Tous déjà joués => on reprend le plus pertinent (un contenu déjà vu
//     vaut mieux que le silence).
//  4. Rien après filtrage => ports.ErrNoResults, jamais de repli silencieux
//     vers une vidéo sans rapport.
func SelectCandidate(cands []domain.VideoCandidate, history []string, class domain.DurationClass) (domain.VideoCandidate, error) {
	eligible := make([]domain.VideoCandidate, 0, len(cands))
	for _, c := range cands {
		if c.DurationKnown && !class.Matches(c.DurationSeconds) {
			continue
		}
		eligible = append(eligible, c)
	}
	if len(eligible) == 0 {
		return domain.VideoCandidate{}, ports.ErrNoResults
	}

	seen := make(map[string]struct{}, len(history))
	for _, id := range history {
		seen[id] = struct{}{}
	}
	for _, c := range eligible {
		if _, ok := seen[c.ID]; !ok {
			return c, nil
		}
	}

	// full repeat
	return eligible[0], nil
}

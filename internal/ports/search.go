package ports

import (
	"context"

	"github.com/smartgic/ovos-skill-share-to-mirror/internal/domain"
)

// VideoSearcher est le contrat commun des deux backends de recherche
// (scraping et API officielle), sélectionnés à la construction.
type VideoSearcher interface {
	// Search renvoie au plus limit candidats, dans l'ordre de pertinence
	// du provider. Une erreur réseau/parse remonte telle quelle : c'est
	// la couche app qui la journalise et la traduit en "no match".
	Search(ctx context.Context, q domain.SearchQuery, limit int) ([]domain.VideoCandidate, error)
}

// Package youtube fournit les deux backends de recherche interchangeables :
// scraping de la page de résultats et API officielle Data v3.
package youtube

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/smartgic/ovos-skill-share-to-mirror/internal/ports"
)

const (
	BackendScrape  = "scrape"
	BackendDataAPI = "data_api"
)

// NewSearcher sélectionne le backend à la construction. data_api sans clé
// est rétrogradé en scrape, comme le veut la config d'origine.
func NewSearcher(logger zerolog.Logger, backend, apiKey string) ports.VideoSearcher {
	backend = strings.ToLower(strings.TrimSpace(backend))
	apiKey = strings.TrimSpace(apiKey)

	if backend == BackendDataAPI {
		if apiKey == "" {
			logger.Warn().Msg("data_api backend selected but no API key configured, falling back to scrape")
		} else {
			return NewDataAPI(apiKey)
		}
	}
	return NewScraper()
}

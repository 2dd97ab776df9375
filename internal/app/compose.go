package app

import (
	"strings"

	"github.com/smartgic/ovos-skill-share-to-mirror/internal/domain"
)

// varietyModifiers est la liste ordonnée fixe des modificateurs ajoutés aux
// requêtes répétées pour diversifier les résultats. Le choix est un
// round-robin déterministe sur la taille de l'historique : même clé,
// même rang de requête => même modificateur.
var varietyModifiers = []string{"latest", "tutorial", "best", "top"}

// ComposeQuery construit l'objet-requête pour une tentative de recherche.
// historyLen est le nombre d'entrées déjà jouées pour la clé normalisée :
// la première requête part nue, les suivantes reçoivent un variety modifier
// (la requête n°2 prend le premier de la liste, puis on cycle).
func ComposeQuery(topic string, class domain.DurationClass, channel string, historyLen int) domain.SearchQuery {
	q := domain.SearchQuery{
		Topic:    strings.TrimSpace(topic),
		Duration: class,
		Channel:  strings.TrimSpace(channel),
	}
	if historyLen > 0 {
		q.Variety = varietyModifiers[(historyLen-1)%len(varietyModifiers)]
	}
	return q
}

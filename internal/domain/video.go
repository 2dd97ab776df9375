package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type DurationClass string

const (
	DurationAny   DurationClass = "any"
	DurationShort DurationClass = "short"
	DurationLong  DurationClass = "long"
)

const (
	// Shorts font au plus 60s, les vidéos longues au moins 10 minutes.
	ShortMaxSeconds = 60
	LongMinSeconds  = 600
)

func ParseDurationClass(s string) DurationClass {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "short", "shorts":
		return DurationShort
	case "long":
		return DurationLong
	default:
		return DurationAny
	}
}

// Matches indique si une durée exacte (en secondes) satisfait la classe.
func (c DurationClass) Matches(seconds int) bool {
	switch c {
	case DurationShort:
		return seconds <= ShortMaxSeconds
	case DurationLong:
		return seconds >= LongMinSeconds
	default:
		return true
	}
}

// VideoCandidate est un résultat de recherche, immuable une fois récupéré.
// DurationKnown distingue "durée 0" de "durée inconnue" (backend scraping).
type VideoCandidate struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Channel         string `json:"channel"`
	DurationSeconds int    `json:"durationSeconds"`
	DurationKnown   bool   `json:"durationKnown"`
	URL             string `json:"url"`
}

// SearchQuery est l'objet-valeur d'une tentative de recherche.
type SearchQuery struct {
	Topic    string
	Duration DurationClass
	Channel  string
	Variety  string
}

// Key renvoie la clé normalisée (topic + classe + chaîne) utilisée pour
// l'historique anti-répétition. Le variety modifier n'en fait pas partie.
func (q SearchQuery) Key() string {
	parts := []string{normalizeKeyPart(q.Topic), string(q.Duration), normalizeKeyPart(q.Channel)}
	return strings.Join(parts, "|")
}

// Terms construit la chaîne de requête envoyée au provider. Ordre fixe :
// topic, terme de durée, contrainte de chaîne, variety modifier en dernier.
func (q SearchQuery) Terms() string {
	terms := []string{strings.TrimSpace(q.Topic)}
	switch q.Duration {
	case DurationShort:
		terms = append(terms, "shorts")
	case DurationLong:
		terms = append(terms, "full video")
	}
	if ch := strings.TrimSpace(q.Channel); ch != "" {
		terms = append(terms, `"`+ch+`"`, "channel")
	}
	if q.Variety != "" {
		terms = append(terms, q.Variety)
	}
	joined := strings.Join(terms, " ")
	return strings.Join(strings.Fields(joined), " ")
}

var keyTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func normalizeKeyPart(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	// Remove accents (NFD -> remove Mn -> NFC).
	if out, _, err := transform.String(keyTransformer, s); err == nil {
		s = out
	}
	return strings.Join(strings.Fields(s), " ")
}

package domain

import (
	"strings"
	"time"
)

const DefaultMirrorBaseURL = "http://localhost:8570"

const DefaultMirrorTimeout = 6 * time.Second

// MirrorEndpoint est la configuration immuable du mirror distant,
// chargée une fois au démarrage puis passée telle quelle au client.
type MirrorEndpoint struct {
	BaseURL   string
	Token     string
	VerifyTLS bool
	Timeout   time.Duration
}

// NormalizeBaseURL nettoie une URL de base venant de la configuration :
// défaut si vide, schéma http:// si absent, pas de slash final.
func NormalizeBaseURL(raw string) string {
	u := strings.TrimSpace(raw)
	if u == "" {
		return DefaultMirrorBaseURL
	}
	if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		u = "http://" + u
	}
	return strings.TrimRight(u, "/")
}

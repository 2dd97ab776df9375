package domain

import "strings"

type ControlAction string

const (
	ControlPause   ControlAction = "pause"
	ControlResume  ControlAction = "resume"
	ControlSeek    ControlAction = "seek"
	ControlRestart ControlAction = "restart"
)

type SeekDirection string

const (
	SeekForward SeekDirection = "forward"
	SeekRewind  SeekDirection = "rewind"
)

// DefaultSeekSeconds est appliqué quand l'intent ne précise pas de durée.
const DefaultSeekSeconds = 10

// StatusSnapshot est l'état de lecture rapporté par le mirror
// (state.playing / state.lastUrl / state.lastVideoId).
type StatusSnapshot struct {
	Playing     bool   `json:"playing"`
	LastURL     string `json:"lastUrl,omitempty"`
	LastVideoID string `json:"lastVideoId,omitempty"`
}

// Last renvoie l'identifiant le plus parlant de la dernière vidéo connue.
func (s StatusSnapshot) Last() string {
	if s.LastURL != "" {
		return s.LastURL
	}
	if s.LastVideoID != "" {
		return s.LastVideoID
	}
	return "unknown"
}

// ExtractVideoID extrait l'id YouTube d'une URL watch/youtu.be/shorts.
// Chaîne vide si l'URL ne ressemble pas à une vidéo YouTube.
func ExtractVideoID(rawURL string) string {
	u := strings.TrimSpace(rawURL)
	for _, marker := range []string{"watch?v=", "youtu.be/", "/shorts/", "/embed/"} {
		idx := strings.Index(u, marker)
		if idx < 0 {
			continue
		}
		id := u[idx+len(marker):]
		for _, sep := range []string{"&", "?", "#", "/"} {
			if cut := strings.Index(id, sep); cut >= 0 {
				id = id[:cut]
			}
		}
		return id
	}
	return ""
}

// WatchURL reconstruit l'URL canonique d'une vidéo par id.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}

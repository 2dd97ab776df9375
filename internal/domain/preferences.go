package domain

// CaptionOptions pilote les sous-titres côté mirror.
type CaptionOptions struct {
	Enabled bool   `json:"enabled"`
	Lang    string `json:"lang"`
}

// QualityOptions pilote la qualité cible côté mirror.
type QualityOptions struct {
	Target string `json:"target"`
	Lock   bool   `json:"lock"`
}

// Preferences regroupe les options de lecture par défaut, appliquées
// après chaque Play et modifiables par la voix / l'API.
type Preferences struct {
	Caption CaptionOptions `json:"caption"`
	Quality QualityOptions `json:"quality"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		Caption: CaptionOptions{Enabled: false, Lang: "en"},
		Quality: QualityOptions{Target: "auto", Lock: false},
	}
}

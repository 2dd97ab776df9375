package app

import (
	"context"
	"strings"

	"github.com/smartgic/ovos-skill-share-to-mirror/internal/domain"
	"github.com/smartgic/ovos-skill-share-to-mirror/internal/ports"
)

type PreferencesService struct {
	repo ports.PreferencesRepository
}

func NewPreferencesService(repo ports.PreferencesRepository) *PreferencesService {
	return &PreferencesService{repo: repo}
}

func (s *PreferencesService) Get(ctx context.Context) (domain.Preferences, error) {
	return s.repo.Get(ctx)
}

func (s *PreferencesService) Put(ctx context.Context, prefs domain.Preferences) (domain.Preferences, error) {
	// Validation légère.
	if strings.TrimSpace(prefs.Caption.Lang) == "" {
		prefs.Caption.Lang = domain.DefaultPreferences().Caption.Lang
	}
	if strings.TrimSpace(prefs.Quality.Target) == "" {
		prefs.Quality.Target = domain.DefaultPreferences().Quality.Target
	}
	return s.repo.Put(ctx, prefs)
}

package ports

import (
	"context"

	"github.com/smartgic/ovos-skill-share-to-mirror/internal/domain"
)

type PreferencesRepository interface {
	Get(ctx context.Context) (domain.Preferences, error)
	Put(ctx context.Context, prefs domain.Preferences) (domain.Preferences, error)
}

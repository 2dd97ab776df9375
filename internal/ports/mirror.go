package ports

import (
	"context"

	"github.com/smartgic/ovos-skill-share-to-mirror/internal/domain"
)

// MirrorControl couvre les cinq endpoints de contrôle du mirror plus la
// sonde de vie. Chaque appel émet exactement une requête HTTP, sauf les
// lectures (Status/Health) qui peuvent être retentées un nombre borné de
// fois : rejouer un Play sans clé d'idempotence dupliquerait l'effet.
type MirrorControl interface {
	Play(ctx context.Context, url string, prefs domain.Preferences) error
	Pause(ctx context.Context) error
	Resume(ctx context.Context) error
	Seek(ctx context.Context, direction domain.SeekDirection, seconds int) error
	Restart(ctx context.Context) error
	Stop(ctx context.Context) error
	Status(ctx context.Context) (domain.StatusSnapshot, error)
	SetOptions(ctx context.Context, prefs domain.Preferences) error
	Health(ctx context.Context) error
}

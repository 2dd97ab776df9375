package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/smartgic/ovos-skill-share-to-mirror/internal/domain"
)

const preferencesKey = "default"

// PreferencesRepository persiste les options de lecture (captions, qualité).
// L'historique anti-répétition, lui, reste en mémoire : il ne survit
// volontairement pas à un redémarrage.
type PreferencesRepository struct {
	db *sql.DB
}

func NewPreferencesRepository(db *sql.DB) *PreferencesRepository {
	return &PreferencesRepository{db: db}
}

func (r *PreferencesRepository) Get(ctx context.Context) (domain.Preferences, error) {
	var b []byte
	err := r.db.QueryRowContext(ctx, `SELECT value_json FROM preferences WHERE key = ?`, preferencesKey).Scan(&b)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Pas encore initialisé → valeurs par défaut.
			return domain.DefaultPreferences(), nil
		}
		return domain.Preferences{}, err
	}
	var p domain.Preferences
	if err := json.Unmarshal(b, &p); err != nil {
		// Si corrompu : fallback safe.
		return domain.DefaultPreferences(), nil
	}
	return p, nil
}

func (r *PreferencesRepository) Put(ctx context.Context, prefs domain.Preferences) (domain.Preferences, error) {
	b, err := json.Marshal(prefs)
	if err != nil {
		return domain.Preferences{}, err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO preferences(key, value_json, updated_at)
		VALUES(?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value_json = excluded.value_json, updated_at = excluded.updated_at
	`, preferencesKey, b, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return domain.Preferences{}, err
	}
	return r.Get(ctx)
}

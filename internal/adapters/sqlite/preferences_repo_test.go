package sqlite

import (
	"context"
	"testing"

	"github.com/smartgic/ovos-skill-share-to-mirror/internal/domain"
)

func TestPreferencesRepository_DefaultsAndPersist(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := NewPreferencesRepository(db.SQL)

	got, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("Get(default): %v", err)
	}
	if got != domain.DefaultPreferences() {
		t.Fatalf("expected default preferences, got %+v", got)
	}

	want := domain.Preferences{
		Caption: domain.CaptionOptions{Enabled: true, Lang: "fr"},
		Quality: domain.QualityOptions{Target: "1080p", Lock: true},
	}

	updated, err := repo.Put(ctx, want)
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if updated != want {
		t.Fatalf("Put: want %+v, got %+v", want, updated)
	}

	got2, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("Get(after Put): %v", err)
	}
	if got2 != want {
		t.Fatalf("Get after Put: want %+v, got %+v", want, got2)
	}

	// Deuxième Put : l'upsert écrase la ligne existante.
	want.Caption.Enabled = false
	if _, err := repo.Put(ctx, want); err != nil {
		t.Fatalf("Put(2nd): %v", err)
	}
	got3, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("Get(after 2nd Put): %v", err)
	}
	if got3.Caption.Enabled {
		t.Fatalf("upsert did not overwrite: %+v", got3)
	}
}

func TestPreferencesRepository_CorruptRowFallsBack(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if _, err := db.SQL.ExecContext(ctx, `INSERT INTO preferences(key, value_json, updated_at) VALUES('default', 'not json', '2026-01-01T00:00:00Z')`); err != nil {
		t.Fatalf("seed: %v", err)
	}

	repo := NewPreferencesRepository(db.SQL)
	got, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != domain.DefaultPreferences() {
		t.Fatalf("corrupt row should fall back to defaults, got %+v", got)
	}
}

// Package config charge la configuration du skill : variables STM_* avec
// valeurs par défaut, optionnellement recouvertes par un fichier YAML
// (l'équivalent du settings file du skill d'origine).
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/smartgic/ovos-skill-share-to-mirror/internal/domain"
)

type Config struct {
	// Adresse d'écoute de la surface intents.
	Addr string

	// Chemin SQLite des préférences.
	DBPath string

	// Backend de recherche : "scrape" (défaut) ou "data_api".
	SearchBackend string
	YouTubeAPIKey string

	// Mirror distant.
	MirrorBaseURL  string
	MirrorToken    string
	VerifyTLS      bool
	RequestTimeout time.Duration
}

func Default() Config {
	return Config{
		Addr:           envOr("STM_ADDR", "127.0.0.1:8571"),
		DBPath:         envOr("STM_DB_PATH", "stm.db"),
		SearchBackend:  envOr("STM_SEARCH_BACKEND", "scrape"),
		YouTubeAPIKey:  envOr("STM_YOUTUBE_API_KEY", ""),
		MirrorBaseURL:  envOr("STM_MIRROR_URL", domain.DefaultMirrorBaseURL),
		MirrorToken:    envOr("STM_MIRROR_TOKEN", ""),
		VerifyTLS:      envBool("STM_VERIFY_TLS", true),
		RequestTimeout: envSeconds("STM_REQUEST_TIMEOUT", domain.DefaultMirrorTimeout),
	}
}

// fileConfig reflète le fichier YAML optionnel. Les champs absents laissent
// la valeur env/défaut en place, d'où les pointeurs sur les booléens.
type fileConfig struct {
	Addr           string `yaml:"addr"`
	DBPath         string `yaml:"db_path"`
	SearchBackend  string `yaml:"search_backend"`
	YouTubeAPIKey  string `yaml:"youtube_api_key"`
	MirrorBaseURL  string `yaml:"mirror_url"`
	MirrorToken    string `yaml:"mirror_token"`
	VerifyTLS      *bool  `yaml:"verify_tls"`
	RequestTimeout int    `yaml:"request_timeout"`
}

// Load part des défauts (env compris) puis applique le fichier YAML
// s'il est fourni.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if fc.Addr != "" {
		cfg.Addr = fc.Addr
	}
	if fc.DBPath != "" {
		cfg.DBPath = fc.DBPath
	}
	if fc.SearchBackend != "" {
		cfg.SearchBackend = fc.SearchBackend
	}
	if fc.YouTubeAPIKey != "" {
		cfg.YouTubeAPIKey = fc.YouTubeAPIKey
	}
	if fc.MirrorBaseURL != "" {
		cfg.MirrorBaseURL = fc.MirrorBaseURL
	}
	if fc.MirrorToken != "" {
		cfg.MirrorToken = fc.MirrorToken
	}
	if fc.VerifyTLS != nil {
		cfg.VerifyTLS = *fc.VerifyTLS
	}
	if fc.RequestTimeout > 0 {
		cfg.RequestTimeout = time.Duration(fc.RequestTimeout) * time.Second
	}
	return cfg, nil
}

// MirrorEndpoint matérialise la partie mirror de la config.
func (c Config) MirrorEndpoint() domain.MirrorEndpoint {
	return domain.MirrorEndpoint{
		BaseURL:   domain.NormalizeBaseURL(c.MirrorBaseURL),
		Token:     c.MirrorToken,
		VerifyTLS: c.VerifyTLS,
		Timeout:   c.RequestTimeout,
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func envSeconds(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return time.Duration(n) * time.Second
}

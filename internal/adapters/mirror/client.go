// Package mirror est le client HTTP du module MMM-ShareToMirror côté
// MagicMirror : cinq endpoints de contrôle fixes plus une sonde de vie.
package mirror

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/smartgic/ovos-skill-share-to-mirror/internal/domain"
	"github.com/smartgic/ovos-skill-share-to-mirror/internal/ports"
)

// statusRetries : tentatives supplémentaires pour les lectures seules.
// Les écritures ne sont jamais rejouées : un Play dupliqué est un vrai
// effet de bord, et il n'y a pas de clé d'idempotence côté mirror.
const statusRetries = 2

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(endpoint domain.MirrorEndpoint) *Client {
	timeout := endpoint.Timeout
	if timeout <= 0 {
		timeout = domain.DefaultMirrorTimeout
	}

	transport := http.DefaultTransport
	if !endpoint.VerifyTLS {
		// Opt-out explicite : on tente quand même la connexion TLS.
		transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	return &Client{
		baseURL: domain.NormalizeBaseURL(endpoint.BaseURL),
		token:   strings.TrimSpace(endpoint.Token),
		http: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

type playPayload struct {
	URL     string                 `json:"url"`
	Caption *domain.CaptionOptions `json:"caption,omitempty"`
	Quality *domain.QualityOptions `json:"quality,omitempty"`
}

type controlPayload struct {
	Action    domain.ControlAction `json:"action"`
	Seconds   int                  `json:"seconds,omitempty"`
	Direction domain.SeekDirection `json:"direction,omitempty"`
}

type optionsPayload struct {
	Caption domain.CaptionOptions `json:"caption"`
	Quality domain.QualityOptions `json:"quality"`
}

type statusResponse struct {
	State struct {
		Playing     bool   `json:"playing"`
		LastURL     string `json:"lastUrl"`
		LastVideoID string `json:"lastVideoId"`
	} `json:"state"`
}

func (c *Client) Play(ctx context.Context, url string, prefs domain.Preferences) error {
	caption := prefs.Caption
	quality := prefs.Quality
	return c.post(ctx, "/api/play", playPayload{URL: url, Caption: &caption, Quality: &quality})
}

func (c *Client) Pause(ctx context.Context) error {
	return c.post(ctx, "/api/control", controlPayload{Action: domain.ControlPause})
}

func (c *Client) Resume(ctx context.Context) error {
	return c.post(ctx, "/api/control", controlPayload{Action: domain.ControlResume})
}

func (c *Client) Seek(ctx context.Context, direction domain.SeekDirection, seconds int) error {
	return c.post(ctx, "/api/control", controlPayload{
		Action:    domain.ControlSeek,
		Seconds:   seconds,
		Direction: direction,
	})
}

func (c *Client) Restart(ctx context.Context) error {
	return c.post(ctx, "/api/control", controlPayload{Action: domain.ControlRestart})
}

func (c *Client) Stop(ctx context.Context) error {
	return c.post(ctx, "/api/stop", nil)
}

func (c *Client) Status(ctx context.Context) (domain.StatusSnapshot, error) {
	var out statusResponse
	if err := c.do(ctx, http.MethodGet, "/api/status", nil, &out, true); err != nil {
		return domain.StatusSnapshot{}, err
	}
	return domain.StatusSnapshot{
		Playing:     out.State.Playing,
		LastURL:     out.State.LastURL,
		LastVideoID: out.State.LastVideoID,
	}, nil
}

func (c *Client) SetOptions(ctx context.Context, prefs domain.Preferences) error {
	return c.post(ctx, "/api/options", optionsPayload{Caption: prefs.Caption, Quality: prefs.Quality})
}

func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/health", nil, nil, true)
}

func (c *Client) post(ctx context.Context, path string, payload any) error {
	return c.do(ctx, http.MethodPost, path, payload, nil, false)
}

// do émet exactement une requête, plus statusRetries reprises pour les
// lectures seules, sans backoff. Traduction des échecs :
// réseau/timeout => ErrUnreachable, non-2xx => RemoteError{Status},
// 2xx au corps indéchiffrable => ErrBadResponse.
func (c *Client) do(ctx context.Context, method, path string, payload, out any, readOnly bool) error {
	var body []byte
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = b
	}

	attempts := 1
	if readOnly {
		attempts += statusRetries
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: %s %s: %v", ports.ErrUnreachable, method, path, err)
			continue
		}

		err = decodeResponse(resp, out)
		resp.Body.Close()
		return err
	}
	return lastErr
}

func decodeResponse(resp *http.Response, out any) error {
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &ports.RemoteError{Status: resp.StatusCode}
	}
	if out == nil {
		return nil
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ports.ErrBadResponse, err)
	}
	// Un corps vide sur 2xx est accepté (stop, options).
	if len(bytes.TrimSpace(b)) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("%w: %v", ports.ErrBadResponse, err)
	}
	return nil
}

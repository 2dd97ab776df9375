package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/smartgic/ovos-skill-share-to-mirror/internal/app"
	"github.com/smartgic/ovos-skill-share-to-mirror/internal/domain"
	"github.com/smartgic/ovos-skill-share-to-mirror/internal/ports"
)

type stubSearcher struct {
	results []domain.VideoCandidate
	err     error
}

func (s *stubSearcher) Search(context.Context, domain.SearchQuery, int) ([]domain.VideoCandidate, error) {
	return s.results, s.err
}

type stubMirror struct {
	err    error
	status domain.StatusSnapshot
	played []string
}

func (m *stubMirror) Play(_ context.Context, url string, _ domain.Preferences) error {
	m.played = append(m.played, url)
	return m.err
}
func (m *stubMirror) Pause(context.Context) error { return m.err }

func (m *stubMirror) Resume(context.Context) error { return m.err }

func (m *stubMirror) Seek(context.Context, domain.SeekDirection, int) error { return m.err }

func (m *stubMirror) Restart(context.Context) error { return m.err }

func (m *stubMirror) Stop(context.Context) error { return m.err }

func (m *stubMirror) Status(context.Context) (domain.StatusSnapshot, error) { return m.status, m.err }

func (m *stubMirror) SetOptions(context.Context, domain.Preferences) error { return m.err }

func (m *stubMirror) Health(context.Context) error { return m.err }

type stubPrefsRepo struct {
	prefs domain.Preferences
}

func (r *stubPrefsRepo) Get(context.Context) (domain.Preferences, error) { return r.prefs, nil }

func (r *stubPrefsRepo) Put(_ context.Context, p domain.Preferences) (domain.Preferences, error) {
	r.prefs = p
	return p, nil
}

func newTestServer(t *testing.T, searcher ports.VideoSearcher, mirror ports.MirrorControl) *httptest.Server {
	t.Helper()
	prefs := app.NewPreferencesService(&stubPrefsRepo{prefs: domain.DefaultPreferences()})
	skill := app.NewSkillService(zerolog.Nop(), searcher, mirror, prefs, app.NewSession(), nil)
	srv := httptest.NewServer(NewServer(zerolog.Nop(), skill, nil).Router())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestIntentsPlayTopic(t *testing.T) {
	searcher := &stubSearcher{results: []domain.VideoCandidate{
		{ID: "abc", Title: "Hit", Channel: "Chan", URL: domain.WatchURL("abc")},
	}}
	mirror := &stubMirror{}
	srv := newTestServer(t, searcher, mirror)

	resp := postJSON(t, srv.URL+"/api/v1/intents/play", `{"topic":"jazz piano","duration":"long"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: want 200, got %d", resp.StatusCode)
	}

	var res struct {
		Speech string                 `json:"speech"`
		Video  *domain.VideoCandidate `json:"video"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Video == nil || res.Video.ID != "abc" {
		t.Fatalf("video: %+v", res.Video)
	}
	if res.Speech == "" {
		t.Fatalf("expected speech in response")
	}
	if len(mirror.played) != 1 {
		t.Fatalf("mirror plays: %v", mirror.played)
	}
}

func TestIntentsPlayURL(t *testing.T) {
	mirror := &stubMirror{}
	srv := newTestServer(t, &stubSearcher{}, mirror)

	resp := postJSON(t, srv.URL+"/api/v1/intents/play", `{"url":"https://youtu.be/xyz"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: want 200, got %d", resp.StatusCode)
	}
	if len(mirror.played) != 1 || mirror.played[0] != "https://youtu.be/xyz" {
		t.Fatalf("mirror plays: %v", mirror.played)
	}
}

func TestIntentsPlayNoResults(t *testing.T) {
	srv := newTestServer(t, &stubSearcher{}, &stubMirror{})

	resp := postJSON(t, srv.URL+"/api/v1/intents/play", `{"topic":"nothing"}`)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status: want 404, got %d", resp.StatusCode)
	}

	var body skillErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Code != app.CodeNoSearchResults {
		t.Fatalf("code: want %q, got %q", app.CodeNoSearchResults, body.Code)
	}
	if body.Speech == "" {
		t.Fatalf("expected a speakable apology in the error body")
	}
}

func TestIntentsMirrorDown(t *testing.T) {
	searcher := &stubSearcher{results: []domain.VideoCandidate{
		{ID: "abc", URL: domain.WatchURL("abc")},
	}}
	srv := newTestServer(t, searcher, &stubMirror{err: ports.ErrUnreachable})

	resp := postJSON(t, srv.URL+"/api/v1/intents/play", `{"topic":"jazz"}`)
	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("status: want 502, got %d", resp.StatusCode)
	}
}

func TestIntentsControlWithoutCurrentVideo(t *testing.T) {
	srv := newTestServer(t, &stubSearcher{}, &stubMirror{})

	resp := postJSON(t, srv.URL+"/api/v1/intents/control", `{"action":"forward","seconds":30}`)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("status: want 409, got %d", resp.StatusCode)
	}

	var body skillErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Code != app.CodeInvalidCommandState {
		t.Fatalf("code: want %q, got %q", app.CodeInvalidCommandState, body.Code)
	}
}

func TestIntentsControlPauseAndUnknownAction(t *testing.T) {
	srv := newTestServer(t, &stubSearcher{}, &stubMirror{})

	resp := postJSON(t, srv.URL+"/api/v1/intents/control", `{"action":"pause"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("pause status: want 200, got %d", resp.StatusCode)
	}

	resp = postJSON(t, srv.URL+"/api/v1/intents/control", `{"action":"explode"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("unknown action status: want 400, got %d", resp.StatusCode)
	}
}

func TestIntentsStopAndStatus(t *testing.T) {
	mirror := &stubMirror{status: domain.StatusSnapshot{Playing: true, LastVideoID: "abc"}}
	srv := newTestServer(t, &stubSearcher{}, mirror)

	resp := postJSON(t, srv.URL+"/api/v1/intents/stop", ``)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("stop status: want 200, got %d", resp.StatusCode)
	}

	statusResp, err := http.Get(srv.URL + "/api/v1/intents/status")
	if err != nil {
		t.Fatalf("GET status: %v", err)
	}
	t.Cleanup(func() { _ = statusResp.Body.Close() })
	if statusResp.StatusCode != http.StatusOK {
		t.Fatalf("status: want 200, got %d", statusResp.StatusCode)
	}

	var res struct {
		Status *domain.StatusSnapshot `json:"status"`
	}
	if err := json.NewDecoder(statusResp.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Status == nil || !res.Status.Playing || res.Status.LastVideoID != "abc" {
		t.Fatalf("status payload: %+v", res.Status)
	}
}

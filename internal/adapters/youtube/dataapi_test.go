package youtube

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/smartgic/ovos-skill-share-to-mirror/internal/domain"
)

func newFakeDataAPI(t *testing.T, videosStatus int) (*DataAPI, *[]string) {
	t.Helper()
	var requests []string

	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.URL.String())
		fmt.Fprint(w, `{"items":[
			{"id":{"videoId":"v1"},"snippet":{"title":"One","channelTitle":"Chan"}},
			{"id":{"videoId":"v2"},"snippet":{"title":"Two","channelTitle":"Chan"}}
		]}`)
	})
	mux.HandleFunc("/videos", func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.URL.String())
		if videosStatus != http.StatusOK {
			w.WriteHeader(videosStatus)
			return
		}
		fmt.Fprint(w, `{"items":[
			{"id":"v1","contentDetails":{"duration":"PT3M5S"}},
			{"id":"v2","contentDetails":{"duration":"PT15M"}}
		]}`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return NewDataAPI("test-key").WithBaseURL(srv.URL), &requests
}

func TestDataAPISearch(t *testing.T) {
	api, requests := newFakeDataAPI(t, http.StatusOK)

	got, err := api.Search(context.Background(), domain.SearchQuery{Topic: "jazz", Duration: domain.DurationLong}, 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("candidates: want 2, got %d", len(got))
	}
	if got[0].ID != "v1" || got[1].ID != "v2" {
		t.Fatalf("order: %q %q", got[0].ID, got[1].ID)
	}
	if !got[0].DurationKnown || got[0].DurationSeconds != 185 {
		t.Fatalf("v1 duration: %+v", got[0])
	}
	if got[1].DurationSeconds != 900 {
		t.Fatalf("v2 duration: %+v", got[1])
	}

	search := (*requests)[0]
	if !strings.Contains(search, "videoDuration=long") {
		t.Fatalf("search request should carry the duration bucket: %q", search)
	}
	if !strings.Contains(search, "key=test-key") || !strings.Contains(search, "order=relevance") {
		t.Fatalf("search request: %q", search)
	}
}

func TestDataAPISearchToleratesDurationFailure(t *testing.T) {
	api, _ := newFakeDataAPI(t, http.StatusForbidden)

	got, err := api.Search(context.Background(), domain.SearchQuery{Topic: "jazz"}, 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("candidates should survive a videos.list failure, got %d", len(got))
	}
	if got[0].DurationKnown || got[1].DurationKnown {
		t.Fatalf("durations must stay unknown when videos.list fails")
	}
}

func TestDataAPISearchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)

	api := NewDataAPI("bad-key").WithBaseURL(srv.URL)
	if _, err := api.Search(context.Background(), domain.SearchQuery{Topic: "jazz"}, 5); err == nil {
		t.Fatalf("expected an error on search.list failure")
	}
}

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

func resultsPage(renderers string) string {
	return fmt.Sprintf(`<!DOCTYPE html><html><body><script>
var ytInitialData = {"contents":{"twoColumnSearchResultsRenderer":{"primaryContents":{"sectionListRenderer":{"contents":[{"itemSectionRenderer":{"contents":[%s]}}]}}}}};</script></body></html>`, renderers)
}

func renderer(id, title, channel, length string) string {
	lengthJSON := ""
	if length != "" {
		lengthJSON = fmt.Sprintf(`,"lengthText":{"simpleText":%q}`, length)
	}
	return fmt.Sprintf(`{"videoRenderer":{"videoId":%q,"title":{"runs":[{"text":%q}]},"ownerText":{"runs":[{"text":%q}]}%s}}`, id, title, channel, lengthJSON)
}

func TestScraperSearchParsesResultsInOrder(t *testing.T) {
	page := resultsPage(strings.Join([]string{
		renderer("vid1", "First hit", "Chan A", "3:05"),
		`{"adSlotRenderer":{}}`,
		renderer("vid2", "Second hit", "Chan B", ""),
		renderer("vid3", "Third hit", "Chan C", "1:02:03"),
	}, ","))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("search_query"); got != "jazz piano" {
			t.Errorf("search_query: want %q, got %q", "jazz piano", got)
		}
		fmt.Fprint(w, page)
	}))
	t.Cleanup(srv.Close)

	s := NewScraper().WithBaseURL(srv.URL)
	got, err := s.Search(context.Background(), domain.SearchQuery{Topic: "jazz piano"}, 5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("candidates: want 3, got %d (%+v)", len(got), got)
	}
	if got[0].ID != "vid1" || got[1].ID != "vid2" || got[2].ID != "vid3" {
		t.Fatalf("relevance order lost: %v %v %v", got[0].ID, got[1].ID, got[2].ID)
	}
	if got[0].Title != "First hit" || got[0].Channel != "Chan A" {
		t.Fatalf("metadata: %+v", got[0])
	}
	if !got[0].DurationKnown || got[0].DurationSeconds != 185 {
		t.Fatalf("duration vid1: %+v", got[0])
	}
	if got[1].DurationKnown {
		t.Fatalf("vid2 has no lengthText, duration must stay unknown")
	}
	if got[0].URL != domain.WatchURL("vid1") {
		t.Fatalf("URL: got %q", got[0].URL)
	}
}

func TestScraperSearchHonorsLimit(t *testing.T) {
	page := resultsPage(strings.Join([]string{
		renderer("a", "A", "c", "1:00"),
		renderer("b", "B", "c", "1:00"),
		renderer("c", "C", "c", "1:00"),
	}, ","))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, page)
	}))
	t.Cleanup(srv.Close)

	s := NewScraper().WithBaseURL(srv.URL)
	got, err := s.Search(context.Background(), domain.SearchQuery{Topic: "x"}, 2)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("limit: want 2, got %d", len(got))
	}
}

func TestScraperSearchAppliesDurationFilter(t *testing.T) {
	var gotSP string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSP = r.URL.RawQuery
		fmt.Fprint(w, resultsPage(renderer("a", "A", "c", "0:30")))
	}))
	t.Cleanup(srv.Close)

	s := NewScraper().WithBaseURL(srv.URL)
	if _, err := s.Search(context.Background(), domain.SearchQuery{Topic: "x", Duration: domain.DurationShort}, 5); err != nil {
		t.Fatalf("Search: %v", err)
	}
	if !strings.Contains(gotSP, "sp="+spFilterShort) {
		t.Fatalf("expected short sp filter in query, got %q", gotSP)
	}
}

func TestScraperSearchMissingInitialData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "<html><body>nothing here</body></html>")
	}))
	t.Cleanup(srv.Close)

	s := NewScraper().WithBaseURL(srv.URL)
	if _, err := s.Search(context.Background(), domain.SearchQuery{Topic: "x"}, 5); err == nil {
		t.Fatalf("expected an error on a page without ytInitialData")
	}
}

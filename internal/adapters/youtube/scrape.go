package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/smartgic/ovos-skill-share-to-mirror/internal/domain"
)

// Filtres "sp" de la page de résultats. Indicatifs seulement : YouTube bucke
// short à <4min et long à >20min, le filtrage exact reste côté Selector.
const (
	spFilterShort = "EgIYAQ%3D%3D"
	spFilterLong  = "EgIYAw%3D%3D"
)

// Scraper dérive les candidats de la page de résultats publique, sans clé
// API. La durée n'y est qu'approximativement connue (lengthText absent sur
// certains rendus : lives, shorts).
type Scraper struct {
	BaseURL string
	Client  *http.Client
}

func NewScraper() *Scraper {
	return &Scraper{
		BaseURL: "https://www.youtube.com",
		Client: &http.Client{
			Timeout: 12 * time.Second,
		},
	}
}

func (s *Scraper) WithBaseURL(base string) *Scraper {
	if strings.TrimSpace(base) != "" {
		s.BaseURL = strings.TrimRight(strings.TrimSpace(base), "/")
	}
	return s
}

func (s *Scraper) Search(ctx context.Context, q domain.SearchQuery, limit int) ([]domain.VideoCandidate, error) {
	if limit <= 0 {
		limit = 5
	}

	v := url.Values{}
	v.Set("search_query", q.Terms())
	searchURL := s.BaseURL + "/results?" + v.Encode()
	switch q.Duration {
	case domain.DurationShort:
		searchURL += "&sp=" + spFilterShort
	case domain.DurationLong:
		searchURL += "&sp=" + spFilterLong
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; stm-server)")
	req.Header.Set("Accept-Language", "en")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("results page http error: %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return parseResultsPage(string(body), limit)
}

// Décodage ciblé du blob ytInitialData. On ne suit que le chemin connu
// contents -> twoColumnSearchResultsRenderer -> primaryContents ->
// sectionListRenderer -> itemSectionRenderer -> videoRenderer, ce qui
// préserve l'ordre d'affichage (= ordre de pertinence).
type initialData struct {
	Contents struct {
		TwoColumnSearchResultsRenderer struct {
			PrimaryContents struct {
				SectionListRenderer struct {
					Contents []struct {
						ItemSectionRenderer struct {
							Contents []struct {
								VideoRenderer *videoRenderer `json:"videoRenderer"`
							} `json:"contents"`
						} `json:"itemSectionRenderer"`
					} `json:"contents"`
				} `json:"sectionListRenderer"`
			} `json:"primaryContents"`
		} `json:"twoColumnSearchResultsRenderer"`
	} `json:"contents"`
}

type videoRenderer struct {
	VideoID    string  `json:"videoId"`
	Title      textRun `json:"title"`
	OwnerText  textRun `json:"ownerText"`
	LengthText struct {
		SimpleText string `json:"simpleText"`
	} `json:"lengthText"`
}

type textRun struct {
	SimpleText string `json:"simpleText"`
	Runs       []struct {
		Text string `json:"text"`
	} `json:"runs"`
}

func (t textRun) String() string {
	if t.SimpleText != "" {
		return t.SimpleText
	}
	if len(t.Runs) > 0 {
		return t.Runs[0].Text
	}
	return ""
}

func parseResultsPage(html string, limit int) ([]domain.VideoCandidate, error) {
	blob, err := extractInitialData(html)
	if err != nil {
		return nil, err
	}

	var data initialData
	if err := json.Unmarshal([]byte(blob), &data); err != nil {
		return nil, fmt.Errorf("ytInitialData parse: %w", err)
	}

	out := make([]domain.VideoCandidate, 0, limit)
	for _, section := range data.Contents.TwoColumnSearchResultsRenderer.PrimaryContents.SectionListRenderer.Contents {
		for _, item := range section.ItemSectionRenderer.Contents {
			r := item.VideoRenderer
			if r == nil || r.VideoID == "" {
				// ads, shelves, channel cards
				continue
			}
			c := domain.VideoCandidate{
				ID:      r.VideoID,
				Title:   r.Title.String(),
				Channel: r.OwnerText.String(),
				URL:     domain.WatchURL(r.VideoID),
			}
			if secs, ok := parseClockDuration(r.LengthText.SimpleText); ok {
				c.DurationSeconds = secs
				c.DurationKnown = true
			}
			out = append(out, c)
			if len(out) >= limit {
				return out, nil
			}
		}
	}
	return out, nil
}

// extractInitialData isole le JSON assigné à ytInitialData dans la page.
func extractInitialData(html string) (string, error) {
	const marker = "var ytInitialData = "
	start := strings.Index(html, marker)
	if start < 0 {
		return "", fmt.Errorf("ytInitialData not found")
	}
	rest := html[start+len(marker):]
	end := strings.Index(rest, ";</script>")
	if end < 0 {
		return "", fmt.Errorf("ytInitialData not terminated")
	}
	return rest[:end], nil
}

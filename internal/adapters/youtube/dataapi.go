package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/smartgic/ovos-skill-share-to-mirror/internal/domain"
)

// DataAPI interroge l'API officielle YouTube Data v3. Deux requêtes par
// recherche : search.list pour les candidats (avec bucket de durée exact),
// puis videos.list pour les durées précises.
type DataAPI struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

func NewDataAPI(apiKey string) *DataAPI {
	return &DataAPI{
		APIKey:  apiKey,
		BaseURL: "https://www.googleapis.com/youtube/v3",
		Client: &http.Client{
			Timeout: 12 * time.Second,
		},
	}
}

func (a *DataAPI) WithBaseURL(base string) *DataAPI {
	if strings.TrimSpace(base) != "" {
		a.BaseURL = strings.TrimRight(strings.TrimSpace(base), "/")
	}
	return a
}

type apiSearchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			ChannelTitle string `json:"channelTitle"`
		} `json:"snippet"`
	} `json:"items"`
}

type apiVideosResponse struct {
	Items []struct {
		ID             string `json:"id"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
	} `json:"items"`
}

func (a *DataAPI) Search(ctx context.Context, q domain.SearchQuery, limit int) ([]domain.VideoCandidate, error) {
	if limit <= 0 {
		limit = 5
	}

	v := url.Values{}
	v.Set("part", "id,snippet")
	v.Set("type", "video")
	v.Set("order", "relevance")
	v.Set("maxResults", fmt.Sprintf("%d", limit))
	v.Set("q", q.Terms())
	v.Set("key", a.APIKey)
	// Bucket exact côté API : short (<4min) / long (>20min).
	switch q.Duration {
	case domain.DurationShort:
		v.Set("videoDuration", "short")
	case domain.DurationLong:
		v.Set("videoDuration", "long")
	}

	var sr apiSearchResponse
	if err := a.get(ctx, "/search?"+v.Encode(), &sr); err != nil {
		return nil, err
	}
	if len(sr.Items) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(sr.Items))
	out := make([]domain.VideoCandidate, 0, len(sr.Items))
	for _, item := range sr.Items {
		if item.ID.VideoID == "" {
			continue
		}
		ids = append(ids, item.ID.VideoID)
		out = append(out, domain.VideoCandidate{
			ID:      item.ID.VideoID,
			Title:   item.Snippet.Title,
			Channel: item.Snippet.ChannelTitle,
			URL:     domain.WatchURL(item.ID.VideoID),
		})
	}

	durations, err := a.fetchDurations(ctx, ids)
	if err != nil {
		// Les durées exactes sont un raffinement : sans elles, les
		// candidats restent utilisables (durée inconnue, filtrage sauté).
		return out, nil
	}
	for i := range out {
		if secs, ok := durations[out[i].ID]; ok {
			out[i].DurationSeconds = secs
			out[i].DurationKnown = true
		}
	}
	return out, nil
}

func (a *DataAPI) fetchDurations(ctx context.Context, ids []string) (map[string]int, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	v := url.Values{}
	v.Set("part", "contentDetails")
	v.Set("id", strings.Join(ids, ","))
	v.Set("key", a.APIKey)

	var vr apiVideosResponse
	if err := a.get(ctx, "/videos?"+v.Encode(), &vr); err != nil {
		return nil, err
	}
	out := make(map[string]int, len(vr.Items))
	for _, item := range vr.Items {
		if secs, ok := parseISODuration(item.ContentDetails.Duration); ok {
			out[item.ID] = secs
		}
	}
	return out, nil
}

func (a *DataAPI) get(ctx context.Context, pathAndQuery string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.BaseURL+pathAndQuery, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("youtube api http error: %s", resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

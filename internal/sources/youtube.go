// internal/sources/youtube.go
package sources

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// DefaultYouTubeBaseURL is the production YouTube Data API v3 endpoint.
const DefaultYouTubeBaseURL = "https://www.googleapis.com/youtube/v3"

// SearchSource mines the descriptions of YouTube search results for one
// query. Each result costs a videos.list lookup for the full description,
// so the optional Skip hook avoids re-fetching already-processed videos.
type SearchSource struct {
	client     *Client
	apiKey     string
	query      string
	maxResults int
	region     string

	// BaseURL overrides the API endpoint, used in tests.
	BaseURL string

	// Skip, when set, drops video IDs before the description lookup.
	Skip func(sourceID string) bool
}

// NewSearchSource builds a search adapter for one query.
func NewSearchSource(client *Client, apiKey, query string, maxResults int, region string) *SearchSource {
	if maxResults <= 0 || maxResults > 50 {
		maxResults = 20
	}
	return &SearchSource{
		client:     client,
		apiKey:     apiKey,
		query:      query,
		maxResults: maxResults,
		region:     region,
		BaseURL:    DefaultYouTubeBaseURL,
	}
}

func (s *SearchSource) Name() string {
	return "youtube:" + s.query
}

// Fetch searches for the query and returns one document per video, with
// the full description from videos.list.
func (s *SearchSource) Fetch(ctx context.Context) ([]Document, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("type", "video")
	params.Set("q", s.query)
	params.Set("maxResults", strconv.Itoa(s.maxResults))
	params.Set("key", s.apiKey)
	if s.region != "" {
		params.Set("regionCode", s.region)
	}

	var search searchResponse
	if err := s.client.FetchJSON(ctx, s.BaseURL+"/search?"+params.Encode(), &search); err != nil {
		return nil, fmt.Errorf("%w: youtube search %q: %v", ErrSourceUnavailable, s.query, err)
	}

	ids := make([]string, 0, len(search.Items))
	for _, item := range search.Items {
		if item.ID.VideoID == "" {
			continue
		}
		if s.Skip != nil && s.Skip(item.ID.VideoID) {
			continue
		}
		ids = append(ids, item.ID.VideoID)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	return fetchVideos(ctx, s.client, s.BaseURL, s.apiKey, ids)
}

// fetchVideos resolves full snippets for a batch of video IDs.
func fetchVideos(ctx context.Context, client *Client, baseURL, apiKey string, ids []string) ([]Document, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("id", strings.Join(ids, ","))
	params.Set("key", apiKey)

	var videos videosResponse
	if err := client.FetchJSON(ctx, baseURL+"/videos?"+params.Encode(), &videos); err != nil {
		return nil, fmt.Errorf("%w: youtube videos: %v", ErrSourceUnavailable, err)
	}

	docs := make([]Document, 0, len(videos.Items))
	for _, item := range videos.Items {
		docs = append(docs, Document{
			SourceID: item.ID,
			Title:    item.Snippet.Title,
			Channel:  item.Snippet.ChannelTitle,
			Text:     item.Snippet.Title + "\n" + item.Snippet.Description,
		})
	}
	return docs, nil
}

// API response shapes, limited to the fields the pipeline reads.

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
	} `json:"items"`
}

type videosResponse struct {
	Items []struct {
		ID      string  `json:"id"`
		Snippet snippet `json:"snippet"`
	} `json:"items"`
}

type snippet struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ChannelTitle string `json:"channelTitle"`
}

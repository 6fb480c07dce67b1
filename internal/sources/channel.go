// internal/sources/channel.go
package sources

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// ChannelSource mines the recent uploads of one YouTube channel. It walks
// channel -> uploads playlist -> playlist items, which is the cheap way to
// list a channel's videos.
type ChannelSource struct {
	client     *Client
	apiKey     string
	channelID  string
	maxResults int

	// BaseURL overrides the API endpoint, used in tests.
	BaseURL string

	// Skip, when set, drops video IDs before the description lookup.
	Skip func(sourceID string) bool
}

// NewChannelSource builds a channel uploads adapter.
func NewChannelSource(client *Client, apiKey, channelID string, maxResults int) *ChannelSource {
	if maxResults <= 0 || maxResults > 50 {
		maxResults = 20
	}
	return &ChannelSource{
		client:     client,
		apiKey:     apiKey,
		channelID:  channelID,
		maxResults: maxResults,
		BaseURL:    DefaultYouTubeBaseURL,
	}
}

func (s *ChannelSource) Name() string {
	return "channel:" + s.channelID
}

func (s *ChannelSource) Fetch(ctx context.Context) ([]Document, error) {
	uploads, err := s.uploadsPlaylist(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("playlistId", uploads)
	params.Set("maxResults", strconv.Itoa(s.maxResults))
	params.Set("key", s.apiKey)

	var items playlistItemsResponse
	if err := s.client.FetchJSON(ctx, s.BaseURL+"/playlistItems?"+params.Encode(), &items); err != nil {
		return nil, fmt.Errorf("%w: channel %s uploads: %v", ErrSourceUnavailable, s.channelID, err)
	}

	ids := make([]string, 0, len(items.Items))
	for _, item := range items.Items {
		id := item.Snippet.ResourceID.VideoID
		if id == "" {
			continue
		}
		if s.Skip != nil && s.Skip(id) {
			continue
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	return fetchVideos(ctx, s.client, s.BaseURL, s.apiKey, ids)
}

func (s *ChannelSource) uploadsPlaylist(ctx context.Context) (string, error) {
	params := url.Values{}
	params.Set("part", "contentDetails")
	params.Set("id", s.channelID)
	params.Set("key", s.apiKey)

	var channels channelsResponse
	if err := s.client.FetchJSON(ctx, s.BaseURL+"/channels?"+params.Encode(), &channels); err != nil {
		return "", fmt.Errorf("%w: channel %s: %v", ErrSourceUnavailable, s.channelID, err)
	}
	if len(channels.Items) == 0 {
		return "", fmt.Errorf("%w: channel %s not found", ErrSourceUnavailable, s.channelID)
	}

	uploads := channels.Items[0].ContentDetails.RelatedPlaylists.Uploads
	if uploads == "" {
		return "", fmt.Errorf("%w: channel %s has no uploads playlist", ErrSourceUnavailable, s.channelID)
	}
	return uploads, nil
}

type channelsResponse struct {
	Items []struct {
		ContentDetails struct {
			RelatedPlaylists struct {
				Uploads string `json:"uploads"`
			} `json:"relatedPlaylists"`
		} `json:"contentDetails"`
	} `json:"items"`
}

type playlistItemsResponse struct {
	Items []struct {
		Snippet struct {
			ResourceID struct {
				VideoID string `json:"videoId"`
			} `json:"resourceId"`
		} `json:"snippet"`
	} `json:"items"`
}

// internal/sources/youtube_test.go
package sources

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func fakeYouTubeAPI(t *testing.T, videoIDsParam *string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/search":
			io.WriteString(w, `{"items":[
				{"id":{"videoId":"vid1"}},
				{"id":{"videoId":"vid2"}}
			]}`)
		case "/videos":
			if videoIDsParam != nil {
				*videoIDsParam = r.URL.Query().Get("id")
			}
			io.WriteString(w, `{"items":[
				{"id":"vid1","snippet":{"title":"Nike Haul","description":"Use code SAVE50","channelTitle":"DealHunter"}},
				{"id":"vid2","snippet":{"title":"Tech Deals","description":"promo code TECH20X","channelTitle":"GadgetGuy"}}
			]}`)
		case "/channels":
			io.WriteString(w, `{"items":[{"contentDetails":{"relatedPlaylists":{"uploads":"UU123"}}}]}`)
		case "/playlistItems":
			io.WriteString(w, `{"items":[
				{"snippet":{"resourceId":{"videoId":"vid1"}}},
				{"snippet":{"resourceId":{"videoId":"vid2"}}}
			]}`)
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestSearchSourceFetch(t *testing.T) {
	server := fakeYouTubeAPI(t, nil)
	defer server.Close()

	src := NewSearchSource(newTestClient(), "key", "coupon haul", 10, "US")
	src.BaseURL = server.URL

	docs, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0].SourceID != "vid1" || docs[0].Channel != "DealHunter" {
		t.Errorf("unexpected document %+v", docs[0])
	}
	if docs[0].Title != "Nike Haul" {
		t.Errorf("title = %q", docs[0].Title)
	}
}

func TestSearchSourceSkipHook(t *testing.T) {
	var requested string
	server := fakeYouTubeAPI(t, &requested)
	defer server.Close()

	src := NewSearchSource(newTestClient(), "key", "coupon haul", 10, "")
	src.BaseURL = server.URL
	src.Skip = func(id string) bool { return id == "vid1" }

	if _, err := src.Fetch(context.Background()); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if requested != "vid2" {
		t.Errorf("skipped ids must not be looked up, requested %q", requested)
	}
}

func TestSearchSourceUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	src := NewSearchSource(newTestClient(), "bad-key", "deals", 10, "")
	src.BaseURL = server.URL

	_, err := src.Fetch(context.Background())
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
}

func TestChannelSourceFetch(t *testing.T) {
	server := fakeYouTubeAPI(t, nil)
	defer server.Close()

	src := NewChannelSource(newTestClient(), "key", "UC123", 10)
	src.BaseURL = server.URL

	docs, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[1].SourceID != "vid2" {
		t.Errorf("unexpected document %+v", docs[1])
	}
}

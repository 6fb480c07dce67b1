// internal/sources/webpage.go
package sources

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PageSource scrapes one coupon web page. It yields a single document per
// page with the URL as its stable identity, so a page is only reprocessed
// when the history store allows it.
type PageSource struct {
	client   *Client
	url      string
	selector string
}

// NewPageSource builds a page scraper. selector narrows extraction to
// matching containers; empty scrapes the whole body.
func NewPageSource(client *Client, pageURL, selector string) *PageSource {
	return &PageSource{client: client, url: pageURL, selector: selector}
}

func (s *PageSource) Name() string {
	return "web:" + s.url
}

func (s *PageSource) Fetch(ctx context.Context) ([]Document, error) {
	resp, err := s.client.Get(ctx, s.url)
	if err != nil {
		return nil, fmt.Errorf("%w: page %s: %v", ErrSourceUnavailable, s.url, err)
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrSourceUnavailable, s.url, err)
	}

	return []Document{{
		SourceID: s.url,
		Title:    strings.TrimSpace(doc.Find("title").First().Text()),
		Text:     pageText(doc, s.selector),
	}}, nil
}

// pageText joins the text of all selector matches, falling back to the
// whole body when the selector matches nothing.
func pageText(doc *goquery.Document, selector string) string {
	if selector != "" {
		var parts []string
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			if text := strings.TrimSpace(sel.Text()); text != "" {
				parts = append(parts, text)
			}
		})
		if len(parts) > 0 {
			return strings.Join(parts, "\n")
		}
	}
	return strings.TrimSpace(doc.Find("body").Text())
}

// internal/sources/browser.go
package sources

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"
)

// BrowserSource scrapes a page through headless Chrome, for coupon sites
// that render their listings with JavaScript. Like PageSource it yields a
// single document keyed by the URL.
type BrowserSource struct {
	url      string
	selector string
	timeout  time.Duration
}

// NewBrowserSource builds a browser-rendered page scraper.
func NewBrowserSource(pageURL, selector string, timeout time.Duration) *BrowserSource {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &BrowserSource{url: pageURL, selector: selector, timeout: timeout}
}

func (s *BrowserSource) Name() string {
	return "browser:" + s.url
}

func (s *BrowserSource) Fetch(ctx context.Context) ([]Document, error) {
	opts := []chromedp.ExecAllocatorOption{
		chromedp.NoFirstRun,
		chromedp.NoDefaultBrowserCheck,
		chromedp.DisableGPU,
		chromedp.NoSandbox, // Required for Docker environments
		chromedp.Headless,
		chromedp.Flag("blink-settings", "imagesEnabled=false"),
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, s.timeout)
	defer cancelRun()

	var html string
	err := chromedp.Run(runCtx,
		chromedp.Navigate(s.url),
		chromedp.WaitReady("body"),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: rendering %s: %v", ErrSourceUnavailable, s.url, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrSourceUnavailable, s.url, err)
	}

	return []Document{{
		SourceID: s.url,
		Title:    strings.TrimSpace(doc.Find("title").First().Text()),
		Text:     pageText(doc, s.selector),
	}}, nil
}

// Package scraper implements the scrape pipeline: fetch a page, discover
// its stylesheet and script references, archive what can be fetched, and
// persist the result as a single PageRecord.
package scraper

import (
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrFetchFailed marks any network or HTTP-status failure while getting a
// URL, for the primary page as well as for individual assets.
var ErrFetchFailed = errors.New("fetch failed")

// Fetcher performs plain GETs with the supplied client. No retries and no
// timeout beyond whatever the client itself is configured with.
type Fetcher struct {
	client *http.Client
}

// NewFetcher returns a Fetcher using client, or http.DefaultClient when
// client is nil.
func NewFetcher(client *http.Client) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{client: client}
}

// Fetch GETs url and returns the response body. Any transport error or
// non-2xx status wraps ErrFetchFailed.
func (f *Fetcher) Fetch(url string) ([]byte, error) {
	resp, err := f.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s returned status %d", ErrFetchFailed, url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body of %s: %v", ErrFetchFailed, url, err)
	}
	return body, nil
}

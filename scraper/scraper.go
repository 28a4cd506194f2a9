package scraper

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"pagemirror/models"
	"pagemirror/store"
)

// Service orchestrates one scrape: fetch page, extract references,
// archive assets, insert record. Strictly sequential, no retries.
type Service struct {
	fetcher  *Fetcher
	archiver *Archiver
	pages    *store.PageStore
	log      *logrus.Logger
}

// NewService wires the pipeline together.
func NewService(fetcher *Fetcher, archiver *Archiver, pages *store.PageStore, log *logrus.Logger) *Service {
	return &Service{fetcher: fetcher, archiver: archiver, pages: pages, log: log}
}

// Scrape fetches url, archives its stylesheets and scripts, and persists
// the result, returning the new record. A primary-page fetch failure
// aborts the whole scrape with ErrFetchFailed; a source URL that was
// already scraped surfaces as store.ErrDuplicateURL.
func (s *Service) Scrape(ctx context.Context, url string) (*models.PageRecord, error) {
	raw, err := s.fetcher.Fetch(url)
	if err != nil {
		return nil, err
	}

	page, err := ParsePage(raw)
	if err != nil {
		return nil, err
	}

	// The id is assigned before archiving so asset filenames can carry it.
	id := uuid.NewString()

	cssPaths, cssFailed := s.archiver.Archive(id, url, page.Stylesheets(), KindCSS)
	jsPaths, jsFailed := s.archiver.Archive(id, url, page.Scripts(), KindJS)

	rec := &models.PageRecord{
		ID:           id,
		SourceURL:    url,
		HTML:         page.Prettify(),
		CSSPaths:     cssPaths,
		JSPaths:      jsPaths,
		FailedAssets: append(cssFailed, jsFailed...),
	}
	if err := s.pages.Insert(ctx, rec); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"url":          url,
		"record_id":    id,
		"css_archived": len(cssPaths),
		"js_archived":  len(jsPaths),
		"failed":       len(rec.FailedAssets),
	}).Info("page scraped")

	return rec, nil
}

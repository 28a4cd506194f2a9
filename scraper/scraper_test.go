package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagemirror/store"
	"pagemirror/tests"
)

const pageHTML = `<!DOCTYPE html>
<html>
<head>
<link rel="stylesheet" href="ok.css">
<link rel="stylesheet" href="gone.css">
</head>
<body>
<h1>Fixture page</h1>
<script src="app.js"></script>
</body>
</html>`

func newPageServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			w.Write([]byte(pageHTML))
		case "/ok.css":
			w.Write([]byte(cssBody))
		case "/app.js":
			w.Write([]byte(jsBody))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestService(t *testing.T) (*Service, *store.PageStore, string) {
	t.Helper()
	db, err := tests.SetupTestDB()
	require.NoError(t, err, "Failed to set up test DB")

	staticDir := t.TempDir()
	require.NoError(t, EnsureStaticDirs(staticDir))

	log := tests.NewSilentLogger()
	pages := store.New(db)
	fetcher := NewFetcher(nil)
	archiver := NewArchiver(fetcher, staticDir, log)
	return NewService(fetcher, archiver, pages, log), pages, staticDir
}

func TestScrapeEndToEnd(t *testing.T) {
	server := newPageServer(t)
	service, pages, staticDir := newTestService(t)
	ctx := context.Background()

	target := server.URL + "/"
	rec, err := service.Scrape(ctx, target)
	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.Equal(t, target, rec.SourceURL)
	assert.NotEmpty(t, rec.ID)

	// Two stylesheets discovered, one fetchable: exactly one archived
	// path, carrying index 0.
	require.Len(t, rec.CSSPaths, 1)
	assert.Equal(t, "/static/css/"+rec.ID+"_style_0.css", rec.CSSPaths[0])

	require.Len(t, rec.JSPaths, 1)
	assert.Equal(t, "/static/js/"+rec.ID+"_script_0.js", rec.JSPaths[0])

	require.Len(t, rec.FailedAssets, 1)
	assert.Equal(t, server.URL+"/gone.css", rec.FailedAssets[0])

	// The stored HTML keeps the original references, fetched or not.
	assert.Contains(t, rec.HTML, `href="ok.css"`)
	assert.Contains(t, rec.HTML, `href="gone.css"`)
	assert.Contains(t, rec.HTML, `src="app.js"`)

	content, err := os.ReadFile(filepath.Join(staticDir, "css", rec.ID+"_style_0.css"))
	require.NoError(t, err)
	assert.Equal(t, cssBody, string(content))

	stored, err := pages.FindByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.HTML, stored.HTML)
	assert.Equal(t, rec.CSSPaths, stored.CSSPaths)
}

func TestScrapeDuplicateURL(t *testing.T) {
	server := newPageServer(t)
	service, pages, _ := newTestService(t)
	ctx := context.Background()

	target := server.URL + "/"
	_, err := service.Scrape(ctx, target)
	require.NoError(t, err)

	_, err = service.Scrape(ctx, target)
	require.ErrorIs(t, err, store.ErrDuplicateURL)

	recs, err := pages.List(ctx)
	require.NoError(t, err)
	assert.Len(t, recs, 1, "A rejected duplicate must not create a record")
}

func TestScrapePrimaryFetchFailure(t *testing.T) {
	server := newPageServer(t)
	service, pages, _ := newTestService(t)
	ctx := context.Background()

	rec, err := service.Scrape(ctx, server.URL+"/nonexistent")
	require.ErrorIs(t, err, ErrFetchFailed)
	assert.Nil(t, rec)

	recs, err := pages.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, recs, "No record should be created when the page fetch fails")
}

package scraper

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	t.Run("Successful fetch", func(t *testing.T) {
		expected := "<html><body>Hello, Test!</body></html>"
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, expected)
		}))
		defer server.Close()

		body, err := NewFetcher(nil).Fetch(server.URL)
		require.NoError(t, err)
		assert.Equal(t, expected, string(body))
	})

	t.Run("Server returns 404", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(http.NotFound))
		defer server.Close()

		_, err := NewFetcher(nil).Fetch(server.URL + "/missing")
		require.ErrorIs(t, err, ErrFetchFailed)
		assert.Contains(t, err.Error(), "status 404")
	})

	t.Run("Server returns 500", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := NewFetcher(nil).Fetch(server.URL)
		require.ErrorIs(t, err, ErrFetchFailed)
		assert.Contains(t, err.Error(), "status 500")
	})

	t.Run("Unreachable server", func(t *testing.T) {
		_, err := NewFetcher(nil).Fetch("http://localhost:1/nonexistent")
		require.ErrorIs(t, err, ErrFetchFailed)
	})
}

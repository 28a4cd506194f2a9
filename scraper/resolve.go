package scraper

import (
	"fmt"
	"net/url"
)

// Resolve joins a possibly-relative reference against base, following
// standard URL resolution rules. Absolute and scheme-relative references
// pass through with the expected scheme and host handling. The result is
// not checked for reachability.
func Resolve(base, ref string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("failed to parse base url %q: %w", base, err)
	}
	r, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("failed to parse reference %q: %w", ref, err)
	}
	return b.ResolveReference(r).String(), nil
}

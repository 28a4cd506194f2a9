package scraper

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// AssetKind selects the filename prefix and directory an archived asset
// is written under.
type AssetKind struct {
	Prefix string // filename infix, e.g. "style"
	Ext    string // file extension without the dot
	Subdir string // subdirectory of the static root, e.g. "css"
}

var (
	KindCSS = AssetKind{Prefix: "style", Ext: "css", Subdir: "css"}
	KindJS  = AssetKind{Prefix: "script", Ext: "js", Subdir: "js"}
)

// EnsureStaticDirs creates the per-kind asset directories under staticDir
// if they don't exist.
func EnsureStaticDirs(staticDir string) error {
	for _, kind := range []AssetKind{KindCSS, KindJS} {
		dir := filepath.Join(staticDir, kind.Subdir)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory '%s': %w", dir, err)
		}
	}
	return nil
}

// Archiver resolves, downloads, and stores the assets a page references.
type Archiver struct {
	fetcher   *Fetcher
	staticDir string
	log       *logrus.Logger
}

// NewArchiver returns an Archiver writing under staticDir.
func NewArchiver(fetcher *Fetcher, staticDir string, log *logrus.Logger) *Archiver {
	return &Archiver{fetcher: fetcher, staticDir: staticDir, log: log}
}

// Archive downloads each referenced asset and writes it under the static
// root, named {recordID}_{prefix}_{idx}.{ext} with idx the reference's
// position in refs. The record id in the filename keeps concurrent
// scrapes from overwriting each other's files.
//
// Archiving is best effort: an asset that cannot be resolved, fetched, or
// written is skipped, its index left as a gap in the filename sequence,
// and its URL returned in failed. The returned public paths keep
// discovery order.
func (a *Archiver) Archive(recordID, baseURL string, refs []string, kind AssetKind) (paths []string, failed []string) {
	for idx, ref := range refs {
		assetURL, err := Resolve(baseURL, ref)
		if err != nil {
			a.log.WithFields(logrus.Fields{"ref": ref, "error": err}).Debug("skipping unresolvable asset reference")
			failed = append(failed, ref)
			continue
		}

		body, err := a.fetcher.Fetch(assetURL)
		if err != nil {
			a.log.WithFields(logrus.Fields{"url": assetURL, "error": err}).Debug("skipping unfetchable asset")
			failed = append(failed, assetURL)
			continue
		}

		name := fmt.Sprintf("%s_%s_%d.%s", recordID, kind.Prefix, idx, kind.Ext)
		dest := filepath.Join(a.staticDir, kind.Subdir, name)
		if err := os.WriteFile(dest, body, 0644); err != nil {
			a.log.WithFields(logrus.Fields{"path": dest, "error": err}).Warn("failed to write archived asset")
			failed = append(failed, assetURL)
			continue
		}

		paths = append(paths, path.Join("/static", kind.Subdir, name))
	}
	return paths, failed
}

package models

import (
	"time"
)

// PageRecord represents one scraped page: its prettified HTML plus the
// public paths of every stylesheet and script archived alongside it.
type PageRecord struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	SourceURL string `gorm:"uniqueIndex;not null" json:"sourceUrl"` // The original URL that was scraped
	HTML      string `gorm:"type:text" json:"html"`
	// Public paths of archived assets, in discovery order. An asset whose
	// fetch failed is simply absent; its index is still consumed by the
	// filename sequence.
	CSSPaths []string `gorm:"serializer:json" json:"cssPaths"`
	JSPaths  []string `gorm:"serializer:json" json:"jsPaths"`
	// Absolute URLs of assets that could not be fetched or written.
	FailedAssets []string  `gorm:"serializer:json" json:"failedAssets,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

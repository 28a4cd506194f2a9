// Package store persists and retrieves PageRecords.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pagemirror/models"
)

var (
	// ErrDuplicateURL is returned when a record with the same source URL
	// already exists.
	ErrDuplicateURL = errors.New("url already scraped")
	// ErrNotFound is returned when no record has the requested identifier.
	ErrNotFound = errors.New("page record not found")
	// ErrInvalidID is returned when an identifier is not a well-formed UUID.
	ErrInvalidID = errors.New("invalid page record id")
)

// PageStore wraps a gorm handle with the operations the scrape pipeline
// and the render routes need.
type PageStore struct {
	db *gorm.DB
}

// New returns a PageStore backed by db.
func New(db *gorm.DB) *PageStore {
	return &PageStore{db: db}
}

// Insert persists a new record. Uniqueness of SourceURL is enforced by
// the store's unique index, so two scrapes of the same URL racing each
// other cannot both succeed.
func (s *PageStore) Insert(ctx context.Context, rec *models.PageRecord) error {
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateURL
		}
		return fmt.Errorf("failed to insert page record for %s: %w", rec.SourceURL, err)
	}
	return nil
}

// FindByID returns the record with the given identifier. A syntactically
// malformed id yields ErrInvalidID; a well-formed but unknown one yields
// ErrNotFound.
func (s *PageStore) FindByID(ctx context.Context, id string) (*models.PageRecord, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}

	var rec models.PageRecord
	if err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find page record %s: %w", id, err)
	}
	return &rec, nil
}

// List returns all records, newest first.
func (s *PageStore) List(ctx context.Context) ([]models.PageRecord, error) {
	var recs []models.PageRecord
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to list page records: %w", err)
	}
	return recs, nil
}

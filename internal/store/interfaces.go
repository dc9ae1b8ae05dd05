package store

import (
	"context"

	"github.com/MKhiriev/go-dict-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DictionaryRepository is the server-side source of truth for dictionaries.
//
// Every mutation is stored under a new revision taken from a single
// database sequence; revisions of committed mutations are strictly
// increasing, so a client that has applied everything up to revision N
// only needs the rows with a revision greater than N.
type DictionaryRepository interface {
	// Upsert inserts or replaces entries of t and returns the revision the
	// change was stored under.
	Upsert(ctx context.Context, t models.DictType, entries []models.DictEntry) (int64, error)

	// Remove soft-deletes the codes of t and returns the revision.
	Remove(ctx context.Context, t models.DictType, codes []string) (int64, error)

	// GetEntries returns the live entries of every requested type that has
	// any, ordered by sort order and code.
	GetEntries(ctx context.Context, types []models.DictType) (map[models.DictType][]models.DictEntry, error)

	// GetChanges returns every row changed after revision since together
	// with the newest revision among them (since itself when nothing
	// changed).
	GetChanges(ctx context.Context, since int64) ([]models.DictChange, int64, error)

	// ListTypes returns the types that currently have live entries.
	ListTypes(ctx context.Context) ([]models.DictType, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

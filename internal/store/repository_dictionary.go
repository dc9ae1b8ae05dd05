// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-dict-keeper/internal/logger"
	"github.com/MKhiriev/go-dict-keeper/models"
)

// dictionaryRepository is the PostgreSQL-backed implementation of
// [DictionaryRepository] over the dict_entries table.
//
// Mutations run in a transaction holding a transaction-scoped advisory lock
// and take their revision from dict_revision_seq. Transient failures
// (connection loss, serialization failures, deadlocks) are retried.
type dictionaryRepository struct {
	*DB
	logger *logger.Logger
}

// NewDictionaryRepository constructs a [DictionaryRepository] backed by db.
func NewDictionaryRepository(db *DB, logger *logger.Logger) DictionaryRepository {
	return &dictionaryRepository{
		DB:     db,
		logger: logger,
	}
}

// Upsert stores entries of t under a fresh revision. A previously deleted
// code comes back to life with the new revision as its creation revision.
func (r *dictionaryRepository) Upsert(ctx context.Context, t models.DictType, entries []models.DictEntry) (int64, error) {
	log := logger.FromContext(ctx)

	extras := make([]any, len(entries))
	for i, e := range entries {
		if len(e.Extra) == 0 {
			continue
		}
		raw, err := json.Marshal(e.Extra)
		if err != nil {
			return 0, fmt.Errorf("%w: extra of %q: %w", ErrBuildingSQLQuery, e.Code, err)
		}
		extras[i] = string(raw)
	}

	var rev int64
	err := withRetry(ctx, r.errorClassificator, func(ctx context.Context) error {
		return r.inRevision(ctx, func(tx *sql.Tx, next int64) error {
			query, args, err := buildUpsertEntriesQuery(t, entries, extras, next)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
			rev = next
			return nil
		})
	})
	if err != nil {
		log.Err(err).
			Str("func", "dictionaryRepository.Upsert").
			Str("dict_type", string(t)).
			Int("entries", len(entries)).
			Msg("failed to upsert dictionary entries")
		return 0, err
	}

	log.Debug().
		Str("func", "dictionaryRepository.Upsert").
		Str("dict_type", string(t)).
		Int64("revision", rev).
		Msg("dictionary entries upserted")
	return rev, nil
}

// Remove soft-deletes codes of t under a fresh revision. Codes that are
// absent or already deleted are ignored; [ErrNoEntriesAffected] is returned
// when none was live.
func (r *dictionaryRepository) Remove(ctx context.Context, t models.DictType, codes []string) (int64, error) {
	log := logger.FromContext(ctx)

	var rev int64
	err := withRetry(ctx, r.errorClassificator, func(ctx context.Context) error {
		return r.inRevision(ctx, func(tx *sql.Tx, next int64) error {
			query, args, err := buildRemoveEntriesQuery(t, codes, next)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			res, err := tx.ExecContext(ctx, query, args...)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
			if affected, err := res.RowsAffected(); err == nil && affected == 0 {
				return ErrNoEntriesAffected
			}
			rev = next
			return nil
		})
	})
	if err != nil {
		log.Err(err).
			Str("func", "dictionaryRepository.Remove").
			Str("dict_type", string(t)).
			Strs("codes", codes).
			Msg("failed to remove dictionary entries")
		return 0, err
	}

	return rev, nil
}

// inRevision runs fn in a transaction that holds the dictionary write lock
// and passes it the next revision.
func (r *dictionaryRepository) inRevision(ctx context.Context, fn func(tx *sql.Tx, rev int64) error) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, lockDictionaries, dictionaryLockKey); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	var rev int64
	if err = tx.QueryRowContext(ctx, nextRevision).Scan(&rev); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = fn(tx, rev); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

// GetEntries returns the live entries of types. Types without live entries
// are absent from the result.
func (r *dictionaryRepository) GetEntries(ctx context.Context, types []models.DictType) (map[models.DictType][]models.DictEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetEntriesQuery(types)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result := make(map[models.DictType][]models.DictEntry, len(types))
	err = withRetry(ctx, r.errorClassificator, func(ctx context.Context) error {
		clear(result)

		rows, err := r.DB.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		for rows.Next() {
			var (
				t     string
				entry models.DictEntry
				extra []byte
			)
			if err := rows.Scan(&t, &entry.Code, &entry.Label, &entry.SortOrder, &extra); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, err)
			}
			if entry.Extra, err = decodeExtra(extra); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, err)
			}
			result[models.DictType(t)] = append(result[models.DictType(t)], entry)
		}

		if err := rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "dictionaryRepository.GetEntries").
			Int("types", len(types)).
			Msg("failed to get dictionary entries")
		return nil, err
	}

	return result, nil
}

// GetChanges returns rows whose revision is greater than since, oldest
// first, together with the newest revision among them.
func (r *dictionaryRepository) GetChanges(ctx context.Context, since int64) ([]models.DictChange, int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetChangesQuery(since)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		changes []models.DictChange
		latest  int64
	)
	err = withRetry(ctx, r.errorClassificator, func(ctx context.Context) error {
		changes = make([]models.DictChange, 0, 50)
		latest = since

		rows, err := r.DB.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		for rows.Next() {
			var (
				c     models.DictChange
				t     string
				extra []byte
			)
			err := rows.Scan(&t, &c.Entry.Code, &c.Entry.Label, &c.Entry.SortOrder, &extra,
				&c.CreatedRevision, &c.UpdatedRevision, &c.Deleted)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, err)
			}
			if c.Entry.Extra, err = decodeExtra(extra); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, err)
			}
			c.Type = models.DictType(t)
			latest = max(latest, c.UpdatedRevision)
			changes = append(changes, c)
		}

		if err := rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "dictionaryRepository.GetChanges").
			Int64("since", since).
			Msg("failed to get dictionary changes")
		return nil, 0, err
	}

	return changes, latest, nil
}

func (r *dictionaryRepository) ListTypes(ctx context.Context) ([]models.DictType, error) {
	log := logger.FromContext(ctx)

	types := make([]models.DictType, 0, 16)
	err := withRetry(ctx, r.errorClassificator, func(ctx context.Context) error {
		types = types[:0]

		rows, err := r.DB.QueryContext(ctx, listDictTypes)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, err)
			}
			types = append(types, models.DictType(t))
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "dictionaryRepository.ListTypes").Msg("failed to list dictionary types")
		return nil, err
	}

	return types, nil
}

func decodeExtra(raw []byte) (map[string]any, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var extra map[string]any
	if err := json.Unmarshal(raw, &extra); err != nil {
		return nil, err
	}
	return extra, nil
}

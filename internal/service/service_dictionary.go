package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-dict-keeper/internal/logger"
	"github.com/MKhiriev/go-dict-keeper/internal/store"
	"github.com/MKhiriev/go-dict-keeper/models"
)

type dictionaryService struct {
	dictionaryRepository store.DictionaryRepository

	logger *logger.Logger
}

func NewDictionaryService(dictionaryRepository store.DictionaryRepository, logger *logger.Logger) DictionaryService {
	return &dictionaryService{
		dictionaryRepository: dictionaryRepository,
		logger:               logger,
	}
}

func (d *dictionaryService) GetBatch(ctx context.Context, types []models.DictType) (models.BatchResponse, error) {
	found, err := d.dictionaryRepository.GetEntries(ctx, types)
	if err != nil {
		return nil, err
	}

	batch := make(models.BatchResponse, len(types))
	for _, t := range types {
		entries := found[t]
		if entries == nil {
			entries = []models.DictEntry{}
		}
		batch[t] = entries
	}
	return batch, nil
}

// GetChanges classifies every row changed after since: deleted rows become
// removed codes, rows created after since are added, the rest are updated.
// A row created and deleted after since is reported as removed, which the
// client treats as a no-op.
func (d *dictionaryService) GetChanges(ctx context.Context, since models.SyncToken) (models.IncrementalResponse, error) {
	rev, err := parseRevision(since)
	if err != nil {
		return models.IncrementalResponse{}, err
	}

	changes, latest, err := d.dictionaryRepository.GetChanges(ctx, rev)
	if err != nil {
		return models.IncrementalResponse{}, err
	}

	resp := models.IncrementalResponse{
		Token:   formatRevision(latest),
		Changes: make(map[models.DictType]models.TypeDiff),
	}
	for _, c := range changes {
		diff := resp.Changes[c.Type]
		switch {
		case c.Deleted:
			diff.RemovedCodes = append(diff.RemovedCodes, c.Entry.Code)
		case c.CreatedRevision > rev:
			diff.Added = append(diff.Added, c.Entry)
		default:
			diff.Updated = append(diff.Updated, c.Entry)
		}
		resp.Changes[c.Type] = diff
	}

	for t, diff := range resp.Changes {
		resp.Changes[t] = nonNilDiff(diff)
	}

	d.logger.Debug().
		Str("func", "dictionaryService.GetChanges").
		Str("sync_token", string(since)).
		Str("response_token", string(resp.Token)).
		Int("rows", len(changes)).
		Msg("changes collected")

	return resp, nil
}

func (d *dictionaryService) ListTypes(ctx context.Context) ([]models.DictType, error) {
	types, err := d.dictionaryRepository.ListTypes(ctx)
	if err != nil {
		return nil, err
	}
	if types == nil {
		types = []models.DictType{}
	}
	return types, nil
}

func (d *dictionaryService) Upsert(ctx context.Context, t models.DictType, entries []models.DictEntry) (models.SyncToken, error) {
	rev, err := d.dictionaryRepository.Upsert(ctx, t, entries)
	if err != nil {
		return "", err
	}
	return formatRevision(rev), nil
}

func (d *dictionaryService) Remove(ctx context.Context, t models.DictType, codes []string) (models.SyncToken, error) {
	rev, err := d.dictionaryRepository.Remove(ctx, t, codes)
	if err != nil {
		return "", err
	}
	return formatRevision(rev), nil
}

// parseRevision turns a client token into a revision. The zero token means
// revision 0, i.e. everything.
func parseRevision(tok models.SyncToken) (int64, error) {
	if tok.IsZero() {
		return 0, nil
	}
	rev, err := strconv.ParseInt(string(tok), 10, 64)
	if err != nil || rev < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSyncToken, tok)
	}
	return rev, nil
}

func formatRevision(rev int64) models.SyncToken {
	return models.SyncToken(strconv.FormatInt(rev, 10))
}

func nonNilDiff(d models.TypeDiff) models.TypeDiff {
	if d.Added == nil {
		d.Added = []models.DictEntry{}
	}
	if d.Updated == nil {
		d.Updated = []models.DictEntry{}
	}
	if d.RemovedCodes == nil {
		d.RemovedCodes = []string{}
	}
	return d
}

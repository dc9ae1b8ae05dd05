package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-dict-keeper/models"
)

// dictionaryLockKey serializes dictionary writers so revisions commit in
// the order they were taken from the sequence.
const dictionaryLockKey int64 = 0x64696374

const (
	lockDictionaries = `SELECT pg_advisory_xact_lock($1);`

	nextRevision = `SELECT nextval('dict_revision_seq');`

	upsertEntriesSuffix = `ON CONFLICT (dict_type, code) DO UPDATE SET
			label = EXCLUDED.label,
			sort_order = EXCLUDED.sort_order,
			extra = EXCLUDED.extra,
			created_rev = CASE WHEN dict_entries.deleted THEN EXCLUDED.created_rev ELSE dict_entries.created_rev END,
			updated_rev = EXCLUDED.updated_rev,
			deleted = FALSE,
			updated_at = NOW()`

	listDictTypes = `SELECT DISTINCT dict_type
		FROM dict_entries
		WHERE deleted = FALSE
		ORDER BY dict_type;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildUpsertEntriesQuery builds one multi-row upsert for entries of t
// stored under revision rev.
func buildUpsertEntriesQuery(t models.DictType, entries []models.DictEntry, extras []any, rev int64) (string, []any, error) {
	builder := psql.Insert("dict_entries").
		Columns("dict_type", "code", "label", "sort_order", "extra", "created_rev", "updated_rev", "deleted", "updated_at")

	for i, e := range entries {
		builder = builder.Values(string(t), e.Code, e.Label, e.SortOrder, extras[i], rev, rev, false, sq.Expr("NOW()"))
	}

	return builder.Suffix(upsertEntriesSuffix).ToSql()
}

// buildRemoveEntriesQuery builds the soft delete of codes of t.
func buildRemoveEntriesQuery(t models.DictType, codes []string, rev int64) (string, []any, error) {
	return psql.Update("dict_entries").
		Set("deleted", true).
		Set("updated_rev", rev).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"dict_type": string(t), "code": codes, "deleted": false}).
		ToSql()
}

func buildGetEntriesQuery(types []models.DictType) (string, []any, error) {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}

	return psql.Select("dict_type", "code", "label", "sort_order", "extra").
		From("dict_entries").
		Where(sq.Eq{"dict_type": names, "deleted": false}).
		OrderBy("dict_type", "sort_order", "code").
		ToSql()
}

func buildGetChangesQuery(since int64) (string, []any, error) {
	return psql.Select("dict_type", "code", "label", "sort_order", "extra", "created_rev", "updated_rev", "deleted").
		From("dict_entries").
		Where(sq.Gt{"updated_rev": since}).
		OrderBy("updated_rev", "dict_type", "code").
		ToSql()
}

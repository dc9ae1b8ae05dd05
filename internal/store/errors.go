package store

import "errors"

// Sentinel errors returned by the in-memory record store. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrEmptyDictType is returned when a mutation names no dictionary type.
	ErrEmptyDictType = errors.New("dictionary type is empty")

	// ErrEmptyEntryCode is returned when an entry or a removed code is empty.
	ErrEmptyEntryCode = errors.New("dictionary entry code is empty")
)

// Snapshot persistence errors.
var (
	// ErrCorruptSnapshot marks a persisted snapshot that cannot be trusted:
	// undecodable document, wrong shapes or checksum mismatch. Load turns it
	// into "no snapshot".
	ErrCorruptSnapshot = errors.New("persisted snapshot is corrupt")

	// ErrEncodingSnapshot is returned when a snapshot cannot be serialized.
	ErrEncodingSnapshot = errors.New("error encoding snapshot")

	// ErrWritingSnapshot is returned when a snapshot cannot be written.
	ErrWritingSnapshot = errors.New("error writing snapshot")

	// ErrUnknownSnapshotDriver is returned for a driver other than "sqlite"
	// or "file".
	ErrUnknownSnapshotDriver = errors.New("unknown snapshot driver")
)

// ErrNoEntriesAffected is returned when a dictionary mutation finished
// without touching any row.
var ErrNoEntriesAffected = errors.New("no dictionary entries were affected")

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan dictionary row")

	// ErrScanningRows is returned when iterating a multi-row result fails
	// mid-result-set.
	ErrScanningRows = errors.New("failed to scan dictionary rows")
)

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-dict-keeper/internal/logger"
	"github.com/MKhiriev/go-dict-keeper/models"
)

// fileSnapshotStorage keeps the snapshot document in a single JSON file.
// Writes go to a temporary file in the same directory that is then renamed
// over the target, so a crash never leaves a half-written snapshot.
type fileSnapshotStorage struct {
	mu   sync.Mutex
	path string
}

// NewFileSnapshotStorage returns a [SnapshotStorage] writing to path.
func NewFileSnapshotStorage(path string) SnapshotStorage {
	return &fileSnapshotStorage{path: path}
}

func (f *fileSnapshotStorage) Load(ctx context.Context) (*models.Snapshot, error) {
	log := logger.FromContext(ctx)

	f.mu.Lock()
	data, err := os.ReadFile(f.path)
	f.mu.Unlock()

	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		log.Err(err).Str("func", "fileSnapshotStorage.Load").Str("path", f.path).Msg("failed to read snapshot file")
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}

	snap, err := decodeSnapshot(data)
	if err != nil {
		log.Warn().Err(err).Str("func", "fileSnapshotStorage.Load").Str("path", f.path).Msg("ignoring persisted snapshot")
		return nil, nil
	}
	return snap, nil
}

func (f *fileSnapshotStorage) Save(ctx context.Context, snap models.Snapshot) error {
	data, _, err := encodeSnapshot(snap)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := writeFileAtomic(f.path, data); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "fileSnapshotStorage.Save").Str("path", f.path).Msg("failed to write snapshot file")
		return fmt.Errorf("%w: %w", ErrWritingSnapshot, err)
	}
	return nil
}

func (f *fileSnapshotStorage) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.FromContext(ctx).Err(err).Str("func", "fileSnapshotStorage.Clear").Str("path", f.path).Msg("failed to remove snapshot file")
		return fmt.Errorf("remove snapshot file: %w", err)
	}
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmpName, 0o600); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}

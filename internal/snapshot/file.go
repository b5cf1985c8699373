package snapshot

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"debtwise/internal/engine"
	"debtwise/internal/logger"
)

// FileStore keeps the snapshot in a single JSON file on disk.
type FileStore struct {
	path string
	log  zerolog.Logger
}

func NewFileStore(path string) *FileStore {
	return &FileStore{
		path: path,
		log:  logger.WithComponent("snapshot-file"),
	}
}

// Load reads the snapshot file. A missing file starts a fresh portfolio; a
// corrupt one is discarded with a warning rather than propagated.
func (s *FileStore) Load(ctx context.Context) (*engine.Portfolio, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return engine.NewPortfolio(), nil
		}
		return nil, err
	}

	p, err := decode(raw)
	if err != nil {
		s.log.Warn().
			Err(err).
			Str("path", s.path).
			Msg("Discarding malformed snapshot, starting empty")
		return engine.NewPortfolio(), nil
	}
	return p, nil
}

// Save writes the snapshot atomically via a temp file rename.
func (s *FileStore) Save(ctx context.Context, p *engine.Portfolio) error {
	raw, err := encode(p)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".debtwise-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

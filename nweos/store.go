package nweos

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/atlaschan0010/obsidian-plugin-nweos/internal/validation"
	"github.com/atlaschan0010/obsidian-plugin-nweos/types"
)

// Constants for cross-process file locking.
const (
	lockTimeout    = 3 * time.Second
	lockMaxRetries = 3
	lockRetryDelay = 100 * time.Millisecond

	lockFileName = ".nweos.lock"
)

// Store maps character cards to files inside a configured folder. The card
// identifier is the logical primary key; the filename is a derived,
// unstable display convenience. The store keeps no in-memory index: every
// operation is a live pass over the folder, which is the source of truth.
type Store struct {
	dir         string
	config      types.Config
	lockManager *lockManager
	fileLock    *flock.Flock
	logger      *slog.Logger

	// timeFunc supplies last_updated stamps; overridable for tests.
	timeFunc func() time.Time
}

// NewStore validates the configuration and returns a store rooted at its
// folder path. The folder itself is created lazily on first save.
func NewStore(config types.Config) (*Store, error) {
	if err := validation.ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid store config: %w", err)
	}

	dir := config.FolderPath
	return &Store{
		dir:         dir,
		config:      config,
		lockManager: newLockManager(),
		fileLock:    flock.New(filepath.Join(dir, lockFileName)),
		logger:      slog.Default().With("component", "store"),
		timeFunc:    time.Now,
	}, nil
}

// Dir returns the folder the store reads and writes.
func (s *Store) Dir() string {
	return s.dir
}

// Config returns the configuration the store was built with.
func (s *Store) Config() types.Config {
	return s.config
}

// SetTimeFunc overrides the clock used for last_updated stamps.
func (s *Store) SetTimeFunc(fn func() time.Time) {
	_ = s.lockManager.execute(writeOperation, func() error {
		s.timeFunc = fn
		return nil
	})
}

// acquireLock attempts to take the exclusive folder lock with retries.
func (s *Store) acquireLock(ctx context.Context) error {
	for i := 0; i < lockMaxRetries; i++ {
		locked, err := s.fileLock.TryLockContext(ctx, lockRetryDelay)
		if err != nil {
			return fmt.Errorf("failed to acquire lock: %w", err)
		}
		if locked {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(lockRetryDelay):
		}
	}

	return fmt.Errorf("failed to acquire lock after %d attempts", lockMaxRetries)
}

func (s *Store) releaseLock() error {
	return s.fileLock.Unlock()
}

// withFolderLock runs fn while holding the cross-process folder lock.
// The folder must exist before this is called.
func (s *Store) withFolderLock(fn func() error) error {
	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	if err := s.acquireLock(ctx); err != nil {
		return err
	}
	defer func() { _ = s.releaseLock() }()

	return fn()
}

func (s *Store) ensureFolder() error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create folder %s: %w", s.dir, err)
	}
	return nil
}

func (s *Store) folderExists() bool {
	info, err := os.Stat(s.dir)
	return err == nil && info.IsDir()
}

// listEntries returns the card filenames directly inside the folder,
// sorted by name. Folder enumeration order is otherwise platform-defined,
// and load order is display-relevant, so sorting keeps it stable.
func (s *Store) listEntries() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list folder %s: %w", s.dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), FileExt) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// readCard parses one folder entry as a card. Failures are the caller's to
// classify; bulk operations skip and log them.
func (s *Store) readCard(name string) (*types.Character, error) {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	c, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return c, nil
}

// idProbe pulls just the identifier out of a card file. The reconciliation
// and delete scans only need the id, so they skip full decoding.
type idProbe struct {
	Metadata struct {
		CharacterID string `json:"character_id"`
	} `json:"metadata"`
}

func (s *Store) probeID(name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	var probe idProbe
	if err := json.Unmarshal(data, &probe); err != nil {
		return "", err
	}
	return probe.Metadata.CharacterID, nil
}

// LoadAll parses every card file in the folder, sorted by filename.
// Entries that fail to parse are logged and skipped; a bad file never
// fails the bulk load.
func (s *Store) LoadAll() ([]types.Character, error) {
	result, err := s.lockManager.executeWithResult(readOperation, func() (interface{}, error) {
		if !s.folderExists() {
			return []types.Character{}, nil
		}

		var cards []types.Character
		err := s.withFolderLock(func() error {
			names, err := s.listEntries()
			if err != nil {
				return err
			}

			cards = make([]types.Character, 0, len(names))
			for _, name := range names {
				c, err := s.readCard(name)
				if err != nil {
					s.logger.Warn("skipping unreadable character file",
						"file", name, "error", err)
					continue
				}
				cards = append(cards, *c)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		return cards, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]types.Character), nil
}

// Save persists a card at its derived path and reconciles any stale file
// left under the card's previous name. The new file is written before the
// stale one is removed, so a crash mid-save can leave a duplicate for the
// identifier but never zero files.
//
// Save refreshes last_updated on the passed card. It never consults the
// red line checker: incomplete drafts save fine.
func (s *Store) Save(c *types.Character) error {
	return s.lockManager.execute(writeOperation, func() error {
		c.Metadata.LastUpdated = s.timeFunc().UTC().Format(time.RFC3339)

		data, err := Marshal(c)
		if err != nil {
			return err
		}

		if err := s.ensureFolder(); err != nil {
			return err
		}

		return s.withFolderLock(func() error {
			target := FileName(c)
			if err := s.writeFileAtomic(target, data); err != nil {
				return err
			}
			s.reconcile(c.Metadata.CharacterID, target)
			return nil
		})
	})
}

// writeFileAtomic writes via a uniquely named temp file and a rename, so a
// concurrent reader never observes a half-written card.
func (s *Store) writeFileAtomic(name string, data []byte) error {
	path := filepath.Join(s.dir, name)
	tmpPath := path + "." + uuid.New().String() + ".tmp"

	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// reconcile removes the first other card file that carries the same
// identifier as the freshly written target. This is what keeps a rename
// from leaving an orphaned file behind. Unreadable entries are skipped, so
// at worst a stale duplicate survives until the next save.
func (s *Store) reconcile(id, target string) {
	names, err := s.listEntries()
	if err != nil {
		s.logger.Warn("reconciliation scan failed", "error", err)
		return
	}

	for _, name := range names {
		if name == target {
			continue
		}
		probed, err := s.probeID(name)
		if err != nil {
			continue
		}
		if probed == id {
			if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
				s.logger.Warn("failed to remove stale character file",
					"file", name, "error", err)
			}
			return
		}
	}
}

// GetByID scans the folder for the card with the given identifier.
// Returns ErrNotFound when no entry carries it.
func (s *Store) GetByID(id string) (*types.Character, error) {
	result, err := s.lockManager.executeWithResult(readOperation, func() (interface{}, error) {
		if !s.folderExists() {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}

		var match *types.Character
		err := s.withFolderLock(func() error {
			names, err := s.listEntries()
			if err != nil {
				return err
			}

			for _, name := range names {
				c, err := s.readCard(name)
				if err != nil {
					s.logger.Warn("skipping unreadable character file",
						"file", name, "error", err)
					continue
				}
				if c.Metadata.CharacterID == id {
					match = c
					return nil
				}
			}
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		})
		if err != nil {
			return nil, err
		}
		return match, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*types.Character), nil
}

// DeleteByID removes the first card file carrying the identifier. A
// missing card is a no-op, not an error.
func (s *Store) DeleteByID(id string) error {
	return s.lockManager.execute(writeOperation, func() error {
		if !s.folderExists() {
			return nil
		}

		return s.withFolderLock(func() error {
			names, err := s.listEntries()
			if err != nil {
				return err
			}

			for _, name := range names {
				probed, err := s.probeID(name)
				if err != nil {
					s.logger.Warn("skipping unreadable character file",
						"file", name, "error", err)
					continue
				}
				if probed == id {
					path := filepath.Join(s.dir, name)
					if err := os.Remove(path); err != nil {
						return fmt.Errorf("failed to delete %s: %w", path, err)
					}
					return nil
				}
			}
			return nil
		})
	})
}

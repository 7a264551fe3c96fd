package store

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Tiliavir/tt/internal/model"
)

// ErrStorage marks failures of the underlying log file (permissions, disk).
var ErrStorage = errors.New("storage error")

// Store is the append-only event log. Records are never rewritten by the
// tool; manual editing of the file is the only way to change history.
type Store struct {
	path   string
	sep    string
	logger zerolog.Logger
}

// New creates a Store for the given log file path and field separator.
func New(path, sep string, logger zerolog.Logger) *Store {
	return &Store{
		path:   path,
		sep:    sep,
		logger: logger.With().Str("component", "store").Logger(),
	}
}

// Path returns the log file location.
func (s *Store) Path() string {
	return s.path
}

// Append durably writes one newline-terminated record.
func (s *Store) Append(e model.Event) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("%w: opening %s: %w", ErrStorage, s.path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(e.Line(s.sep) + "\n"); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrStorage, s.path, err)
	}
	return nil
}

// ReadSince returns all records with timestamp >= cutoff in file order.
// A missing file yields an empty result. Blank lines are skipped; malformed
// lines are skipped with a warning rather than aborting the whole read.
func (s *Store) ReadSince(cutoff time.Time) ([]model.Event, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %w", ErrStorage, s.path, err)
	}
	defer f.Close()

	var events []model.Event
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		e, err := model.ParseLine(line, s.sep)
		if err != nil {
			s.logger.Warn().Err(err).Msg("skipping unreadable log line")
			continue
		}
		if !e.Time.Before(cutoff) {
			events = append(events, e)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrStorage, s.path, err)
	}
	return events, nil
}

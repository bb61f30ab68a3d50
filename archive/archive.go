// Package archive stores fetched transcript text as files, one per
// earnings call, for offline reading and grepping.
package archive

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/randalmurphal/capedge"
)

// ErrNotArchived indicates the transcript has no file in the store.
var ErrNotArchived = errors.New("transcript not archived")

// Store writes transcripts under a base directory. Safe for
// concurrent use; saving the same transcript twice overwrites.
type Store struct {
	baseDir string
	mu      sync.Mutex
}

// NewStore creates a store rooted at baseDir, creating it if needed.
func NewStore(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create archive dir: %w", err)
	}
	return &Store{baseDir: baseDir}, nil
}

// Filename returns the store filename for a transcript:
// TICKER_YYYY_QN.txt, falling back to the CIK for unlisted companies.
func Filename(t capedge.Transcript) string {
	symbol := t.Ticker
	if symbol == "" {
		symbol = "CIK" + t.CIK
	}
	return fmt.Sprintf("%s_%d_Q%d.txt", sanitize(symbol), t.Year, t.Quarter)
}

// Path returns the absolute path a transcript would be stored at.
func (s *Store) Path(t capedge.Transcript) string {
	return filepath.Join(s.baseDir, Filename(t))
}

// Save writes the transcript text with a metadata header and returns
// the file path.
func (s *Store) Save(t capedge.Transcript, text string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.Path(t)
	if err := os.WriteFile(path, []byte(header(t)+text), 0o644); err != nil {
		return "", fmt.Errorf("save transcript %s: %w", t.ID, err)
	}
	return path, nil
}

// Has reports whether a transcript is already archived.
func (s *Store) Has(t capedge.Transcript) bool {
	_, err := os.Stat(s.Path(t))
	return err == nil
}

// Load reads back an archived transcript, header included.
func (s *Store) Load(t capedge.Transcript) (string, error) {
	data, err := os.ReadFile(s.Path(t))
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("transcript %s: %w", t.ID, ErrNotArchived)
		}
		return "", err
	}
	return string(data), nil
}

// List returns the filenames of all archived transcripts, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("list archive: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

func header(t capedge.Transcript) string {
	date := t.Date
	if len(date) > 10 {
		date = date[:10]
	}
	return fmt.Sprintf("%s (%s)\n%s\nDate: %s\nQuarter: Q%d %d\n%s\n",
		t.CompanyName, t.Ticker, t.Title, date, t.Quarter, t.Year,
		strings.Repeat("=", 60))
}

// sanitize strips path separators and whitespace out of a filename
// component.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ' ', ':':
			return '-'
		}
		return r
	}, s)
}

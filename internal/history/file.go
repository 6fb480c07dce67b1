// internal/history/file.go
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"
)

// fileDocument is the on-disk JSON layout.
type fileDocument struct {
	Seen      []filePair `json:"seen"`
	Processed []string   `json:"processed"`
}

type filePair struct {
	Code  string `json:"code"`
	Brand string `json:"brand"`
}

// FileStore is the JSON-file history backend. All state lives in memory;
// Flush rewrites the whole file atomically through a temp file rename.
type FileStore struct {
	path      string
	log       zerolog.Logger
	seen      map[string]Pair
	processed map[string]struct{}
	dirty     bool
	coldStart bool
}

// OpenFile loads history from path. A missing file is a normal first run;
// an unreadable or corrupt file is logged and treated as a cold start
// rather than aborting the run.
func OpenFile(path string, log zerolog.Logger) (*FileStore, error) {
	s := &FileStore{
		path:      path,
		log:       log,
		seen:      make(map[string]Pair),
		processed: make(map[string]struct{}),
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s.coldStart = true
		return s, nil
	}
	if err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("history unreadable, starting cold")
		s.coldStart = true
		return s, nil
	}

	var doc fileDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("history corrupt, starting cold")
		s.coldStart = true
		return s, nil
	}

	for _, fp := range doc.Seen {
		p := Pair{Code: fp.Code, Brand: fp.Brand}
		s.seen[p.Key()] = p
	}
	for _, id := range doc.Processed {
		s.processed[id] = struct{}{}
	}
	return s, nil
}

// ColdStart reports whether the store began empty because the history file
// was missing or unreadable.
func (s *FileStore) ColdStart() bool {
	return s.coldStart
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Len returns the number of known coupon pairs.
func (s *FileStore) Len() int {
	return len(s.seen)
}

func (s *FileStore) IsDuplicate(p Pair) bool {
	_, ok := s.seen[p.Key()]
	return ok
}

func (s *FileStore) Commit(p Pair) {
	key := p.Key()
	if _, ok := s.seen[key]; ok {
		return
	}
	s.seen[key] = p
	s.dirty = true
}

func (s *FileStore) IsProcessed(sourceID string) bool {
	_, ok := s.processed[sourceID]
	return ok
}

func (s *FileStore) MarkProcessed(sourceID string) {
	if _, ok := s.processed[sourceID]; ok {
		return
	}
	s.processed[sourceID] = struct{}{}
	s.dirty = true
}

// Flush writes the full state to disk when anything changed since the last
// flush. The write goes to a temp file in the same directory followed by a
// rename, so a crash mid-write never corrupts the existing history.
func (s *FileStore) Flush() error {
	if !s.dirty {
		return nil
	}

	doc := fileDocument{
		Seen:      make([]filePair, 0, len(s.seen)),
		Processed: make([]string, 0, len(s.processed)),
	}
	for _, p := range s.seen {
		doc.Seen = append(doc.Seen, filePair{Code: p.Code, Brand: p.Brand})
	}
	for id := range s.processed {
		doc.Processed = append(doc.Processed, id)
	}
	sort.Slice(doc.Seen, func(i, j int) bool {
		if doc.Seen[i].Code != doc.Seen[j].Code {
			return doc.Seen[i].Code < doc.Seen[j].Code
		}
		return doc.Seen[i].Brand < doc.Seen[j].Brand
	})
	sort.Strings(doc.Processed)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating history directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".history-*.json")
	if err != nil {
		return fmt.Errorf("creating temp history file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing history: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing history: %w", err)
	}

	s.dirty = false
	return nil
}

func (s *FileStore) Close() error {
	return s.Flush()
}

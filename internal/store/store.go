// Package store implements file-backed persistence for records, one
// pretty-printed JSON file per record in the prompts directory.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/promptreflex-io/promptreflex/internal/config"
	"github.com/promptreflex-io/promptreflex/internal/models"
)

// FileExt is the extension of record files.
const FileExt = ".json"

// Store persists records in a single directory. The ID counter is
// instance state with process lifetime: it is not reconciled against
// files on disk, so a restarted process can regenerate an ID from an
// earlier run on the same date and overwrite that file on save.
type Store struct {
	dir     string
	now     func() time.Time
	counter map[string]int // date string -> last issued sequence number
}

// Option configures a Store.
type Option func(*Store)

// WithClock injects the time source used for ID generation. Tests use
// this to pin the date.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates a store over an explicit directory. The directory is
// created if absent.
func New(dir string, opts ...Option) (*Store, error) {
	s := &Store{
		dir:     dir,
		now:     time.Now,
		counter: make(map[string]int),
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := config.EnsureDir(s.dir); err != nil {
		return nil, fmt.Errorf("failed to create prompts directory %s: %w", s.dir, err)
	}
	return s, nil
}

// Open creates a store over the resolved prompts directory
// (environment override, settings.yaml, or the default under the home
// directory).
func Open(opts ...Option) (*Store, error) {
	dir, err := config.PromptsDir()
	if err != nil {
		return nil, err
	}
	return New(dir, opts...)
}

// Dir returns the storage directory.
func (s *Store) Dir() string {
	return s.dir
}

// GenerateID returns the next ID for the current date (per the store's
// clock), in the form YYYY-MM-DD-NNN. The per-date counter starts at 1
// and increments on every call, whether or not a record with the ID is
// ever saved.
func (s *Store) GenerateID() string {
	return s.GenerateIDFor(s.now())
}

// GenerateIDFor returns the next ID for an explicit date.
func (s *Store) GenerateIDFor(date time.Time) string {
	dateStr := date.Format(models.DateFormat)
	s.counter[dateStr]++
	return fmt.Sprintf("%s-%03d", dateStr, s.counter[dateStr])
}

// Today returns the current date string from the store's clock.
func (s *Store) Today() string {
	return s.now().Format(models.DateFormat)
}

func (s *Store) recordFile(id string) string {
	return filepath.Join(s.dir, id+FileExt)
}

// Save writes the record to <dir>/<id>.json, overwriting any existing
// file, and returns the written path.
func (s *Store) Save(rec *models.Record) (string, error) {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal record %s: %w", rec.ID, err)
	}
	path := s.recordFile(rec.ID)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write record file %s: %w", path, err)
	}
	return path, nil
}

// Load reads the record with the given ID. Returns a NotFoundError if
// no file exists, or a FormatError if the file cannot be parsed into a
// valid record.
func (s *Store) Load(id string) (*models.Record, error) {
	path := s.recordFile(id)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &models.NotFoundError{Kind: "prompt", Name: id}
		}
		return nil, fmt.Errorf("failed to read record file %s: %w", path, err)
	}
	return parseRecord(path, data)
}

// Update rewrites an existing record file. Unlike Save it fails with a
// NotFoundError when no file for the ID exists yet, distinguishing
// "modify existing" from "create".
func (s *Store) Update(rec *models.Record) (string, error) {
	if !config.FileExists(s.recordFile(rec.ID)) {
		return "", &models.NotFoundError{Kind: "prompt", Name: rec.ID}
	}
	return s.Save(rec)
}

// Filter narrows a List call. Nil score bounds are ignored; a record
// with no score is excluded whenever either bound is set.
type Filter struct {
	Tag      string
	MinScore *int
	MaxScore *int
}

func (f Filter) matches(rec *models.Record) bool {
	if f.Tag != "" && !containsTag(rec.Tags, f.Tag) {
		return false
	}
	if f.MinScore != nil && (rec.Score == nil || *rec.Score < *f.MinScore) {
		return false
	}
	if f.MaxScore != nil && (rec.Score == nil || *rec.Score > *f.MaxScore) {
		return false
	}
	return true
}

// List enumerates every record file, applies the filter, and returns
// the matches sorted by ID descending (most recent first; the ID format
// sorts lexicographically). Files that fail to parse are not fatal:
// their paths are returned so callers can surface a warning.
func (s *Store) List(filter Filter) ([]*models.Record, []string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to read prompts directory %s: %w", s.dir, err)
	}

	var records []*models.Record
	var skipped []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), FileExt) {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			skipped = append(skipped, path)
			continue
		}
		rec, err := parseRecord(path, data)
		if err != nil {
			skipped = append(skipped, path)
			continue
		}
		if filter.matches(rec) {
			records = append(records, rec)
		}
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].ID > records[j].ID
	})
	return records, skipped, nil
}

func parseRecord(path string, data []byte) (*models.Record, error) {
	var rec models.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, &models.FormatError{Path: path, Err: err}
	}
	if err := rec.Validate(); err != nil {
		return nil, &models.FormatError{Path: path, Err: err}
	}
	return &rec, nil
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

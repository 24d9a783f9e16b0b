// Package store owns the in-memory question database. The database
// is loaded once from a JSON document, cached as an immutable
// snapshot, and shared read-only for the life of the process.
// Reloads swap in a fresh snapshot atomically; a live snapshot is
// never mutated.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sync/atomic"

	"interview-prep/internal/domain"
	"interview-prep/internal/logger"

	"go.uber.org/zap"
)

// CompanyBucket maps an experience bracket to its ordered question
// sequence. Order is insertion order from the source document and
// carries no ranking.
type CompanyBucket map[domain.ExperienceBracket][]domain.Question

// Snapshot is one immutable, fully loaded view of the database.
type Snapshot struct {
	companies        map[string]CompanyBucket
	companyNames     []string
	categories       map[string][]string
	categoryNames    []string
	difficultyLevels map[string]string
	sources          map[string]string
}

func emptySnapshot() *Snapshot {
	return &Snapshot{
		companies:        map[string]CompanyBucket{},
		categories:       map[string][]string{},
		difficultyLevels: map[string]string{},
		sources:          map[string]string{},
	}
}

// Store loads and serves question database snapshots.
type Store struct {
	path string
	snap atomic.Pointer[Snapshot]
}

// New creates a store backed by the JSON document at path. The
// database is not read until Load is called.
func New(path string) *Store {
	return &Store{path: path}
}

// Load reads the database from disk. A load on an already-populated
// store is a no-op. On read or decode failure an empty snapshot is
// installed and the error is returned for logging; retrieval then
// degrades to "no matching company" instead of crashing.
func (s *Store) Load() error {
	if s.snap.Load() != nil {
		return nil
	}
	return s.Reload()
}

// Reload re-reads the database unconditionally and swaps the new
// snapshot in atomically. In-flight readers keep the snapshot they
// already hold.
func (s *Store) Reload() error {
	snap, err := readSnapshot(s.path)
	if err != nil {
		s.snap.Store(emptySnapshot())
		logger.Get().Warn("Question database unavailable, serving empty database",
			zap.String("path", s.path),
			zap.Error(err),
		)
		return domain.NewDatabaseUnavailableError(err)
	}
	s.snap.Store(snap)
	logger.Get().Info("Question database loaded",
		zap.String("path", s.path),
		zap.Int("companies", len(snap.companyNames)),
		zap.Int("categories", len(snap.categoryNames)),
	)
	return nil
}

func (s *Store) snapshot() *Snapshot {
	if snap := s.snap.Load(); snap != nil {
		return snap
	}
	return emptySnapshot()
}

// Companies returns all company names in document insertion order.
// The order is load-bearing: the matcher's substring tie-break picks
// the first candidate in iteration order.
func (s *Store) Companies() []string {
	return s.snapshot().companyNames
}

// Company returns the bucket mapping for one company by its exact
// database key.
func (s *Store) Company(name string) (CompanyBucket, bool) {
	bucket, ok := s.snapshot().companies[name]
	return bucket, ok
}

// Bucket returns the question sequence for a company and bracket, or
// an empty sequence if either is absent.
func (s *Store) Bucket(company string, bracket domain.ExperienceBracket) []domain.Question {
	return s.snapshot().companies[company][bracket]
}

// CategoryNames returns all category names in document insertion order.
func (s *Store) CategoryNames() []string {
	return s.snapshot().categoryNames
}

// Categories returns the category-to-topics mapping.
func (s *Store) Categories() map[string][]string {
	return s.snapshot().categories
}

// DifficultyLevels returns the difficulty level descriptions.
func (s *Store) DifficultyLevels() map[string]string {
	return s.snapshot().difficultyLevels
}

// Sources returns the question source descriptions.
func (s *Store) Sources() map[string]string {
	return s.snapshot().sources
}

// document mirrors the on-disk JSON shape. companies and categories
// stay raw so their key order can be recovered.
type document struct {
	Companies        json.RawMessage   `json:"companies"`
	Categories       json.RawMessage   `json:"categories"`
	DifficultyLevels map[string]string `json:"difficulty_levels"`
	Sources          map[string]string `json:"sources"`
}

func readSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question database: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode question database: %w", err)
	}

	snap := emptySnapshot()
	snap.difficultyLevels = doc.DifficultyLevels
	snap.sources = doc.Sources
	if snap.difficultyLevels == nil {
		snap.difficultyLevels = map[string]string{}
	}
	if snap.sources == nil {
		snap.sources = map[string]string{}
	}

	if len(doc.Companies) > 0 {
		err = decodeOrdered(doc.Companies, func(name string, dec *json.Decoder) error {
			var bucket CompanyBucket
			if err := dec.Decode(&bucket); err != nil {
				return fmt.Errorf("company %q: %w", name, err)
			}
			snap.companies[name] = bucket
			snap.companyNames = append(snap.companyNames, name)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("decode companies: %w", err)
		}
	}

	if len(doc.Categories) > 0 {
		err = decodeOrdered(doc.Categories, func(name string, dec *json.Decoder) error {
			var topics []string
			if err := dec.Decode(&topics); err != nil {
				return fmt.Errorf("category %q: %w", name, err)
			}
			snap.categories[name] = topics
			snap.categoryNames = append(snap.categoryNames, name)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("decode categories: %w", err)
		}
	}

	return snap, nil
}

// decodeOrdered walks a JSON object and hands each key to fn in
// document order, with the decoder positioned at the key's value. Go
// maps would lose the order, and the matcher needs it.
func decodeOrdered(raw json.RawMessage, fn func(key string, dec *json.Decoder) error) error {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", keyTok)
		}
		if err := fn(key, dec); err != nil {
			return err
		}
	}

	_, err = dec.Token() // closing brace
	return err
}

package store

import (
	"encoding/json"
	"log"
	"os"
	"sync"
	"time"

	"SiliconMeter/internal/model"
)

// Store persists the product catalog as a JSON document. The tracker is a
// single-writer batch job; the mutex only guards the daemon mode's
// overlapping-run edge.
type Store struct {
	mu   sync.Mutex
	path string
}

// New creates a Store backed by the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Load reads the catalog from disk. A missing or corrupt file yields a
// fresh empty catalog rather than an error; losing derived fields is
// recoverable, crashing the batch is not.
func (s *Store) Load() (*model.Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("[WARN] no catalog at %s, starting fresh", s.path)
			return &model.Catalog{}, nil
		}
		return nil, err
	}

	var cat model.Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		log.Printf("[WARN] corrupt catalog at %s, starting fresh: %v", s.path, err)
		return &model.Catalog{}, nil
	}
	return &cat, nil
}

// Save stamps the catalog and writes it to disk.
func (s *Store) Save(cat *model.Catalog) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cat.LastUpdated = time.Now()
	data, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

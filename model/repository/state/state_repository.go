// Package state owns the application snapshot: one JSON blob in a
// key-value table, loaded and replaced wholesale. All mutations are
// serialized behind a single mutex, one logical writer, per the
// snapshot-replacement model. Reads hand out decoded copies and need no
// synchronization beyond the cache.
package state

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"

	"equiprent.GO/core/cache"
	"equiprent.GO/model/entity"
)

const (
	snapshotKey = "snapshot"
	cacheKey    = "state:snapshot"
	cacheTTL    = 300 // seconds
)

type Store struct {
	db *gorm.DB
	mu sync.Mutex
}

// NewStore migrates the blob table and returns the store.
func NewStore(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&entity.StateBlob{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Load returns the current snapshot, seeding an empty one with default
// settings on first run.
func (s *Store) Load() (entity.AppData, error) {
	if v, ok := cache.GetInstance().Get(cacheKey); ok {
		if data, isData := v.(entity.AppData); isData {
			return data, nil
		}
	}

	var row entity.StateBlob
	err := s.db.Where("key = ?", snapshotKey).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		seed := entity.AppData{
			Items:           []entity.Item{},
			Rentals:         []entity.Rental{},
			Quotations:      []entity.Quotation{},
			ArchivedRentals: []entity.Rental{},
			Expenses:        []entity.Expense{},
			SystemSettings:  entity.DefaultSettings(),
		}
		if err := s.Save(seed); err != nil {
			return entity.AppData{}, err
		}
		return seed, nil
	}
	if err != nil {
		return entity.AppData{}, err
	}

	var data entity.AppData
	if err := json.Unmarshal(row.Value, &data); err != nil {
		return entity.AppData{}, err
	}
	cache.GetInstance().Set(cacheKey, data, cacheTTL, nil)
	return data, nil
}

// Save replaces the persisted snapshot.
func (s *Store) Save(data entity.AppData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	row := entity.StateBlob{Key: snapshotKey, Value: raw, UpdatedAt: time.Now()}
	if err := s.db.Save(&row).Error; err != nil {
		return err
	}
	cache.GetInstance().Set(cacheKey, data, cacheTTL, nil)
	return nil
}

// Mutate loads the snapshot, applies fn and persists the result, all under
// the writer lock. A rejected fn leaves the stored snapshot untouched.
func (s *Store) Mutate(fn func(entity.AppData) (entity.AppData, error)) (entity.AppData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.Load()
	if err != nil {
		return entity.AppData{}, err
	}
	next, err := fn(data)
	if err != nil {
		return entity.AppData{}, err
	}
	if err := s.Save(next); err != nil {
		return entity.AppData{}, err
	}
	return next, nil
}

// Export returns the raw snapshot JSON (for backups and the export
// command).
func (s *Store) Export() ([]byte, error) {
	data, err := s.Load()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

package database

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/chimd111/umsu-clubs/internal/models"
	"github.com/chimd111/umsu-clubs/internal/notify"
)

// StoreKey is the fixed slot the saved-events list persists under. The value
// is kept from the original site so an export/import of the list stays
// recognisable.
const StoreKey = "umsu.myEvents.v1"

// SavedSlot is one key-value row. The saved-events store uses a single row
// holding the whole list as a JSON array.
type SavedSlot struct {
	Key  string `gorm:"primaryKey"`
	Data string
}

// SavedEventStore is the single source of truth for the user's saved events.
// Every mutation re-reads, modifies, and re-writes the whole slot; the unit
// of atomicity is one full read-modify-write of the array. Corrupt or missing
// persisted data reads as an empty list, never as an error.
type SavedEventStore struct {
	db  *gorm.DB
	hub *notify.Hub
	mu  sync.Mutex // serialises read-modify-write cycles
}

// NewSavedEventStore wraps an initialised database and notification hub.
func NewSavedEventStore(db *gorm.DB, hub *notify.Hub) *SavedEventStore {
	return &SavedEventStore{db: db, hub: hub}
}

// ReadAll returns the current saved events in persisted order. A missing
// slot, a read failure, or undecodable data all degrade to an empty list.
func (s *SavedEventStore) ReadAll() []models.EventRecord {
	var slot SavedSlot
	err := s.db.First(&slot, "key = ?", StoreKey).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			zap.L().Warn("Reading saved events failed, treating store as empty", zap.Error(err))
		}
		return []models.EventRecord{}
	}

	var list []models.EventRecord
	if err := json.Unmarshal([]byte(slot.Data), &list); err != nil {
		zap.L().Warn("Saved events slot holds invalid JSON, treating store as empty", zap.Error(err))
		return []models.EventRecord{}
	}
	if list == nil {
		list = []models.EventRecord{}
	}
	return list
}

// Upsert normalises the record, replaces the first entry with the same id or
// appends, writes the whole list back, and returns the new list. Other open
// views are notified of the change.
func (s *SavedEventStore) Upsert(record models.EventRecord) []models.EventRecord {
	record = models.Normalize(record)

	s.mu.Lock()
	list := s.ReadAll()
	replaced := false
	for i := range list {
		if list[i].ID == record.ID {
			list[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		list = append(list, record)
	}
	s.write(list)
	s.mu.Unlock()

	s.hub.Broadcast(notify.Change{Key: StoreKey})
	return list
}

// Remove filters out every entry matching id and writes the list back.
// Removing an id that is not present is a no-op that still writes, so the
// operation is idempotent and never errors.
func (s *SavedEventStore) Remove(id string) []models.EventRecord {
	s.mu.Lock()
	list := s.ReadAll()
	filtered := make([]models.EventRecord, 0, len(list))
	for _, r := range list {
		if r.ID != id {
			filtered = append(filtered, r)
		}
	}
	s.write(filtered)
	s.mu.Unlock()

	s.hub.Broadcast(notify.Change{Key: StoreKey})
	return filtered
}

// OnExternalChange registers a view for change notifications. The caller
// must Unsubscribe the returned subscriber's ID when the view goes away.
func (s *SavedEventStore) OnExternalChange() *notify.Subscriber {
	return s.hub.Subscribe()
}

func (s *SavedEventStore) write(list []models.EventRecord) {
	data, err := json.Marshal(list)
	if err != nil {
		zap.L().Error("Encoding saved events failed, keeping previous state", zap.Error(err))
		return
	}
	if err := s.db.Save(&SavedSlot{Key: StoreKey, Data: string(data)}).Error; err != nil {
		zap.L().Error("Writing saved events failed", zap.Error(err))
	}
}

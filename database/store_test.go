package database

import (
	"path/filepath"
	"testing"

	"github.com/chimd111/umsu-clubs/internal/models"
	"github.com/chimd111/umsu-clubs/internal/notify"
)

func openTestStore(t *testing.T) *SavedEventStore {
	t.Helper()
	db := Init(filepath.Join(t.TempDir(), "test.db"))
	hub := notify.NewHub()
	t.Cleanup(hub.Close)
	return NewSavedEventStore(db, hub)
}

func TestReadAllEmptyStore(t *testing.T) {
	store := openTestStore(t)
	list := store.ReadAll()
	if list == nil {
		t.Fatal("ReadAll returned nil, want empty slice")
	}
	if len(list) != 0 {
		t.Fatalf("fresh store holds %d events", len(list))
	}
}

func TestUpsertRoundTrip(t *testing.T) {
	store := openTestStore(t)
	record := models.EventRecord{
		ID:       "event-hack-night",
		Title:    "Hack Night",
		Datetime: "Tue 4 Feb • 18:00–22:00",
		Location: "E2 Atrium",
		Club:     "Robotics Club",
		URL:      "event-hack-night.html",
		Category: models.CategoryTechnology,
		Date:     "2024-02-04",
	}
	store.Upsert(record)

	got := store.ReadAll()
	if len(got) != 1 {
		t.Fatalf("got %d events, want 1", len(got))
	}
	if got[0] != record {
		t.Errorf("round trip changed record:\n got %+v\nwant %+v", got[0], record)
	}
}

func TestUpsertReplacesById(t *testing.T) {
	store := openTestStore(t)
	store.Upsert(models.EventRecord{ID: "a", Title: "First"})
	store.Upsert(models.EventRecord{ID: "b", Title: "Other"})
	list := store.Upsert(models.EventRecord{ID: "a", Title: "Renamed"})

	if len(list) != 2 {
		t.Fatalf("got %d events, want 2", len(list))
	}
	// The replaced entry keeps its position.
	if list[0].ID != "a" || list[0].Title != "Renamed" {
		t.Errorf("entry 0 = %+v, want id a title Renamed", list[0])
	}
	if list[1].ID != "b" {
		t.Errorf("entry 1 = %+v, want id b", list[1])
	}
}

// Saving a record twice is the same as saving it once.
func TestUpsertIdempotent(t *testing.T) {
	store := openTestStore(t)
	record := models.EventRecord{ID: "a", Title: "Event"}
	store.Upsert(record)
	list := store.Upsert(record)

	if len(list) != 1 {
		t.Fatalf("got %d events after double save, want 1", len(list))
	}
}

// Upsert fills category and date from the page name and display datetime
// before persisting.
func TestUpsertNormalizes(t *testing.T) {
	store := openTestStore(t)
	store.Upsert(models.EventRecord{
		ID:       "event-hack-night",
		Title:    "Hack Night",
		Datetime: "Tue 4 Feb • 18:00–22:00",
		URL:      "event-hack-night.html",
	})

	got := store.ReadAll()
	if len(got) != 1 {
		t.Fatalf("got %d events, want 1", len(got))
	}
	if got[0].Category != models.CategoryTechnology {
		t.Errorf("persisted category = %q, want %q", got[0].Category, models.CategoryTechnology)
	}
	if got[0].Date != "2024-02-04" {
		t.Errorf("persisted date = %q, want 2024-02-04", got[0].Date)
	}
}

func TestRemoveFromEmptyStore(t *testing.T) {
	store := openTestStore(t)
	list := store.Remove("anything")
	if len(list) != 0 {
		t.Fatalf("remove from empty store returned %+v", list)
	}
}

func TestRemove(t *testing.T) {
	store := openTestStore(t)
	store.Upsert(models.EventRecord{ID: "a"})
	store.Upsert(models.EventRecord{ID: "b"})

	list := store.Remove("a")
	if len(list) != 1 || list[0].ID != "b" {
		t.Fatalf("after remove: %+v", list)
	}

	// Removing an absent id is a no-op, not an error.
	list = store.Remove("a")
	if len(list) != 1 {
		t.Fatalf("second remove changed list: %+v", list)
	}
	list = store.Remove("never-saved")
	if len(list) != 1 {
		t.Fatalf("removing unknown id changed list: %+v", list)
	}
}

// A slot holding something other than a JSON event array reads as an empty
// list, and the next write repairs it.
func TestCorruptSlotReadsEmpty(t *testing.T) {
	store := openTestStore(t)
	store.Upsert(models.EventRecord{ID: "a"})

	err := store.db.Save(&SavedSlot{Key: StoreKey, Data: "{not json"}).Error
	if err != nil {
		t.Fatalf("corrupting slot: %v", err)
	}

	list := store.ReadAll()
	if len(list) != 0 {
		t.Fatalf("corrupt slot read as %+v, want empty", list)
	}

	list = store.Upsert(models.EventRecord{ID: "b"})
	if len(list) != 1 || list[0].ID != "b" {
		t.Fatalf("write after corruption: %+v", list)
	}
	if got := store.ReadAll(); len(got) != 1 {
		t.Fatalf("slot not repaired: %+v", got)
	}
}

func TestMutationsNotifySubscribers(t *testing.T) {
	store := openTestStore(t)
	sub := store.OnExternalChange()

	store.Upsert(models.EventRecord{ID: "a"})
	select {
	case c := <-sub.C:
		if c.Key != StoreKey {
			t.Errorf("notified key %q, want %q", c.Key, StoreKey)
		}
	default:
		t.Error("no notification after Upsert")
	}

	store.Remove("a")
	select {
	case <-sub.C:
	default:
		t.Error("no notification after Remove")
	}
}

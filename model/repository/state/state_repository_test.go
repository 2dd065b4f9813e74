package state

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"equiprent.GO/core/cache"
	"equiprent.GO/model/entity"
)

// The snapshot cache is process-wide; drop it so each test reads its own
// database file.
func newTestStore(t *testing.T, path string) *Store {
	t.Helper()
	cache.GetInstance().Delete(cacheKey)
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	st, err := NewStore(db)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return st
}

func TestLoad_SeedsDefaultsOnFirstRun(t *testing.T) {
	st := newTestStore(t, filepath.Join(t.TempDir(), "state.db"))
	data, err := st.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if data.SystemSettings.Currency != entity.CurrencySAR {
		t.Errorf("currency = %s, want SAR", data.SystemSettings.Currency)
	}
	if data.SystemSettings.RentalSystem != entity.RentalWeekly {
		t.Errorf("system = %s, want weekly", data.SystemSettings.RentalSystem)
	}
	if data.SystemSettings.NextContractNumber != 1001 {
		t.Errorf("counter = %d, want 1001", data.SystemSettings.NextContractNumber)
	}
	if data.Items == nil || data.Rentals == nil || data.Quotations == nil {
		t.Error("collections should be seeded empty, not nil")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	st := newTestStore(t, path)

	data, err := st.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	data.Items = append(data.Items, entity.Item{ID: "mixer", Name: "Concrete Mixer", RatePerUnit: 300, AvailableQty: 4})
	data.SystemSettings.NextContractNumber = 1100
	if err := st.Save(data); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Fresh store over the same file, cache dropped: forces a DB read.
	st2 := newTestStore(t, path)
	got, err := st2.Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(got.Items) != 1 || got.Items[0].Name != "Concrete Mixer" {
		t.Errorf("items = %+v, want the saved mixer", got.Items)
	}
	if got.SystemSettings.NextContractNumber != 1100 {
		t.Errorf("counter = %d, want 1100", got.SystemSettings.NextContractNumber)
	}
}

func TestMutate_RejectedFnLeavesStateUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	st := newTestStore(t, path)

	boom := errors.New("boom")
	_, err := st.Mutate(func(data entity.AppData) (entity.AppData, error) {
		data.SystemSettings.NextContractNumber = 9999
		return data, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}

	st2 := newTestStore(t, path)
	got, err := st2.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.SystemSettings.NextContractNumber != 1001 {
		t.Errorf("counter = %d, want 1001 (rejection must not persist)", got.SystemSettings.NextContractNumber)
	}
}

func TestMutate_PersistsResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	st := newTestStore(t, path)

	out, err := st.Mutate(func(data entity.AppData) (entity.AppData, error) {
		data.Expenses = append(data.Expenses, entity.Expense{ID: "e1", Description: "Crane transport", Amount: 750})
		return data, nil
	})
	if err != nil {
		t.Fatalf("Mutate: %v", err)
	}
	if len(out.Expenses) != 1 {
		t.Fatalf("returned expenses = %d, want 1", len(out.Expenses))
	}

	st2 := newTestStore(t, path)
	got, err := st2.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Expenses) != 1 || got.Expenses[0].Amount != 750 {
		t.Errorf("expenses = %+v, want the crane transport entry", got.Expenses)
	}
}

func TestExport_ValidJSON(t *testing.T) {
	st := newTestStore(t, filepath.Join(t.TempDir(), "state.db"))
	raw, err := st.Export()
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	var data entity.AppData
	if err := json.Unmarshal(raw, &data); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if data.SystemSettings.NextContractNumber != 1001 {
		t.Errorf("counter = %d, want 1001", data.SystemSettings.NextContractNumber)
	}
}

package store_test

import (
	"path/filepath"
	"testing"

	"tradelens/internal/model"
	"tradelens/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.New(filepath.Join(t.TempDir(), "snapshots.db"))
	if err != nil {
		t.Fatalf("store.New failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestYearRecordsRoundtrip(t *testing.T) {
	s := newTestStore(t)

	entries := []model.RawEntry{
		{Name: "India", Imports: 1000, Exports: 200},
		{Name: "China", Imports: 500, Exports: 0},
		{Name: "USA", Imports: 0, Exports: 50},
	}
	if err := s.SaveYearRecords(model.ViewCountry, "2081/082", entries); err != nil {
		t.Fatalf("SaveYearRecords failed: %v", err)
	}

	got, ok, err := s.YearRecords(model.ViewCountry, "2081/082")
	if err != nil {
		t.Fatalf("YearRecords failed: %v", err)
	}
	if !ok {
		t.Fatalf("snapshot should exist")
	}
	if len(got) != len(entries) {
		t.Fatalf("got %d entries, want %d", len(got), len(entries))
	}
	// Sheet order survives the roundtrip.
	for i := range entries {
		if got[i] != entries[i] {
			t.Fatalf("entry %d = %+v, want %+v", i, got[i], entries[i])
		}
	}
}

func TestYearRecordsMissing(t *testing.T) {
	s := newTestStore(t)

	_, ok, err := s.YearRecords(model.ViewCountry, "2081/082")
	if err != nil {
		t.Fatalf("YearRecords failed: %v", err)
	}
	if ok {
		t.Fatalf("no snapshot should be found")
	}
}

func TestSaveYearRecordsReplaces(t *testing.T) {
	s := newTestStore(t)

	first := []model.RawEntry{{Name: "India", Imports: 1}, {Name: "China", Imports: 2}}
	if err := s.SaveYearRecords(model.ViewProduct, "2080/081", first); err != nil {
		t.Fatalf("SaveYearRecords failed: %v", err)
	}

	second := []model.RawEntry{{Name: "Nepal", Exports: 3}}
	if err := s.SaveYearRecords(model.ViewProduct, "2080/081", second); err != nil {
		t.Fatalf("second SaveYearRecords failed: %v", err)
	}

	got, ok, err := s.YearRecords(model.ViewProduct, "2080/081")
	if err != nil || !ok {
		t.Fatalf("YearRecords: ok=%v err=%v", ok, err)
	}
	if len(got) != 1 || got[0].Name != "Nepal" {
		t.Fatalf("snapshot not replaced: %+v", got)
	}
}

func TestYearListRoundtrip(t *testing.T) {
	s := newTestStore(t)

	if _, ok := s.YearList(model.ViewOffice); ok {
		t.Fatalf("year list should start empty")
	}

	years := []string{"2079/080", "2080/081", "2081/082"}
	if err := s.SetYearList(model.ViewOffice, years); err != nil {
		t.Fatalf("SetYearList failed: %v", err)
	}

	got, ok := s.YearList(model.ViewOffice)
	if !ok {
		t.Fatalf("year list should exist")
	}
	if len(got) != 3 || got[0] != "2079/080" || got[2] != "2081/082" {
		t.Fatalf("year list = %v", got)
	}
}

func TestClearView(t *testing.T) {
	s := newTestStore(t)

	entries := []model.RawEntry{{Name: "India", Imports: 1}}
	if err := s.SaveYearRecords(model.ViewCountry, "2081/082", entries); err != nil {
		t.Fatalf("SaveYearRecords failed: %v", err)
	}
	if err := s.ClearView(model.ViewCountry); err != nil {
		t.Fatalf("ClearView failed: %v", err)
	}

	_, ok, err := s.YearRecords(model.ViewCountry, "2081/082")
	if err != nil {
		t.Fatalf("YearRecords failed: %v", err)
	}
	if ok {
		t.Fatalf("records should be gone after ClearView")
	}
}

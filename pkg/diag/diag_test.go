package diag

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSinkReportAndSort(t *testing.T) {
	s := NewSink()
	s.Report(UndeclaredIdentifier, Location{Line: 5, Column: 2}, "foo")
	s.Report(TypeMismatch, Location{Line: 1, Column: 1}, "int", "string")

	recs := s.Diagnostics()
	if len(recs) != 2 {
		t.Fatalf("got %d diagnostics, want 2", len(recs))
	}
	if recs[0].Code != TypeMismatch {
		t.Errorf("expected sort by location first, got %v then %v", recs[0].Code, recs[1].Code)
	}
	if !s.HasErrors() {
		t.Error("HasErrors should be true after Report")
	}
}

func TestSaveLoadReport(t *testing.T) {
	s := NewSink()
	s.Report(DivisionByZero, Location{File: "t.sv", Line: 3, Column: 4}, 8)

	dir := t.TempDir()
	path := filepath.Join(dir, "report.gob")
	if err := SaveReport(path, s); err != nil {
		t.Fatalf("SaveReport: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("report file missing: %v", err)
	}
	loaded, err := LoadReport(path)
	if err != nil {
		t.Fatalf("LoadReport: %v", err)
	}
	if len(loaded.Diagnostics) != 1 || loaded.Diagnostics[0].Code != DivisionByZero {
		t.Errorf("round trip mismatch: %+v", loaded.Diagnostics)
	}
}

package kirabuku

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFilePersister_SeedsOnFirstLoad(t *testing.T) {
	p := FilePersister{Path: filepath.Join(t.TempDir(), "kirabuku.json")}

	s, err := p.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(s.members) != 3 {
		t.Fatalf("seed store has %d members, want 3", len(s.members))
	}
	if s.members[0].Name != "Ahmad bin Zulkifli" || s.members[2].MemberNumber != "3" {
		t.Errorf("unexpected seed members: %v", s.members)
	}
	// Seeding is in-memory only; the file appears on the first save.
	if _, err := os.Stat(p.Path); !os.IsNotExist(err) {
		t.Errorf("Load created %s", p.Path)
	}
}

func TestFilePersister_RoundTrip(t *testing.T) {
	p := FilePersister{Path: filepath.Join(t.TempDir(), "data", "kirabuku.json")}

	e := newTestEngine()
	addTestMember(e.store, "M1", "Ahmad", "1", "2023-01-15")
	if _, err := e.TogglePayment("M1", 4, 2024); err != nil {
		t.Fatalf("TogglePayment: %v", err)
	}

	if err := p.Save(e.store); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := p.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.members) != 1 || len(got.payments) != 1 || len(got.transactions) != 1 {
		t.Fatalf("loaded %d/%d/%d records", len(got.members), len(got.payments), len(got.transactions))
	}
	if got.PaymentStatus("M1", 4, 2024) != Paid {
		t.Error("paid month lost in round trip")
	}

	// No temp file may survive a save.
	entries, err := os.ReadDir(filepath.Dir(p.Path))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("data dir holds %d files, want just the blob", len(entries))
	}
}

func TestFilePersister_LoadRejectsCorruptFile(t *testing.T) {
	p := FilePersister{Path: filepath.Join(t.TempDir(), "kirabuku.json")}
	if err := os.WriteFile(p.Path, []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Load(); err == nil {
		t.Error("Load accepted a corrupt file")
	}
}

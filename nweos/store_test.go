package nweos_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/atlaschan0010/obsidian-plugin-nweos/nweos"
	"github.com/atlaschan0010/obsidian-plugin-nweos/testutil"
	"github.com/atlaschan0010/obsidian-plugin-nweos/types"
)

// ignoreLastUpdated masks the field Save refreshes on every write.
var ignoreLastUpdated = cmpopts.IgnoreFields(types.Metadata{}, "LastUpdated")

func TestStoreSaveAndGetByID(t *testing.T) {
	store := testutil.TempStore(t)
	c := testutil.SampleCharacter()

	if err := store.Save(c); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	got, err := store.GetByID(c.Metadata.CharacterID)
	if err != nil {
		t.Fatalf("GetByID() error: %v", err)
	}
	if got.Metadata.CharacterID != c.Metadata.CharacterID {
		t.Errorf("identifier = %q, want %q", got.Metadata.CharacterID, c.Metadata.CharacterID)
	}
	if diff := cmp.Diff(c, got, ignoreLastUpdated); diff != "" {
		t.Errorf("persisted card differs (-want +got):\n%s", diff)
	}
}

func TestStoreSaveRefreshesLastUpdated(t *testing.T) {
	store := testutil.TempStore(t)
	c := testutil.SampleCharacter()
	created := c.Metadata.CreatedAt

	if err := store.Save(c); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	if c.Metadata.LastUpdated == "" {
		t.Error("last_updated not stamped on save")
	}
	if c.Metadata.CreatedAt != created {
		t.Errorf("created_at changed on save: %q -> %q", created, c.Metadata.CreatedAt)
	}
}

func TestStoreGetByIDNotFound(t *testing.T) {
	store := testutil.TempStore(t)

	_, err := store.GetByID("missing-0000000")
	if !errors.Is(err, nweos.ErrNotFound) {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}

	// Same result once the folder exists.
	if err := store.Save(testutil.SampleCharacter()); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	_, err = store.GetByID("missing-0000000")
	if !errors.Is(err, nweos.ErrNotFound) {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
}

func TestStoreRenameReconciliation(t *testing.T) {
	// Saving a renamed card must leave exactly one file for the
	// identifier, at the new derived path.
	store := testutil.TempStore(t)
	c := testutil.SampleCharacter()
	c.Metadata.CharacterName = "Alice"
	c.Metadata.WorkName = "Sky"

	if err := store.Save(c); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	oldPath := filepath.Join(store.Dir(), "Alice_Sky.json")
	if _, err := os.Stat(oldPath); err != nil {
		t.Fatalf("expected %s to exist: %v", oldPath, err)
	}

	c.Metadata.CharacterName = "Alys"
	if err := store.Save(c); err != nil {
		t.Fatalf("Save() after rename error: %v", err)
	}

	newPath := filepath.Join(store.Dir(), "Alys_Sky.json")
	if _, err := os.Stat(newPath); err != nil {
		t.Errorf("expected %s to exist: %v", newPath, err)
	}
	if _, err := os.Stat(oldPath); !os.IsNotExist(err) {
		t.Errorf("stale file %s still exists", oldPath)
	}

	cards, err := store.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error: %v", err)
	}
	matches := 0
	for _, card := range cards {
		if card.Metadata.CharacterID == c.Metadata.CharacterID {
			matches++
		}
	}
	if matches != 1 {
		t.Errorf("found %d files for identifier, want 1", matches)
	}
}

func TestStoreSaveSamePathTwice(t *testing.T) {
	store := testutil.TempStore(t)
	c := testutil.SampleCharacter()

	if err := store.Save(c); err != nil {
		t.Fatalf("first Save() error: %v", err)
	}
	c.Metadata.Notes = "second draft"
	if err := store.Save(c); err != nil {
		t.Fatalf("second Save() error: %v", err)
	}

	cards, err := store.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error: %v", err)
	}
	if len(cards) != 1 {
		t.Fatalf("LoadAll() returned %d cards, want 1", len(cards))
	}
	if cards[0].Metadata.Notes != "second draft" {
		t.Errorf("notes = %q, want the overwritten value", cards[0].Metadata.Notes)
	}
}

func TestStoreDeleteByID(t *testing.T) {
	// Scenario: save "Alice"/"Sky", expect the derived file, delete by
	// identifier, expect the file gone and LoadAll to not include it.
	store := testutil.TempStore(t)
	c := testutil.SampleCharacter()
	c.Metadata.CharacterName = "Alice"
	c.Metadata.WorkName = "Sky"

	if err := store.Save(c); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	path := filepath.Join(store.Dir(), "Alice_Sky.json")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected %s to exist: %v", path, err)
	}

	if err := store.DeleteByID(c.Metadata.CharacterID); err != nil {
		t.Fatalf("DeleteByID() error: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("file %s still exists after delete", path)
	}

	cards, err := store.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error: %v", err)
	}
	for _, card := range cards {
		if card.Metadata.CharacterID == c.Metadata.CharacterID {
			t.Errorf("deleted card still returned by LoadAll")
		}
	}
}

func TestStoreDeleteByIDMissingIsNoop(t *testing.T) {
	store := testutil.TempStore(t)
	if err := store.DeleteByID("missing-0000000"); err != nil {
		t.Errorf("DeleteByID() on empty store error: %v", err)
	}

	if err := store.Save(testutil.SampleCharacter()); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if err := store.DeleteByID("missing-0000000"); err != nil {
		t.Errorf("DeleteByID() for unknown id error: %v", err)
	}
}

func TestStoreLoadAllSkipsUnreadableEntries(t *testing.T) {
	store := testutil.TempStore(t)
	if err := store.Save(testutil.SampleCharacter()); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// A malformed file and a wrong-shaped file sit next to a good card.
	bad := filepath.Join(store.Dir(), "broken.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	wrongShape := filepath.Join(store.Dir(), "note.json")
	if err := os.WriteFile(wrongShape, []byte(`{"title":"a note"}`), 0644); err != nil {
		t.Fatal(err)
	}

	cards, err := store.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error: %v", err)
	}
	if len(cards) != 1 {
		t.Errorf("LoadAll() returned %d cards, want 1", len(cards))
	}
}

func TestStoreLoadAllOrderIsStable(t *testing.T) {
	store := testutil.TempStore(t)

	for _, name := range []string{"Cara", "Alice", "Bea"} {
		c := nweos.New(nweos.Seed{Name: name})
		if err := store.Save(c); err != nil {
			t.Fatalf("Save(%s) error: %v", name, err)
		}
	}

	cards, err := store.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error: %v", err)
	}
	var got []string
	for _, c := range cards {
		got = append(got, c.Metadata.CharacterName)
	}
	want := []string{"Alice", "Bea", "Cara"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("load order (-want +got):\n%s", diff)
	}
}

func TestStoreLoadAllMissingFolder(t *testing.T) {
	store := testutil.TempStore(t)

	cards, err := store.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() on missing folder error: %v", err)
	}
	if len(cards) != 0 {
		t.Errorf("LoadAll() returned %d cards, want 0", len(cards))
	}
}

func TestNewStoreRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  func(t *testing.T) types.Config
	}{
		{
			name: "empty folder path",
			cfg: func(t *testing.T) types.Config {
				return types.Config{}
			},
		},
		{
			name: "folder path is a file",
			cfg: func(t *testing.T) types.Config {
				path := filepath.Join(t.TempDir(), "occupied")
				if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
					t.Fatal(err)
				}
				return types.Config{FolderPath: path}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := nweos.NewStore(tt.cfg(t)); err == nil {
				t.Error("NewStore() accepted an invalid config")
			}
		})
	}
}

package archive

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"hipchat2mattermost/internal/shared"
	helpers "hipchat2mattermost/internal/testing"
)

func fixture(t *testing.T) *helpers.ArchiveFixture {
	t.Helper()
	return helpers.NewArchiveFixture().
		Add("rooms.json", []byte(`[]`)).
		Add("./users.json", []byte(`[{"User":{}}]`)).
		Add("files/img/emoticons/1/smile.png", []byte("png-bytes"))
}

func TestOpen(t *testing.T) {
	t.Run("plain tar", func(t *testing.T) {
		a, err := Open(fixture(t).WriteTar(t))
		if err != nil {
			t.Fatalf("failed to open plain tar: %v", err)
		}
		defer a.Close()

		if !a.Has("rooms.json") {
			t.Error("expected rooms.json to be indexed")
		}
	})

	t.Run("gzip tar", func(t *testing.T) {
		a, err := Open(fixture(t).WriteTarGz(t))
		if err != nil {
			t.Fatalf("failed to open tar.gz: %v", err)
		}
		defer a.Close()

		data, err := a.ReadEntry("rooms.json")
		if err != nil {
			t.Fatalf("failed to read entry from tar.gz: %v", err)
		}
		if string(data) != `[]` {
			t.Errorf("unexpected entry contents %q", data)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Open(filepath.Join(t.TempDir(), "nope.tar")); !errors.Is(err, shared.ErrArchiveOpen) {
			t.Errorf("expected ErrArchiveOpen, got %v", err)
		}
	})

	t.Run("not a tar", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "garbage.tar")
		if err := os.WriteFile(path, []byte("this is not a tar archive at all"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Open(path); !errors.Is(err, shared.ErrArchiveOpen) {
			t.Errorf("expected ErrArchiveOpen, got %v", err)
		}
	})
}

func TestReadEntry(t *testing.T) {
	a, err := Open(fixture(t).WriteTar(t))
	if err != nil {
		t.Fatalf("failed to open fixture: %v", err)
	}
	defer a.Close()

	t.Run("reads bytes", func(t *testing.T) {
		data, err := a.ReadEntry("files/img/emoticons/1/smile.png")
		if err != nil {
			t.Fatalf("failed to read entry: %v", err)
		}
		if string(data) != "png-bytes" {
			t.Errorf("unexpected contents %q", data)
		}
	})

	t.Run("normalizes leading ./", func(t *testing.T) {
		data, err := a.ReadEntry("users.json")
		if err != nil {
			t.Fatalf("failed to read ./users.json as users.json: %v", err)
		}
		if string(data) != `[{"User":{}}]` {
			t.Errorf("unexpected contents %q", data)
		}
	})

	t.Run("repeated reads", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			if _, err := a.ReadEntry("rooms.json"); err != nil {
				t.Fatalf("read %d failed: %v", i, err)
			}
		}
	})

	t.Run("missing entry", func(t *testing.T) {
		if _, err := a.ReadEntry("emoticons.json"); !errors.Is(err, shared.ErrEntryNotFound) {
			t.Errorf("expected ErrEntryNotFound, got %v", err)
		}
	})
}

func TestReadEntry_LastOccurrenceWins(t *testing.T) {
	path := helpers.NewArchiveFixture().
		Add("rooms.json", []byte(`old`)).
		Add("rooms.json", []byte(`new`)).
		WriteTar(t)

	a, err := Open(path)
	if err != nil {
		t.Fatalf("failed to open fixture: %v", err)
	}
	defer a.Close()

	data, err := a.ReadEntry("rooms.json")
	if err != nil {
		t.Fatalf("failed to read entry: %v", err)
	}
	if string(data) != "new" {
		t.Errorf("expected the appended entry to win, got %q", data)
	}
}

func TestExtractTo(t *testing.T) {
	a, err := Open(fixture(t).WriteTar(t))
	if err != nil {
		t.Fatalf("failed to open fixture: %v", err)
	}
	defer a.Close()

	t.Run("copies raw bytes", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "nested", "dir", "smile.png")
		if err := a.ExtractTo("files/img/emoticons/1/smile.png", dest); err != nil {
			t.Fatalf("extract failed: %v", err)
		}
		if got := helpers.MustReadFile(t, dest); got != "png-bytes" {
			t.Errorf("unexpected extracted contents %q", got)
		}
	})

	t.Run("missing entry", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "out.bin")
		if err := a.ExtractTo("missing.bin", dest); !errors.Is(err, shared.ErrEntryNotFound) {
			t.Errorf("expected ErrEntryNotFound, got %v", err)
		}
	})
}

// package testing contains shared testing utilities
package testing

import (
	"archive/tar"
	"compress/gzip"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// ArchiveFixture assembles a synthetic HipChat export tar for tests.
type ArchiveFixture struct {
	entries []fixtureEntry
}

type fixtureEntry struct {
	name string
	data []byte
}

func NewArchiveFixture() *ArchiveFixture {
	return &ArchiveFixture{}
}

// Add appends a raw entry. Returns the fixture for chaining.
func (f *ArchiveFixture) Add(name string, data []byte) *ArchiveFixture {
	f.entries = append(f.entries, fixtureEntry{name: name, data: data})
	return f
}

// AddJSON marshals v and appends it as an entry.
func (f *ArchiveFixture) AddJSON(t *testing.T, name string, v any) *ArchiveFixture {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal fixture entry %s: %v", name, err)
	}
	return f.Add(name, data)
}

// WriteTar writes the fixture as a plain tar file in a temp dir and returns its path.
func (f *ArchiveFixture) WriteTar(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.tar")
	out, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create fixture archive: %v", err)
	}
	defer out.Close()

	tw := tar.NewWriter(out)
	f.writeEntries(t, tw)
	if err := tw.Close(); err != nil {
		t.Fatalf("failed to finish fixture archive: %v", err)
	}
	return path
}

// WriteTarGz writes the fixture as a gzip-compressed tar file and returns its path.
func (f *ArchiveFixture) WriteTarGz(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.tar.gz")
	out, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create fixture archive: %v", err)
	}
	defer out.Close()

	gz := gzip.NewWriter(out)
	tw := tar.NewWriter(gz)
	f.writeEntries(t, tw)
	if err := tw.Close(); err != nil {
		t.Fatalf("failed to finish fixture archive: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("failed to finish gzip stream: %v", err)
	}
	return path
}

func (f *ArchiveFixture) writeEntries(t *testing.T, tw *tar.Writer) {
	t.Helper()
	for _, e := range f.entries {
		hdr := &tar.Header{
			Name: e.name,
			Mode: 0644,
			Size: int64(len(e.data)),
		}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatalf("failed to write fixture header %s: %v", e.name, err)
		}
		if _, err := tw.Write(e.data); err != nil {
			t.Fatalf("failed to write fixture entry %s: %v", e.name, err)
		}
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func AssertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		t.Errorf("Directory does not exist: %s", path)
		return
	}
	if !info.IsDir() {
		t.Errorf("Path is not a directory: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

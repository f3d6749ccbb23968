// package archive provides read access to HipChat export archives.
//
// An export is a tar archive, optionally gzip-compressed, holding JSON
// descriptors (rooms.json, users.json, emoticons.json, per-room and per-user
// histories) alongside the media files they reference. The archive is opened
// once and held for the whole run; entries are addressed by name.
package archive

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"hipchat2mattermost/internal/shared"
)

// Archive is an open export archive with an index of its entry names.
// Duplicate names follow tar semantics: the last occurrence wins.
type Archive struct {
	path       string
	file       *os.File
	compressed bool
	names      map[string]int // entry name → occurrence count
}

// Open opens the archive at path and scans it once to index entry names.
// Plain and gzip-compressed tar files are both accepted; anything else
// fails with [shared.ErrArchiveOpen].
func Open(path string) (*Archive, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrArchiveOpen, err)
	}

	magic := make([]byte, 2)
	if _, err := io.ReadFull(f, magic); err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %s: %v", shared.ErrArchiveOpen, path, err)
	}

	a := &Archive{
		path:       path,
		file:       f,
		compressed: magic[0] == 0x1f && magic[1] == 0x8b,
		names:      map[string]int{},
	}

	tr, err := a.reset()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %s: %v", shared.ErrArchiveOpen, path, err)
	}
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("%w: %s: %v", shared.ErrArchiveOpen, path, err)
		}
		if hdr.Typeflag == tar.TypeReg {
			a.names[normalize(hdr.Name)]++
		}
	}

	return a, nil
}

// Close releases the underlying file handle.
func (a *Archive) Close() error {
	return a.file.Close()
}

// Path returns the filesystem path the archive was opened from.
func (a *Archive) Path() string {
	return a.path
}

// Has reports whether the archive contains a regular entry with the given name.
func (a *Archive) Has(name string) bool {
	return a.names[normalize(name)] > 0
}

// ReadEntry returns the full contents of the named entry.
// A missing entry fails with [shared.ErrEntryNotFound].
func (a *Archive) ReadEntry(name string) ([]byte, error) {
	tr, err := a.seek(name)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(tr)
	if err != nil {
		return nil, fmt.Errorf("failed to read archive entry %s: %w", name, err)
	}
	return data, nil
}

// ExtractTo streams the named entry into a file at destPath, creating parent
// directories as needed. Existing files are overwritten.
func (a *Archive) ExtractTo(name, destPath string) error {
	tr, err := a.seek(name)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", destPath, err)
	}

	dst, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", destPath, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, tr); err != nil {
		return fmt.Errorf("failed to extract %s to %s: %w", name, destPath, err)
	}
	return nil
}

// seek rewinds the archive and positions a tar reader at the last occurrence
// of the named entry.
func (a *Archive) seek(name string) (*tar.Reader, error) {
	want := normalize(name)
	count, ok := a.names[want]
	if !ok {
		return nil, fmt.Errorf("%w: %s", shared.ErrEntryNotFound, name)
	}

	tr, err := a.reset()
	if err != nil {
		return nil, fmt.Errorf("failed to rewind archive: %w", err)
	}
	seen := 0
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to scan archive: %w", err)
		}
		if hdr.Typeflag == tar.TypeReg && normalize(hdr.Name) == want {
			seen++
			if seen == count {
				return tr, nil
			}
		}
	}
	// Indexed at Open but gone on rescan: the file changed underneath us.
	return nil, fmt.Errorf("%w: %s", shared.ErrEntryNotFound, name)
}

// reset rewinds the underlying file and returns a fresh tar reader over it.
func (a *Archive) reset() (*tar.Reader, error) {
	if _, err := a.file.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	var r io.Reader = a.file
	if a.compressed {
		gz, err := gzip.NewReader(a.file)
		if err != nil {
			return nil, err
		}
		r = gz
	}
	return tar.NewReader(r), nil
}

func normalize(name string) string {
	return strings.TrimPrefix(filepath.ToSlash(name), "./")
}

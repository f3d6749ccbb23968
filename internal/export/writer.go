// package export owns the output directory of a conversion run: the
// newline-delimited import document and the export-files media tree.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"hipchat2mattermost/internal/archive"
	"hipchat2mattermost/internal/mattermost"
)

// MediaDir is the directory under the output root that holds copied media.
const MediaDir = "export-files"

// Archive source roots for the three media kinds.
const (
	emoticonSourceRoot   = "files/img/emoticons"
	attachmentSourceRoot = "users/files"
	avatarSourceDir      = "avatars"
)

// Writer appends records to the import document and copies referenced media
// into the output tree. It owns the document handle for the whole run.
type Writer struct {
	outputDir string
	docPath   string
	doc       *os.File
	enc       *json.Encoder
}

// New creates the output directory (reusing it when it already exists),
// opens the import document in truncate mode and writes the version line.
func New(outputDir, documentName string) (*Writer, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	docPath := filepath.Join(outputDir, documentName)
	doc, err := os.Create(docPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create import document: %w", err)
	}

	w := &Writer{
		outputDir: outputDir,
		docPath:   docPath,
		doc:       doc,
		enc:       json.NewEncoder(doc),
	}
	if err := w.WriteLine(mattermost.VersionLine()); err != nil {
		doc.Close()
		return nil, err
	}
	return w, nil
}

// Close flushes and closes the import document.
func (w *Writer) Close() error {
	return w.doc.Close()
}

// DocumentPath returns the path of the import document.
func (w *Writer) DocumentPath() string {
	return w.docPath
}

// WriteLine appends one record to the import document. Records appear in
// call order, one JSON object per line.
func (w *Writer) WriteLine(line mattermost.Line) error {
	if err := w.enc.Encode(line); err != nil {
		return fmt.Errorf("failed to write %s record: %w", line.Type, err)
	}
	return nil
}

// CopyEmojiImage copies an emoticon image into the output tree.
// srcPath has the shape <emoticonID>/<filename>; the returned path is
// relative to the output directory.
func (w *Writer) CopyEmojiImage(a *archive.Archive, srcPath string) (string, error) {
	emoticonID, filename, err := splitPair(srcPath)
	if err != nil {
		return "", fmt.Errorf("bad emoticon path %q: %w", srcPath, err)
	}
	return w.copy(a,
		path.Join(emoticonSourceRoot, emoticonID, filename),
		path.Join(MediaDir, "emojis", emoticonID, filename))
}

// CopyPostAttachment copies a message attachment into the output tree.
// srcPath has the shape <directoryID>/<filename>.
func (w *Writer) CopyPostAttachment(a *archive.Archive, srcPath string) (string, error) {
	dirID, filename, err := splitPair(srcPath)
	if err != nil {
		return "", fmt.Errorf("bad attachment path %q: %w", srcPath, err)
	}
	return w.copy(a,
		path.Join(attachmentSourceRoot, dirID, filename),
		path.Join(MediaDir, "attachments", dirID, filename))
}

// CopyUserAvatar copies a profile image into the output tree. srcPath is a
// 4-segment path whose 3rd and 4th segments are <userID>/<filename>.
func (w *Writer) CopyUserAvatar(a *archive.Archive, srcPath string) (string, error) {
	segments := strings.Split(srcPath, "/")
	if len(segments) < 4 || segments[2] == "" || segments[3] == "" {
		return "", fmt.Errorf("bad avatar path %q: want 4 segments", srcPath)
	}
	userID, filename := segments[2], segments[3]
	return w.copy(a,
		path.Join("users", userID, avatarSourceDir, filename),
		path.Join(MediaDir, "users", userID, filename))
}

// copy extracts one archive entry to an output-relative destination and
// returns that relative path. Repeated copies of the same entry re-read and
// rewrite; only directory creation is idempotent.
func (w *Writer) copy(a *archive.Archive, entryName, relPath string) (string, error) {
	dest := filepath.Join(w.outputDir, filepath.FromSlash(relPath))
	if err := a.ExtractTo(entryName, dest); err != nil {
		return "", err
	}
	return relPath, nil
}

func splitPair(p string) (string, string, error) {
	segments := strings.Split(p, "/")
	if len(segments) != 2 || segments[0] == "" || segments[1] == "" {
		return "", "", fmt.Errorf("want <directory>/<filename>")
	}
	return segments[0], segments[1], nil
}

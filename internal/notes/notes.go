// Package notes locates note files inside the configured notes folder.
package notes

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gobwas/glob"

	serr "mdtui/internal/errors"
	log "mdtui/internal/log"
	"mdtui/pkg/types"
)

// DefaultPattern matches every note at any depth.
const DefaultPattern = "**"

// Resolve maps a note name and optional sub-directory to a path inside
// folder. ext is appended when file has no extension. The target directory
// is created if missing. Names that would leave folder are rejected.
func Resolve(folder, file, dir, ext string) (string, error) {
	if strings.TrimSpace(file) == "" {
		return "", serr.NewFileError("empty note name", "", serr.InvalidPath, nil)
	}
	if filepath.Ext(file) == "" && ext != "" {
		file += ext
	}

	full := filepath.Join(folder, dir, file)
	rel, err := filepath.Rel(folder, full)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", serr.NewFileError("note path escapes the notes folder", full, serr.InvalidPath, err)
	}

	parent := filepath.Dir(full)
	if err := os.MkdirAll(parent, 0755); err != nil {
		return "", serr.FromOS("cannot create note directory", parent, err, serr.FileWriteFailed)
	}

	log.LogWithFields(log.F("path", full)).Debug("note resolved")
	return full, nil
}

// Scan stats path and detects its content type.
func Scan(path string) (*types.NoteInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, serr.FromOS("failed to stat file", path, err, serr.FileReadFailed)
	}
	if info.IsDir() {
		return nil, serr.NewFileError("not a regular file", path, serr.InvalidPath, nil)
	}

	mime, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, serr.FromOS("failed to detect MIME type", path, err, serr.FileReadFailed)
	}

	return &types.NoteInfo{
		Path:        path,
		ContentType: mime.String(),
		Size:        info.Size(),
		ModTime:     info.ModTime(),
	}, nil
}

// IsText reports whether a detected content type is text/plain or one of
// its descendants (markdown, json, csv...).
func IsText(contentType string) bool {
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = strings.TrimSpace(contentType[:i])
	}
	m := mimetype.Lookup(contentType)
	if m == nil {
		return strings.HasPrefix(contentType, "text/")
	}
	for ; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}

// List walks folder and returns the text notes whose slash-separated
// folder-relative path matches pattern. Hidden files and directories are
// skipped. Results are sorted by relative path.
func List(folder, pattern string) ([]types.NoteInfo, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil, serr.Wrapf(err, "invalid pattern %q", pattern)
	}

	if _, err := os.Stat(folder); err != nil {
		return nil, serr.FromOS("cannot read notes folder", folder, err, serr.FileReadFailed)
	}

	logger := log.LogWithFields(log.F("folder", folder), log.F("pattern", pattern))

	var found []types.NoteInfo
	walkErr := filepath.WalkDir(folder, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == folder {
				return err
			}
			logger.WithError(err).With(log.F("path", path)).Warn("skipping unreadable entry")
			return nil
		}
		if path == folder {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(folder, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if !g.Match(rel) {
			return nil
		}

		note, err := Scan(path)
		if err != nil {
			logger.WithError(err).Debug("skipping note")
			return nil
		}
		if !IsText(note.ContentType) {
			return nil
		}
		note.Rel = rel
		found = append(found, *note)
		return nil
	})
	if walkErr != nil {
		return nil, serr.FromOS("cannot read notes folder", folder, walkErr, serr.FileReadFailed)
	}

	sort.Slice(found, func(i, j int) bool { return found[i].Rel < found[j].Rel })
	logger.With(log.F("count", len(found))).Debug("notes listed")
	return found, nil
}

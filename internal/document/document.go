// Package document ties a file path to an editable line buffer.
package document

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"mdtui/internal/buffer"
	"mdtui/internal/errors"
	"mdtui/internal/log"
)

// Document is a named text buffer optionally backed by a file.
type Document struct {
	path string
	name string
	buf  *buffer.Buffer
}

// New returns an unnamed, empty document. It cannot be saved.
func New() *Document {
	return &Document{buf: buffer.New(nil)}
}

// Load reads path into a new document. A missing or unreadable file is not
// an error: the document starts with a single empty line and is created on
// the first save.
func Load(path string) *Document {
	d := &Document{
		path: path,
		name: stem(path),
	}

	data, err := os.ReadFile(path)
	switch {
	case err != nil:
		log.LogWithError(err).With(log.F("path", path)).Debug("starting with empty document")
		d.buf = buffer.New(nil)
	case len(data) == 0:
		d.buf = buffer.New(nil)
	default:
		d.buf = buffer.FromText(string(data))
	}

	log.LogWithFields(
		log.F("path", path),
		log.F("lines", d.buf.LineCount()),
	).Debug("document loaded")
	return d
}

// stem returns the base name without its final extension. Dotfiles keep
// their full name.
func stem(path string) string {
	if path == "" {
		return ""
	}
	base := filepath.Base(path)
	if base == "/" || base == "." || base == string(filepath.Separator) {
		return ""
	}
	ext := filepath.Ext(base)
	if ext == base {
		return base
	}
	return strings.TrimSuffix(base, ext)
}

func (d *Document) Path() string { return d.path }

// Name is the file stem shown in the frame title.
func (d *Document) Name() string { return d.name }

func (d *Document) Buffer() *buffer.Buffer { return d.buf }

func (d *Document) Lines() []string { return d.buf.Lines() }

// Text returns the content as it would be written to disk.
func (d *Document) Text() string {
	var sb strings.Builder
	for _, line := range d.buf.Lines() {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Save writes every line followed by "\n", truncating the file. It does not
// touch the cursor or scroll position.
func (d *Document) Save() error {
	if d.path == "" {
		return errors.ErrNoFilePath
	}

	f, err := os.Create(d.path)
	if err != nil {
		return errors.FromOS("cannot create file", d.path, err, errors.FileWriteFailed)
	}

	w := bufio.NewWriter(f)
	for _, line := range d.buf.Lines() {
		if _, err := w.WriteString(line); err != nil {
			f.Close()
			return errors.FromOS("write failed", d.path, err, errors.FileWriteFailed)
		}
		if err := w.WriteByte('\n'); err != nil {
			f.Close()
			return errors.FromOS("write failed", d.path, err, errors.FileWriteFailed)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return errors.FromOS("write failed", d.path, err, errors.FileWriteFailed)
	}
	if err := f.Close(); err != nil {
		return errors.FromOS("close failed", d.path, err, errors.FileWriteFailed)
	}

	log.LogWithFields(
		log.F("path", d.path),
		log.F("lines", d.buf.LineCount()),
	).Info("document saved")
	return nil
}

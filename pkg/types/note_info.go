package types

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// NoteInfo describes a note file found under the notes folder
type NoteInfo struct {
	Path        string    `json:"path"`
	Rel         string    `json:"rel"` // Path relative to the notes folder, slash separated
	ContentType string    `json:"type"`
	Size        int64     `json:"size"`
	ModTime     time.Time `json:"mod_time"`
}

// Name returns the note's display name (file stem)
func (n *NoteInfo) Name() string {
	base := filepath.Base(n.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// HumanSize returns the size formatted for people, e.g. "1.2 kB"
func (n *NoteInfo) HumanSize() string {
	return humanize.Bytes(uint64(n.Size))
}

// Age returns the modification time relative to now, e.g. "3 hours ago"
func (n *NoteInfo) Age() string {
	return humanize.Time(n.ModTime)
}

// String returns a single listing line
func (n *NoteInfo) String() string {
	return fmt.Sprintf("%-40s %10s  %s", n.Rel, n.HumanSize(), n.Age())
}

package main

import (
	"fmt"
	"io"

	"mdtui/internal/errors"

	"github.com/charmbracelet/lipgloss"
)

const folderNotConfiguredMsg = "Notes folder not configured. Use 'mdtui config <FOLDER_PATH>'."

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#73F59F"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB86C"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7B61FF"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

// notesFolder returns the configured folder. When none is set it prints the
// remediation hint to w and reports ok=false with a nil error, so the command
// ends successfully without doing anything.
func (a *app) notesFolder(w io.Writer) (folder string, ok bool, err error) {
	folder, err = a.cfg.Folder()
	if err == nil {
		return folder, true, nil
	}
	if errors.IsConfigNotSet(err) {
		fmt.Fprintln(w, warningStyle.Render(folderNotConfiguredMsg))
		return "", false, nil
	}
	return "", false, err
}

package main

import (
	"mdtui/internal/document"
	"mdtui/internal/notes"

	"github.com/spf13/cobra"
)

func newOpenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "open <file> [dir]",
		Short: "Open a note from the notes folder",
		Long: `Open <folder>/[dir/]<file> in the editor. The default extension (.md) is
added when <file> has none, and [dir] is created if it does not exist.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder, ok, err := a.notesFolder(cmd.ErrOrStderr())
			if !ok {
				return err
			}

			dir := ""
			if len(args) == 2 {
				dir = args[1]
			}
			path, err := notes.Resolve(folder, args[0], dir, a.cfg.DefaultExtension)
			if err != nil {
				return err
			}
			return a.edit(document.Load(path))
		},
	}
}

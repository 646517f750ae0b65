package main

import (
	"fmt"

	"mdtui/internal/notes"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list [pattern]",
		Short: "List notes in the notes folder",
		Long: `List text notes under the notes folder whose folder-relative path matches
the glob [pattern]. '*' stays within one directory, '**' crosses directories.
The default pattern '**' lists everything.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder, ok, err := a.notesFolder(cmd.ErrOrStderr())
			if !ok {
				return err
			}

			pattern := notes.DefaultPattern
			if len(args) == 1 {
				pattern = args[0]
			}
			found, err := notes.List(folder, pattern)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(found) == 0 {
				fmt.Fprintln(out, dimStyle.Render("No notes found in "+folder))
				return nil
			}

			fmt.Fprintln(out, headerStyle.Render(folder))
			var total uint64
			for _, n := range found {
				fmt.Fprintln(out, n.String())
				total += uint64(n.Size)
			}
			fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("%s notes, %s", humanize.Comma(int64(len(found))), humanize.Bytes(total))))
			return nil
		},
	}
}

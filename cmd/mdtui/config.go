package main

import (
	"fmt"

	"mdtui/internal/config"
	"mdtui/internal/log"

	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config <folder>",
		Short: "Set the notes folder",
		Long:  `Store the base folder used by 'open' and 'list'. Relative paths are made absolute.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.SetFolder(args[0]); err != nil {
				return err
			}
			if err := config.SaveConfig(a.cfg, a.cfgPath); err != nil {
				return err
			}

			log.LogWithFields(
				log.F("folder", a.cfg.FolderPath),
				log.F("config", a.cfgPath),
			).Info("notes folder updated")
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Config file successfully updated!"))
			return nil
		},
	}
}

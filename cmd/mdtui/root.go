package main

import (
	"io"

	"mdtui/internal/config"
	"mdtui/internal/document"
	"mdtui/internal/log"
	"mdtui/internal/tui"

	"github.com/spf13/cobra"
)

// app carries the state shared by all commands of one invocation.
type app struct {
	cfgFile string
	debug   bool
	logFile string

	cfgPath string
	cfg     *config.Config

	// runEditor drives the terminal UI until the model exits
	runEditor func(m *tui.Model) error
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{runEditor: runProgram})
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mdtui [file]",
		Short: "A modal terminal note editor",
		Long: `mdtui opens a text file in a bordered terminal pane.

It starts in VIEW mode, where keys only move the cursor:
  h/j/k/l or arrows  move       K/J  first/last line
  i or enter         edit       ctrl+s  save
  esc or q           quit

In EDIT mode keys are typed into the note; esc returns to VIEW and
ctrl+s saves and returns to VIEW.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := document.New()
			if len(args) == 1 {
				doc = document.Load(args[0])
			}
			return a.edit(doc)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config-file", "", "settings file (default is $HOME/.config/mdtui/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&a.logFile, "log-file", "", "write logs to this file")

	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newOpenCmd(a))
	rootCmd.AddCommand(newListCmd(a))

	return rootCmd
}

// setup loads the settings file and points logging at stderr or the log file.
func (a *app) setup(cmd *cobra.Command) error {
	a.cfgPath = a.cfgFile
	if a.cfgPath == "" {
		path, err := config.DefaultPath()
		if err != nil {
			return err
		}
		a.cfgPath = path
	}

	cfg, err := config.LoadConfigFile(a.cfgPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if err := a.configureLog(cmd.ErrOrStderr()); err != nil {
		return err
	}
	log.LogWithFields(log.F("config", a.cfgPath), log.F("command", cmd.Name())).Debug("settings loaded")
	return nil
}

// configureLog points logging at the log file, or at out when none is set.
// A log file that cannot be opened is reported through the current logger and
// logging continues on out.
func (a *app) configureLog(out io.Writer) error {
	file := a.logFile
	if file == "" {
		file = a.cfg.Log.File
	}

	opts := []log.Option{log.WithOutput(out), log.WithLevel(a.cfg.Log.Level)}
	if a.cfg.Log.JSON {
		opts = append(opts, log.WithJSON())
	}

	if file != "" {
		if err := log.Configure(append(opts, log.WithFile(file))...); err != nil {
			log.LogWithError(err).Warn("log file unavailable")
			file = ""
		}
	}
	if file == "" {
		if err := log.Configure(opts...); err != nil {
			return err
		}
	}
	if a.debug {
		log.SetDebug(true)
	}
	return nil
}

// edit runs the editor on doc. Logs never reach the terminal while it runs.
func (a *app) edit(doc *document.Document) error {
	if err := a.configureLog(io.Discard); err != nil {
		return err
	}

	m := tui.New(doc,
		tui.WithTabWidth(a.cfg.Editor.TabWidth),
		tui.WithLineNumbers(a.cfg.Editor.LineNumbers),
	)
	log.LogWithFields(log.F("path", doc.Path())).Info("editor started")
	if err := a.runEditor(m); err != nil {
		log.LogWithError(err).Error("editor stopped")
		return err
	}
	log.Info("editor exited")
	return nil
}

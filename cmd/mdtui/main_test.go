package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mdtui/internal/config"
	"mdtui/internal/errors"
	"mdtui/internal/tui"
	"mdtui/pkg/testutils"
	"mdtui/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cliResult struct {
	stdout string
	stderr string
	opened []*tui.Model
}

// runCli executes the command tree in-process with a settings file in dir.
// The editor is replaced by play, which receives the model instead of a
// terminal.
func runCli(t *testing.T, dir string, play func(m *tui.Model), args ...string) (cliResult, error) {
	t.Helper()

	var res cliResult
	a := &app{runEditor: func(m *tui.Model) error {
		res.opened = append(res.opened, m)
		if play != nil {
			play(m)
		}
		return nil
	}}

	cmd := newRootCmd(a)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config-file", filepath.Join(dir, "config.yaml")}, args...))

	err := cmd.Execute()
	res.stdout = testutils.StripANSI(stdout.String())
	res.stderr = testutils.StripANSI(stderr.String())
	return res, err
}

func configureFolder(t *testing.T, dir string) string {
	t.Helper()
	folder := filepath.Join(dir, "notes")
	require.NoError(t, os.MkdirAll(folder, 0755))
	_, err := runCli(t, dir, nil, "config", folder)
	require.NoError(t, err)
	return folder
}

func TestCliVersion(t *testing.T) {
	res, err := runCli(t, t.TempDir(), nil, "--version")
	require.NoError(t, err)
	assert.Contains(t, res.stdout, "mdtui version dev")
	assert.Empty(t, res.opened)
}

func TestCliHelp(t *testing.T) {
	res, err := runCli(t, t.TempDir(), nil, "--help")
	require.NoError(t, err)

	for _, s := range []string{"Available Commands:", "config", "open", "list", "--config-file", "--debug", "--log-file"} {
		assert.Contains(t, res.stdout, s)
	}
}

func TestCliConfigCommand(t *testing.T) {
	dir := t.TempDir()
	folder := filepath.Join(dir, "notes")

	res, err := runCli(t, dir, nil, "config", folder)
	require.NoError(t, err)
	assert.Contains(t, res.stdout, "Config file successfully updated!")

	cfg, err := config.LoadConfigFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, folder, cfg.FolderPath)

	_, err = runCli(t, dir, nil, "config")
	assert.Error(t, err, "folder argument is required")
}

func TestCliOpenWithoutFolder(t *testing.T) {
	res, err := runCli(t, t.TempDir(), nil, "open", "todo")
	require.NoError(t, err, "a missing folder is not a failure")
	assert.Contains(t, res.stderr, "Notes folder not configured. Use 'mdtui config <FOLDER_PATH>'.")
	assert.Empty(t, res.opened)
}

func TestCliOpen(t *testing.T) {
	dir := t.TempDir()
	folder := configureFolder(t, dir)

	res, err := runCli(t, dir, nil, "open", "todo")
	require.NoError(t, err)
	require.Len(t, res.opened, 1)

	doc := res.opened[0].Document()
	assert.Equal(t, filepath.Join(folder, "todo.md"), doc.Path())
	assert.Equal(t, "todo", doc.Name())
	assert.Equal(t, types.View, res.opened[0].Mode())
}

func TestCliOpenInSubdirectory(t *testing.T) {
	dir := t.TempDir()
	folder := configureFolder(t, dir)

	res, err := runCli(t, dir, nil, "open", "standup.txt", "work")
	require.NoError(t, err)
	require.Len(t, res.opened, 1)
	assert.Equal(t, filepath.Join(folder, "work", "standup.txt"), res.opened[0].Document().Path())
	assert.DirExists(t, filepath.Join(folder, "work"))
}

func TestCliOpenRejectsEscape(t *testing.T) {
	dir := t.TempDir()
	configureFolder(t, dir)

	res, err := runCli(t, dir, nil, "open", "../../secrets")
	require.Error(t, err)
	assert.Equal(t, errors.InvalidPath, errors.KindOf(err))
	assert.Empty(t, res.opened)
}

func TestCliOpenEditAndSave(t *testing.T) {
	dir := t.TempDir()
	folder := configureFolder(t, dir)

	play := func(m *tui.Model) {
		testutils.Send(m, testutils.Key("i"))
		testutils.Send(m, testutils.Type("buy milk")...)
		testutils.Send(m, testutils.Key("ctrl+s"), testutils.Key("q"))
	}

	res, err := runCli(t, dir, play, "open", "groceries")
	require.NoError(t, err)
	require.Len(t, res.opened, 1)
	assert.Equal(t, types.Exit, res.opened[0].Mode())
	assert.Equal(t, "buy milk\n", testutils.ReadFile(t, filepath.Join(folder, "groceries.md")))
}

func TestCliRootOpensFile(t *testing.T) {
	dir := t.TempDir()
	path := testutils.CreateNote(t, "scratch.txt", "one\ntwo\n")

	res, err := runCli(t, dir, nil, path)
	require.NoError(t, err)
	require.Len(t, res.opened, 1)
	assert.Equal(t, path, res.opened[0].Document().Path())
	assert.Equal(t, []string{"one", "two"}, res.opened[0].Lines())
}

func TestCliRootWithoutFile(t *testing.T) {
	res, err := runCli(t, t.TempDir(), nil)
	require.NoError(t, err)
	require.Len(t, res.opened, 1)
	assert.Empty(t, res.opened[0].Document().Path())
	assert.Equal(t, []string{""}, res.opened[0].Lines())
}

func TestCliRootTooManyArgs(t *testing.T) {
	res, err := runCli(t, t.TempDir(), nil, "a.md", "b.md")
	assert.Error(t, err)
	assert.Empty(t, res.opened)
}

func TestCliList(t *testing.T) {
	dir := t.TempDir()
	folder := configureFolder(t, dir)
	testutils.CreateTestFilesWithContent(t, folder, map[string]string{
		"todo.md":         "buy milk\n",
		"ideas.txt":       "an idea\n",
		"work/meeting.md": "agenda\n",
	})

	res, err := runCli(t, dir, nil, "list")
	require.NoError(t, err)
	assert.Contains(t, res.stdout, "todo.md")
	assert.Contains(t, res.stdout, "ideas.txt")
	assert.Contains(t, res.stdout, "work/meeting.md")
	assert.Contains(t, res.stdout, "3 notes")

	res, err = runCli(t, dir, nil, "list", "work/*")
	require.NoError(t, err)
	assert.Contains(t, res.stdout, "work/meeting.md")
	assert.NotContains(t, res.stdout, "todo.md")

	res, err = runCli(t, dir, nil, "list", "*.org")
	require.NoError(t, err)
	assert.Contains(t, res.stdout, "No notes found")
}

func TestCliListWithoutFolder(t *testing.T) {
	res, err := runCli(t, t.TempDir(), nil, "list")
	require.NoError(t, err)
	assert.Contains(t, res.stderr, "Notes folder not configured")
	assert.Empty(t, res.stdout)
}

func TestCliInvalidConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("editor:\n  tab_width: 99\n"), 0644))

	res, err := runCli(t, dir, nil, "notes.md")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidConfig(err))
	assert.Empty(t, res.opened)

	// Every command reports which file and key to fix.
	_, err = runCli(t, dir, nil, "config", filepath.Join(dir, "notes"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), filepath.Join(dir, "config.yaml"))
	assert.Contains(t, err.Error(), "editor.tab_width")
}

func TestCliLogFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "mdtui.log")
	note := testutils.CreateNote(t, "logged.md", "x\n")

	res, err := runCli(t, dir, nil, "--debug", "--log-file", logPath, note)
	require.NoError(t, err)
	require.Len(t, res.opened, 1)
	assert.Empty(t, res.stderr, "logs never reach the terminal")

	content := testutils.ReadFile(t, logPath)
	assert.Contains(t, content, "editor started")
	assert.True(t, strings.Contains(content, "level=debug"), "debug flag raises verbosity")
}

func TestCliLogFileUnavailable(t *testing.T) {
	dir := t.TempDir()
	note := testutils.CreateNote(t, "unlogged.md", "x\n")

	res, err := runCli(t, dir, nil, "--log-file", filepath.Join(dir, "missing", "mdtui.log"), note)
	require.NoError(t, err, "an unusable log file does not stop the editor")
	require.Len(t, res.opened, 1)
	assert.Contains(t, res.stderr, "log file unavailable")
	assert.Contains(t, res.stderr, "error_kind=file_not_found")
}

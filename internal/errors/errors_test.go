package errors

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapping(t *testing.T) {
	origErr := errors.New("original error")
	wrappedErr := Wrapf(origErr, "formatted %s", "wrapper")
	assert.NotNil(t, wrappedErr)
	assert.Equal(t, "formatted wrapper: original error", wrappedErr.Error())
	assert.Equal(t, origErr, Unwrap(wrappedErr))

	// Wrapping nil returns nil
	assert.Nil(t, Wrapf(nil, "formatted %s", "wrapper"))

	var appErr *ApplicationError
	assert.True(t, As(wrappedErr, &appErr))
	assert.Equal(t, Unknown, appErr.Kind())

	deepWrapped := Wrapf(wrappedErr, "deeper")
	assert.Equal(t, "deeper: formatted wrapper: original error", deepWrapped.Error())
	assert.True(t, Is(deepWrapped, origErr))
}

func TestFileError(t *testing.T) {
	// Test creating a file error
	fileErr := NewFileError("cannot access", "/notes/todo.md", FileAccessDenied, nil)
	assert.NotNil(t, fileErr)
	assert.Equal(t, "cannot access: /notes/todo.md", fileErr.Error())
	assert.Equal(t, "/notes/todo.md", fileErr.Path())
	assert.Equal(t, FileAccessDenied, fileErr.Kind())

	// Test with wrapped error
	origErr := fmt.Errorf("permission denied")
	fileErr = NewFileError("cannot access", "/notes/todo.md", FileAccessDenied, origErr)
	assert.Equal(t, "cannot access: /notes/todo.md: permission denied", fileErr.Error())
	assert.Equal(t, origErr, Unwrap(fileErr))

	// Test IsFileNotFound predicate
	notFoundErr := NewFileError("file not found", "/missing/file", FileNotFound, nil)
	assert.True(t, IsFileNotFound(notFoundErr))
	assert.False(t, IsFileNotFound(fileErr)) // This is FileAccessDenied

	// Test IsFileAccessDenied predicate
	assert.True(t, IsFileAccessDenied(fileErr))
	assert.False(t, IsFileAccessDenied(notFoundErr))

	// Test As for FileError
	var fe *FileError
	assert.True(t, As(fileErr, &fe))
	assert.Equal(t, "/notes/todo.md", fe.Path())
}

func TestConfigError(t *testing.T) {
	// Test creating a config error
	configErr := NewConfigError("invalid value", "tab_width", InvalidConfig, nil)
	assert.NotNil(t, configErr)
	assert.Equal(t, "invalid value: tab_width", configErr.Error())
	assert.Equal(t, "tab_width", configErr.Param())
	assert.Equal(t, InvalidConfig, configErr.Kind())

	// Test with wrapped error
	origErr := fmt.Errorf("value out of range")
	configErr = NewConfigError("invalid value", "tab_width", InvalidConfig, origErr)
	assert.Equal(t, "invalid value: tab_width: value out of range", configErr.Error())
	assert.Equal(t, origErr, Unwrap(configErr))

	// Test IsInvalidConfig predicate
	assert.True(t, IsInvalidConfig(configErr))
	assert.False(t, IsInvalidConfig(errors.New("some other error")))

	// Test As for ConfigError
	var ce *ConfigError
	assert.True(t, As(configErr, &ce))
	assert.Equal(t, "tab_width", ce.Param())
}

func TestConfigNotSet(t *testing.T) {
	assert.True(t, IsConfigNotSet(ErrFolderNotConfigured))
	assert.Equal(t, ConfigNotSet, KindOf(ErrFolderNotConfigured))
	assert.Equal(t, "notes folder not configured: folder_path", ErrFolderNotConfigured.Error())

	// A freshly built error with the same kind and param matches the sentinel
	fresh := NewConfigError("notes folder not configured", "folder_path", ConfigNotSet, nil)
	assert.True(t, Is(Wrapf(fresh, "open"), ErrFolderNotConfigured))

	other := NewConfigError("notes folder not configured", "default_extension", ConfigNotSet, nil)
	assert.False(t, Is(other, ErrFolderNotConfigured))
	assert.False(t, IsConfigNotSet(NewConfigError("invalid value", "editor.tab_width", InvalidConfig, nil)))
}

func TestFromOS(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorKind
	}{
		{"permission", os.ErrPermission, FileAccessDenied},
		{"not exist", os.ErrNotExist, FileNotFound},
		{"other", fmt.Errorf("disk full"), FileWriteFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fileErr := FromOS("write failed", "/tmp/note.md", tt.err, FileWriteFailed)
			assert.Equal(t, tt.expected, fileErr.Kind())
			assert.Equal(t, "/tmp/note.md", fileErr.Path())
			assert.True(t, Is(fileErr, tt.err))
		})
	}
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, Unknown, KindOf(nil))
	assert.Equal(t, Unknown, KindOf(fmt.Errorf("plain")))
	assert.Equal(t, InvalidPath, KindOf(ErrNoFilePath))
	assert.Equal(t, FileNotFound, KindOf(fmt.Errorf("context: %w", FromOS("read failed", "/notes/a.md", os.ErrNotExist, FileReadFailed))))
	assert.Equal(t, "file_write_failed", FileWriteFailed.String())
	assert.Equal(t, "unknown", ErrorKind(99).String())
}

func TestErrorChains(t *testing.T) {
	// Create a chain of errors
	baseErr := errors.New("base error")
	fileErr := NewFileError("file error", "/notes/todo.md", FileNotFound, baseErr)
	configErr := NewConfigError("config error", "folder_path", InvalidConfig, fileErr)
	wrapped := Wrapf(configErr, "load settings")

	// Test complete error message
	assert.Equal(t, "load settings: config error: folder_path: file error: /notes/todo.md: base error", wrapped.Error())

	// Test Is function through the chain
	assert.True(t, Is(wrapped, baseErr))
	assert.True(t, Is(wrapped, fileErr))
	assert.True(t, Is(wrapped, configErr))

	// Test As function through the chain
	var fe *FileError
	assert.True(t, As(wrapped, &fe))
	assert.Equal(t, "/notes/todo.md", fe.Path())

	var ce *ConfigError
	assert.True(t, As(wrapped, &ce))
	assert.Equal(t, "folder_path", ce.Param())

	// Test error predicates through the chain
	assert.True(t, IsFileNotFound(wrapped))
	assert.True(t, IsInvalidConfig(wrapped))
}

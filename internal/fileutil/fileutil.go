// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
	ErrEmptyBaseName          = errors.New("path has no file name segment")
)

// WriteTempFile creates a temporary file with the given content and extension.
// Returns the file path and a cleanup function to remove the file.
func WriteTempFile(content, extension string) (path string, cleanup func(), err error) {
	if err := ValidateExtension(extension); err != nil {
		return "", nil, err
	}

	tmpFile, err := os.CreateTemp("", "pdfcomposer-*."+extension)
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}

	path = tmpFile.Name()
	cleanup = func() { _ = os.Remove(path) }

	if _, writeErr := tmpFile.WriteString(content); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return "", nil, fmt.Errorf("writing temp file: %w", writeErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return "", nil, fmt.Errorf("closing temp file: %w", closeErr)
	}

	return path, cleanup, nil
}

// ValidateExtension checks that the extension is safe for use in temp file names.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DerivedName returns the output base name for a source path: the final
// path segment with a single trailing ".md" suffix stripped. Both / and \
// are treated as separators so Windows-style inputs work everywhere.
// A path that is empty or ends in a separator has no name to derive.
func DerivedName(path string) (string, error) {
	segment := path
	if idx := strings.LastIndexAny(segment, "/\\"); idx >= 0 {
		segment = segment[idx+1:]
	}
	segment = strings.TrimSuffix(segment, ".md")
	if segment == "" {
		return "", fmt.Errorf("%w: %q", ErrEmptyBaseName, path)
	}
	return segment, nil
}

// IsLocked probes whether an existing file is exclusively locked by another
// process, by attempting to open it for writing. A missing file is not
// locked. Only a permission error counts as locked; any other open error is
// returned to the caller.
func IsLocked(path string) (bool, error) {
	f, err := os.OpenFile(path, os.O_WRONLY, 0) // #nosec G304 -- probing caller-chosen output path
	if err == nil {
		_ = f.Close()
		return false, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if errors.Is(err, fs.ErrPermission) {
		return true, nil
	}
	return false, err
}

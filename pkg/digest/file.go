package digest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// NotFoundError is returned when the file
// being hashed does not exist.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("File not found - %s", e.Path)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// ReadFile reads the entire contents of the file at path.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &NotFoundError{Path: path, Err: err}
		}
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}

// File returns the full SHA256 digest of the file at path.
func File(path string) (string, error) {
	data, err := ReadFile(path)
	if err != nil {
		return "", err
	}
	return Sum(data), nil
}

// ShortFile returns the truncated SHA256 digest of the file at path.
func ShortFile(path string) (string, error) {
	sum, err := File(path)
	if err != nil {
		return "", err
	}
	return Short(sum), nil
}

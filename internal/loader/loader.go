// Package loader reads a dictionary resource file and returns its text.
// The file must hold valid UTF-8; nothing else about its content is checked.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

var (
	ErrInputNotFound = errors.New("loader: input file not found")
	ErrNotRegular    = errors.New("loader: input is not a regular file")
	ErrDecode        = errors.New("loader: input is not valid UTF-8")
)

// Load reads the file at path and returns its content as text.
// The path is checked with os.Stat before it is opened so a missing file
// surfaces as ErrInputNotFound rather than a generic open error.
func Load(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s", ErrNotRegular, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return Decode(data, path)
}

// Decode converts raw file bytes to text, rejecting invalid UTF-8.
// name is only used in error messages.
func Decode(data []byte, name string) (string, error) {
	if off := invalidOffset(data); off >= 0 {
		return "", fmt.Errorf("%w: %s: invalid byte 0x%02x at offset %d", ErrDecode, name, data[off], off)
	}
	return string(data), nil
}

// invalidOffset returns the offset of the first invalid UTF-8 sequence, or -1.
func invalidOffset(data []byte) int {
	if utf8.Valid(data) {
		return -1
	}
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

// Package fileio reads and writes documents as plain text lines.
//
// Lines are separated by '\n' only. Any other byte, including '\r', is
// part of the line, so files with CRLF endings round-trip unchanged.
// A leading UTF-8 byte order mark is dropped on read.
package fileio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrNotFound is returned by ReadLines when the file does not exist.
var ErrNotFound = errors.New("file not found")

// FileError records a failed file operation.
type FileError struct {
	Op   string // "read", "write" or "create"
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// ReadLines returns the lines of the file at path.
// A trailing '\n' does not start an extra line, and an empty file has no
// lines. A missing file yields an error matching ErrNotFound.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &FileError{Op: "read", Path: path, Err: ErrNotFound}
		}
		return nil, &FileError{Op: "read", Path: path, Err: err}
	}
	defer f.Close()

	lines, err := Decode(f)
	if err != nil {
		return nil, &FileError{Op: "read", Path: path, Err: err}
	}
	return lines, nil
}

// Decode reads UTF-8 text from r and splits it into lines.
func Decode(r io.Reader) ([]string, error) {
	dec := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, err
	}

	text := string(data)
	if text == "" {
		return []string{}, nil
	}
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n"), nil
}

// WriteLines replaces the content of the file at path with lines, each
// followed by '\n'. The file is created if needed.
func WriteLines(path string, lines []string) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return &FileError{Op: "write", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &FileError{Op: "write", Path: path, Err: cerr}
		}
	}()

	if err := Encode(f, lines); err != nil {
		return &FileError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// Encode writes lines to w, each followed by '\n'.
func Encode(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Create creates an empty file at path. It fails if the file cannot be
// opened for writing.
func Create(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return &FileError{Op: "create", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &FileError{Op: "create", Path: path, Err: err}
	}
	return nil
}

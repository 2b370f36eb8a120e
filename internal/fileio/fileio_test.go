package fileio

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestReadLinesNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	_, err := ReadLines(path)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	var fe *FileError
	if !errors.As(err, &fe) || fe.Op != "read" || fe.Path != path {
		t.Errorf("expected read FileError for %s, got %v", path, err)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", []string{}},
		{"single newline", "\n", []string{""}},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"blank lines", "a\n\n\nb\n", []string{"a", "", "", "b"}},
		{"crlf kept", "a\r\nb\r\n", []string{"a\r", "b\r"}},
		{"bom stripped", "\xef\xbb\xbfhello\n", []string{"hello"}},
		{"unicode", "中文\nnaïve\n", []string{"中文", "naïve"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, []string{"a", "", "中"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "a\n\n中\n" {
		t.Errorf("expected %q, got %q", "a\n\n中\n", buf.String())
	}
}

func TestWriteThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	lines := []string{"first", "", "  indented", "中文 text", "last"}

	if err := WriteLines(path, lines); err != nil {
		t.Fatalf("WriteLines failed: %v", err)
	}
	got, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines failed: %v", err)
	}
	if !reflect.DeepEqual(got, lines) {
		t.Errorf("expected %q, got %q", lines, got)
	}
}

func TestWriteLinesTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte("a much longer original content\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := WriteLines(path, []string{"short"}); err != nil {
		t.Fatalf("WriteLines failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "short\n" {
		t.Errorf("expected %q, got %q", "short\n", data)
	}
}

func TestCRLFRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dos.txt")
	original := "one\r\ntwo\r\n"
	if err := os.WriteFile(path, []byte(original), 0o644); err != nil {
		t.Fatal(err)
	}

	lines, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines failed: %v", err)
	}
	if err := WriteLines(path, lines); err != nil {
		t.Fatalf("WriteLines failed: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != original {
		t.Errorf("expected %q, got %q", original, data)
	}
}

func TestCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")

	if err := Create(path); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected file to exist: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("expected empty file, got %d bytes", info.Size())
	}

	lines, err := ReadLines(path)
	if err != nil {
		t.Fatalf("ReadLines failed: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("expected no lines, got %q", lines)
	}
}

func TestCreateFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "file.txt")

	err := Create(path)
	var fe *FileError
	if !errors.As(err, &fe) {
		t.Fatalf("expected FileError, got %v", err)
	}
	if fe.Op != "create" {
		t.Errorf("expected create op, got %s", fe.Op)
	}
	if !strings.Contains(err.Error(), "create "+path) {
		t.Errorf("expected message to name the path, got %q", err.Error())
	}
}

func TestWriteLinesFails(t *testing.T) {
	dir := t.TempDir()

	err := WriteLines(dir, []string{"x"})
	var fe *FileError
	if !errors.As(err, &fe) || fe.Op != "write" {
		t.Errorf("expected write FileError, got %v", err)
	}
}

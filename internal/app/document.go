package app

import (
	"errors"
	"path/filepath"

	"github.com/dshills/lineedit/internal/fileio"
)

// Document is the file being edited.
type Document struct {
	// Path is the file path as given by the user.
	Path string

	// Name is the display name.
	Name string

	// Created is set when the file did not exist and was created on open.
	Created bool

	// Lines is the content read at open time.
	Lines []string
}

// Open reads the file at path. A missing file is created empty right away
// so that an unwritable location is reported before editing starts.
func Open(path string) (*Document, error) {
	if path == "" {
		return nil, ErrNoPath
	}

	doc := &Document{
		Path: path,
		Name: filepath.Base(path),
	}

	lines, err := fileio.ReadLines(path)
	switch {
	case err == nil:
		doc.Lines = lines
	case errors.Is(err, fileio.ErrNotFound):
		if err := fileio.Create(path); err != nil {
			return nil, err
		}
		doc.Created = true
	default:
		return nil, err
	}

	return doc, nil
}

// Save writes lines to the document's file, replacing its content.
func (d *Document) Save(lines []string) error {
	if err := fileio.WriteLines(d.Path, lines); err != nil {
		return NewOperationError("save", d.Path, err)
	}
	return nil
}

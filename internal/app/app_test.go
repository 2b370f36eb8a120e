package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/lineedit/internal/config"
	"github.com/dshills/lineedit/internal/fileio"
	"github.com/dshills/lineedit/internal/renderer/backend"
)

func keyEvent(k backend.Key) backend.Event {
	return backend.Event{Type: backend.EventKey, Key: k}
}

func runeEvent(r rune) backend.Event {
	return backend.Event{Type: backend.EventKey, Key: backend.KeyRune, Rune: r}
}

func typeText(b *backend.NullBackend, s string) {
	for _, r := range s {
		b.PostEvent(runeEvent(r))
	}
}

// newTestApp creates an application on a fresh NullBackend with default
// configuration.
func newTestApp(t *testing.T, opts Options) (*Application, *backend.NullBackend) {
	t.Helper()
	if opts.Config == nil {
		opts.Config = config.New()
	}
	app, err := New(opts)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	t.Cleanup(app.Close)

	b := backend.NewNullBackend(20, 5)
	if err := app.SetBackend(b); err != nil {
		t.Fatalf("SetBackend() failed: %v", err)
	}
	return app, b
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func TestNewRequiresPath(t *testing.T) {
	if _, err := New(Options{Config: config.New()}); !errors.Is(err, ErrNoPath) {
		t.Errorf("expected ErrNoPath, got %v", err)
	}
}

func TestNewCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")

	app, _ := newTestApp(t, Options{Path: path})

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file to be created: %v", err)
	}
	if !app.Document().Created {
		t.Error("expected Created to be set")
	}
	lines := app.Session().Lines()
	if len(lines) != 1 || lines[0] != "" {
		t.Errorf("expected one empty line, got %q", lines)
	}
}

func TestNewCreateFailureIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "new.txt")

	_, err := New(Options{Path: path, Config: config.New()})

	var fe *fileio.FileError
	if !errors.As(err, &fe) || fe.Op != "create" {
		t.Errorf("expected create FileError, got %v", err)
	}
}

func TestNewReadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte("one\ntwo\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	app, _ := newTestApp(t, Options{Path: path})

	if app.Document().Created {
		t.Error("expected Created to be false for an existing file")
	}
	if got := app.Session().Lines(); len(got) != 2 || got[0] != "one" || got[1] != "two" {
		t.Errorf("expected [one two], got %q", got)
	}
}

func TestRunWithoutBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	app, err := New(Options{Path: path, Config: config.New()})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer app.Close()

	if err := app.Run(); !errors.Is(err, ErrNoBackend) {
		t.Errorf("expected ErrNoBackend, got %v", err)
	}
}

func TestRunEditAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte("hello\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	app, b := newTestApp(t, Options{Path: path})

	b.PostEvent(keyEvent(backend.KeyPageDown))
	typeText(b, "!")
	b.PostEvent(keyEvent(backend.KeyEnter))
	typeText(b, "wörld 中")
	b.PostEvent(keyEvent(backend.KeyTab))
	b.PostEvent(keyEvent(backend.KeyF1))

	if err := app.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if got := readFile(t, path); got != "hello!\nwörld 中\n" {
		t.Errorf("expected saved content, got %q", got)
	}
}

func TestRunRendersEveryEvent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	app, b := newTestApp(t, Options{Path: path})

	typeText(b, "ab")
	b.PostEvent(keyEvent(backend.KeyLeft))
	b.PostEvent(keyEvent(backend.KeyEscape))
	b.PostEvent(keyEvent(backend.KeyF1))

	if err := app.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	// One initial frame plus one per non-quit event, inert keys included.
	if b.Frames() != 5 {
		t.Errorf("expected 5 frames, got %d", b.Frames())
	}
	if b.Row(0) != "ab" {
		t.Errorf("expected %q on screen, got %q", "ab", b.Row(0))
	}
	x, y, _ := b.CursorPosition()
	if x != 1 || y != 0 {
		t.Errorf("expected cursor at (1,0), got (%d,%d)", x, y)
	}

	snap := app.Metrics().Snapshot()
	if snap.Keys != 5 || snap.Edits != 2 || snap.Moves != 1 || snap.NoOps != 2 {
		t.Errorf("unexpected metrics: %+v", snap)
	}
}

func TestRunKeepsCursorOnWideLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	app, b := newTestApp(t, Options{Path: path})

	typeText(b, strings.Repeat("中", 15))
	b.PostEvent(keyEvent(backend.KeyF1))

	if err := app.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	x, y, visible := b.CursorPosition()
	if !visible || x != 18 || y != 0 {
		t.Errorf("expected visible cursor at (18,0), got (%d,%d) visible=%v", x, y, visible)
	}
	if want := strings.Repeat("中", 9); b.Row(0) != want {
		t.Errorf("expected %q on screen, got %q", want, b.Row(0))
	}
}

func TestRunScrollsWithCursor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	var content strings.Builder
	for i := 0; i < 10; i++ {
		content.WriteString("line\n")
	}
	content.WriteString("last\n")
	if err := os.WriteFile(path, []byte(content.String()), 0o644); err != nil {
		t.Fatal(err)
	}
	app, b := newTestApp(t, Options{Path: path})

	b.PostEvent(keyEvent(backend.KeyPageDown))
	b.PostEvent(keyEvent(backend.KeyF1))

	if err := app.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if b.Row(0) != "last" {
		t.Errorf("expected last line at the top, got %q", b.Row(0))
	}
	if v := app.Session().Viewport(); v.StartLine != 10 {
		t.Errorf("expected startLine 10, got %d", v.StartLine)
	}
}

func TestRunResize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	if err := os.WriteFile(path, []byte("abcdefghij\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	app, b := newTestApp(t, Options{Path: path})

	// A terminal reports the new size before the resize event is read.
	b.Resize(4, 2)
	b.PostEvent(keyEvent(backend.KeyPageDown))
	b.PostEvent(backend.Event{Type: backend.EventResize, Width: 4, Height: 2})
	b.PostEvent(keyEvent(backend.KeyF1))

	if err := app.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if v := app.Session().Viewport(); v.StartCol != 7 {
		t.Errorf("expected startCol 7, got %d", v.StartCol)
	}
	if b.Row(0) != "hij" {
		t.Errorf("expected %q, got %q", "hij", b.Row(0))
	}
	if app.Metrics().Snapshot().Resizes != 1 {
		t.Error("expected one resize recorded")
	}
}

func TestRunLineNumbers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	app, b := newTestApp(t, Options{Path: path, LineNumbers: true})

	typeText(b, "x")
	b.PostEvent(keyEvent(backend.KeyF1))

	if err := app.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if b.Row(0) != "  1 x" {
		t.Errorf("expected %q, got %q", "  1 x", b.Row(0))
	}
	x, _, _ := b.CursorPosition()
	if x != 5 {
		t.Errorf("expected cursor x 5, got %d", x)
	}
}

func TestRunCustomSaveKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	cfg := config.New()
	_ = cfg.Set("editor.saveKey", "Ctrl+S")
	app, b := newTestApp(t, Options{Path: path, Config: cfg})

	b.PostEvent(keyEvent(backend.KeyF1))
	typeText(b, "k")
	b.PostEvent(keyEvent(backend.KeyCtrlS))

	if err := app.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if got := readFile(t, path); got != "k\n" {
		t.Errorf("expected %q, got %q", "k\n", got)
	}
}

func TestInvalidSaveKeyFallsBack(t *testing.T) {
	for _, spec := range []string{"Hyper+Z", "s", "Enter", "Ctrl+A"} {
		t.Run(spec, func(t *testing.T) {
			dir := t.TempDir()
			logPath := filepath.Join(dir, "lineedit.log")
			cfg := config.New()
			_ = cfg.Set("editor.saveKey", spec)

			app, _ := newTestApp(t, Options{Path: filepath.Join(dir, "doc.txt"), Config: cfg, LogFile: logPath})

			if app.SaveKey().String() != "F1" {
				t.Errorf("expected F1 fallback, got %s", app.SaveKey())
			}

			app.Close()
			log := readFile(t, logPath)
			if !strings.Contains(log, "[WARN]") || !strings.Contains(log, fmt.Sprintf("%q", spec)) {
				t.Errorf("expected warning about the save key, got %q", log)
			}
		})
	}
}

func TestEditorConfigErrorsLogged(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "lineedit.log")
	cfg := config.New()
	_ = cfg.Set("editor.lineNumbers", "yes")
	_ = cfg.Set("editor.saveKey", int64(1))

	app, _ := newTestApp(t, Options{Path: filepath.Join(dir, "doc.txt"), Config: cfg, LogFile: logPath})
	if app.gutter.ShowLineNumbers {
		t.Error("expected line numbers to keep their default")
	}

	app.Close()
	log := readFile(t, logPath)
	for _, want := range []string{"setting=editor.lineNumbers", "setting=editor.saveKey"} {
		if !strings.Contains(log, want) {
			t.Errorf("expected warning for %s, got:\n%s", want, log)
		}
	}
}

func TestSessionLog(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "lineedit.log")
	path := filepath.Join(dir, "doc.txt")
	app, b := newTestApp(t, Options{Path: path, LogFile: logPath, LogLevel: "debug"})

	typeText(b, "a")
	b.PostEvent(keyEvent(backend.KeyF1))
	if err := app.Run(); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	app.Close()

	log := readFile(t, logPath)
	for _, want := range []string{"opened", "created=true", "saved", "shutdown", "session=", "key a: insert ok"} {
		if !strings.Contains(log, want) {
			t.Errorf("expected log to contain %q, got:\n%s", want, log)
		}
	}
}

func TestSaveFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	app, b := newTestApp(t, Options{Path: path})

	// Replace the file with a directory so the write fails.
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatal(err)
	}

	b.PostEvent(keyEvent(backend.KeyF1))
	err := app.Run()

	var opErr *OperationError
	if !errors.As(err, &opErr) || opErr.Op != "save" {
		t.Fatalf("expected save OperationError, got %v", err)
	}
	var fe *fileio.FileError
	if !errors.As(err, &fe) {
		t.Errorf("expected wrapped FileError, got %v", err)
	}
}

func TestSetBackendWhileRunning(t *testing.T) {
	app, _ := newTestApp(t, Options{Path: filepath.Join(t.TempDir(), "doc.txt")})
	app.running = true
	defer func() { app.running = false }()

	if err := app.SetBackend(backend.NewNullBackend(1, 1)); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("expected ErrAlreadyRunning, got %v", err)
	}
}

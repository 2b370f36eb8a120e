package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/dshills/lineedit/internal/config"
	"github.com/dshills/lineedit/internal/dispatcher"
)

const banner = `lineedit %s
Arrow keys move, PageUp and PageDown jump to the start and end.
Press %s to save and exit.

`

const promptText = "File name: "

var errNoFileName = errors.New("no file name given")

// saveKeyName returns the save key configured at configPath, or F1 when
// the configuration does not name a usable one.
func saveKeyName(configPath string) string {
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, _ := config.Load(config.WithPath(configPath))
	ev, err := dispatcher.ParseSaveKey(cfg.Editor().SaveKey)
	if err != nil {
		return dispatcher.DefaultConfig().SaveKey.String()
	}
	return ev.String()
}

// promptFileName shows the banner naming saveKey and reads a file name.
// A terminal on in gets line editing; anything else is read as a plain line.
func promptFileName(in *os.File, out io.Writer, saveKey string) (string, error) {
	fmt.Fprintf(out, banner, version, saveKey)

	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return readFileName(in, out)
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return readFileName(in, out)
	}
	defer term.Restore(fd, state)

	t := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{in, out}, promptText)

	line, err := t.ReadLine()
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return checkFileName(line)
}

// readFileName prompts on out and reads one line from r.
func readFileName(r io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, promptText)

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return checkFileName(line)
}

func checkFileName(line string) (string, error) {
	name := strings.TrimSpace(line)
	if name == "" {
		return "", errNoFileName
	}
	return name, nil
}

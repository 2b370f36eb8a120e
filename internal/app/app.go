package app

import (
	"errors"
	"io"

	"github.com/dshills/lineedit/internal/config"
	"github.com/dshills/lineedit/internal/dispatcher"
	"github.com/dshills/lineedit/internal/engine"
	"github.com/dshills/lineedit/internal/input/key"
	"github.com/dshills/lineedit/internal/renderer"
	"github.com/dshills/lineedit/internal/renderer/backend"
	"github.com/dshills/lineedit/internal/renderer/gutter"
)

// Application runs one editing session on one file.
type Application struct {
	opts   Options
	config *config.Config

	logger    *Logger
	logCloser io.Closer
	metrics   *Metrics

	doc     *Document
	session *engine.Session

	backend    backend.Backend
	renderer   *renderer.Renderer
	dispatcher *dispatcher.Dispatcher

	saveKey key.Event
	gutter  gutter.Config

	running bool
}

// Options configures the application.
type Options struct {
	// Path is the file to edit. It is created if it does not exist.
	Path string

	// ConfigPath is the path to the configuration file.
	// Empty means the default location.
	ConfigPath string

	// Config, when set, is used instead of loading configuration.
	Config *config.Config

	// LogLevel overrides logging.level when set.
	LogLevel string

	// LogFile overrides logging.file when set.
	LogFile string

	// LineNumbers forces the line-number gutter on.
	LineNumbers bool
}

// New opens the file and prepares the session. Configuration problems are
// logged and defaults used; failing to read or create the file is fatal.
func New(opts Options) (*Application, error) {
	if opts.Path == "" {
		return nil, ErrNoPath
	}

	app := &Application{
		opts:    opts,
		metrics: NewMetrics(),
	}

	cfgErr := app.initConfig()
	app.initLogger()

	if cfgErr != nil {
		app.logger.WithComponent("config").Warn("using defaults: %v", cfgErr)
	}

	app.initEditor()

	// Section accessors record type errors, so report them once all
	// sections have been read.
	for path, err := range app.config.ConfigErrors() {
		app.logger.WithComponent("config").WithField("setting", path).Warn("%v", err)
	}

	doc, err := Open(opts.Path)
	if err != nil {
		app.logger.Error("open failed: %v", err)
		app.Close()
		return nil, err
	}
	app.doc = doc
	app.session = engine.New(engine.WithLines(doc.Lines))

	app.logger.WithFields(map[string]any{
		"path":    doc.Path,
		"created": doc.Created,
		"lines":   app.session.Document().LineCount(),
	}).Info("opened")

	return app, nil
}

// initConfig loads configuration and applies command-line overrides.
func (app *Application) initConfig() error {
	var err error
	if app.opts.Config != nil {
		app.config = app.opts.Config
	} else {
		path := app.opts.ConfigPath
		if path == "" {
			path = config.DefaultPath()
		}
		app.config, err = config.Load(config.WithPath(path))
	}

	if app.opts.LogLevel != "" {
		_ = app.config.Set("logging.level", app.opts.LogLevel)
	}
	if app.opts.LogFile != "" {
		_ = app.config.Set("logging.file", app.opts.LogFile)
	}
	if app.opts.LineNumbers {
		_ = app.config.Set("editor.lineNumbers", true)
	}
	return err
}

// initLogger opens the session log. A log file that cannot be opened
// disables logging rather than failing the session.
func (app *Application) initLogger() {
	cfg := app.config.Logging()
	logger, closer, err := OpenLogger(cfg.File, ParseLogLevel(cfg.Level))
	if err != nil {
		app.logger = NullLogger
		app.logCloser = nopCloser{}
		return
	}
	app.logger = logger
	app.logCloser = closer
}

// initEditor resolves the save key and gutter from the editor settings.
func (app *Application) initEditor() {
	editor := app.config.Editor()

	app.saveKey = dispatcher.DefaultConfig().SaveKey
	if ev, err := dispatcher.ParseSaveKey(editor.SaveKey); err != nil {
		app.logger.WithComponent("config").Warn("invalid save key %q, using %s: %v", editor.SaveKey, app.saveKey, err)
	} else {
		app.saveKey = ev
	}

	app.gutter = gutter.DefaultConfig()
	app.gutter.ShowLineNumbers = editor.LineNumbers
	app.gutter.Mode = gutter.ParseMode(editor.LineNumberMode)
}

// Document returns the file being edited.
func (app *Application) Document() *Document {
	return app.doc
}

// Session returns the editing session.
func (app *Application) Session() *engine.Session {
	return app.session
}

// SaveKey returns the key that saves and ends the session.
func (app *Application) SaveKey() key.Event {
	return app.saveKey
}

// Logger returns the application's logger instance.
func (app *Application) Logger() *Logger {
	return app.logger
}

// Metrics returns the session metrics.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	if app.running {
		return ErrAlreadyRunning
	}
	app.backend = b
	return nil
}

// Run takes over the backend and processes events until the save key is
// pressed, then writes the document. It returns nil once the file has
// been saved.
func (app *Application) Run() error {
	if app.backend == nil {
		return ErrNoBackend
	}
	if app.running {
		return ErrAlreadyRunning
	}
	app.running = true
	defer func() { app.running = false }()

	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer app.backend.Shutdown()

	app.renderer = renderer.New(app.backend, app.gutter)
	app.dispatcher = dispatcher.New(app.session, app.backend, dispatcher.Config{
		SaveKey: app.saveKey,
		Gutter:  app.gutter,
	})

	app.dispatcher.Reconcile()
	app.render()

	if err := app.eventLoop(); !errors.Is(err, ErrQuit) {
		return err
	}
	return app.Save()
}

// eventLoop reads one event at a time until one of them ends the session.
func (app *Application) eventLoop() error {
	for {
		if err := app.handleBackendEvent(app.backend.PollEvent()); err != nil {
			return err
		}
	}
}

// Save writes the session's lines to the file.
func (app *Application) Save() error {
	lines := app.session.Lines()
	if err := app.doc.Save(lines); err != nil {
		app.logger.Error("%v", err)
		return err
	}
	app.logger.WithFields(map[string]any{
		"path":  app.doc.Path,
		"lines": len(lines),
	}).Info("saved")
	return nil
}

// Close logs the session summary and releases the log file.
func (app *Application) Close() {
	if app.logCloser == nil {
		return
	}
	app.logger.WithFields(app.metrics.Snapshot().Fields()).Info("shutdown")
	_ = app.logCloser.Close()
	app.logCloser = nil
}

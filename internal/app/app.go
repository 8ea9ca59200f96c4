package app

import (
	"context"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/dshills/polydraw/internal/config"
	"github.com/dshills/polydraw/internal/engine"
	"github.com/dshills/polydraw/internal/event"
	"github.com/dshills/polydraw/internal/input"
	"github.com/dshills/polydraw/internal/renderer"
	"github.com/dshills/polydraw/internal/session"
)

// Application is the central coordinator for all polydraw components.
// It manages component lifecycles, wiring, and the main event loop.
type Application struct {
	mu sync.RWMutex

	// Core infrastructure
	bus    *event.Bus
	cfg    *config.Config
	logger *Logger

	// Drawing components
	engine *engine.Engine
	keymap *input.Keymap
	clicks *input.ClickTracker
	view   *renderer.View

	// Terminal
	backend renderer.Backend

	// Config hot reload
	watcher *config.Watcher

	// Resolved drawing file path, empty when persistence is off
	sessionPath string

	logFile *os.File

	// State
	running atomic.Bool
	done    chan struct{}

	// Options
	opts Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file. Empty uses the
	// platform default.
	ConfigPath string

	// SessionPath overrides the configured drawing file.
	SessionPath string

	// Backend supplies the terminal. Nil creates a tcell terminal when
	// the event loop starts.
	Backend renderer.Backend

	// LogLevel overrides the configured logging verbosity.
	LogLevel string

	// Debug forces debug-level logging.
	Debug bool
}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts: opts,
		done: make(chan struct{}),
	}

	if err := app.bootstrap(); err != nil {
		app.Shutdown()
		return nil, err
	}

	return app, nil
}

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Config
	cfgPath := app.opts.ConfigPath
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	app.cfg = cfg

	// 2. Logger. The terminal owns the screen, so without a log file
	// output is discarded.
	if err := app.initLogger(); err != nil {
		return &InitError{Component: "logger", Err: err}
	}

	// 3. Event bus
	app.bus = event.NewBus()
	if err := app.registerSubscriptions(); err != nil {
		return &InitError{Component: "event bus", Err: err}
	}

	// 4. Drawing engine
	app.engine = engine.New(engine.WithMaxUndoEntries(cfg.History.MaxEntries))

	// 5. Input
	app.keymap = input.DefaultKeymap()
	if cfg.Input.KeymapPath != "" {
		if err := app.keymap.LoadFile(cfg.Input.KeymapPath); err != nil {
			return &InitError{Component: "keymap", Err: err}
		}
	}
	app.clicks = input.NewClickTracker(cfg.DoubleClickInterval(), 1)

	// 6. View
	app.view = renderer.NewView(renderer.ThemeByName(cfg.UI.Theme), cfg.UI.StatusLine, 0, 0)

	// 7. Session restore
	app.sessionPath = app.opts.SessionPath
	if app.sessionPath == "" {
		app.sessionPath = cfg.Session.Path
	}
	if err := app.restoreSession(); err != nil {
		return &InitError{Component: "session", Err: err}
	}

	// 8. Config hot reload
	if w, err := config.NewWatcher(cfgPath, config.DefaultDebounce, app.onConfigReload); err != nil {
		// Watch errors are non-fatal, the current config stays in effect.
		app.logger.Warn("config watch unavailable: %v", err)
	} else {
		app.watcher = w
	}

	app.backend = app.opts.Backend

	return nil
}

// initLogger opens the configured log file and builds the logger.
func (app *Application) initLogger() error {
	lc := LoggerConfig{Level: ParseLogLevel(app.cfg.Logging.Level), Prefix: "polydraw"}
	if app.opts.LogLevel != "" {
		lc.Level = ParseLogLevel(app.opts.LogLevel)
	}
	if app.opts.Debug {
		lc.Level = LogLevelDebug
	}

	if app.cfg.Logging.Path != "" {
		f, err := os.OpenFile(app.cfg.Logging.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		app.logFile = f
		lc.Output = f
	} else {
		lc.Output = io.Discard
	}

	app.logger = NewLogger(lc)
	return nil
}

// restoreSession loads the drawing file if one is configured and present.
func (app *Application) restoreSession() error {
	if app.sessionPath == "" {
		return nil
	}

	doc, err := session.LoadFile(app.sessionPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	app.engine.Load(doc.Finished, doc.Current)
	app.publish(event.New(event.TopicSessionLoaded, event.SessionSaved{
		Path:     app.sessionPath,
		Polygons: len(doc.Finished),
	}, "app"))
	return nil
}

// SaveSession writes the current drawing to the session path.
func (app *Application) SaveSession() error {
	app.mu.RLock()
	path := app.sessionPath
	app.mu.RUnlock()

	if path == "" {
		return nil
	}

	doc := session.Document{
		Finished: app.engine.Finished(),
		Current:  app.engine.Current(),
	}
	if err := session.SaveFile(path, doc); err != nil {
		return err
	}

	app.publish(event.New(event.TopicSessionSaved, event.SessionSaved{
		Path:     path,
		Polygons: len(doc.Finished),
	}, "app"))
	return nil
}

// onConfigReload applies a changed config file to the running view.
func (app *Application) onConfigReload(cfg *config.Config, err error) {
	if err != nil {
		app.logger.Warn("config reload failed: %v", err)
		return
	}

	app.mu.Lock()
	app.cfg = cfg
	app.mu.Unlock()

	app.view.SetTheme(renderer.ThemeByName(cfg.UI.Theme))
	app.view.SetStatusLine(cfg.UI.StatusLine)
	app.logger.SetLevel(ParseLogLevel(cfg.Logging.Level))

	app.logger.Info("config reloaded")
	app.publish(event.New(event.TopicConfigReloaded, event.ConfigReloaded{
		Path: app.opts.ConfigPath,
	}, "app"))
	app.requestRender()
}

// publish sends an event, logging handler failures instead of
// propagating them.
func (app *Application) publish(ev event.Event) {
	if err := app.bus.Publish(context.Background(), ev); err != nil {
		app.logger.Error("event %s: %v", ev.Topic, err)
	}
}

// Engine returns the drawing engine.
func (app *Application) Engine() *engine.Engine {
	return app.engine
}

// Bus returns the event bus.
func (app *Application) Bus() *event.Bus {
	return app.bus
}

// Config returns the active configuration.
func (app *Application) Config() *config.Config {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.cfg
}

// Running reports whether the event loop is active.
func (app *Application) Running() bool {
	return app.running.Load()
}

// Shutdown releases the application's resources. Safe to call more
// than once.
func (app *Application) Shutdown() {
	if app.watcher != nil {
		_ = app.watcher.Close()
		app.watcher = nil
	}
	if app.backend != nil {
		app.backend.Fini()
	}
	if app.logFile != nil {
		_ = app.logFile.Close()
		app.logFile = nil
	}
}

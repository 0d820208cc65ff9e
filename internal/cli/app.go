// Package cli wires the readably commands to the style engine and its stores.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/readably/internal/app/messaging"
	"github.com/bnema/readably/internal/application/port"
	"github.com/bnema/readably/internal/application/usecase"
	"github.com/bnema/readably/internal/cli/styles"
	"github.com/bnema/readably/internal/domain/build"
	"github.com/bnema/readably/internal/domain/repository"
	pageurl "github.com/bnema/readably/internal/domain/url"
	"github.com/bnema/readably/internal/infrastructure/config"
	"github.com/bnema/readably/internal/infrastructure/fetch"
	"github.com/bnema/readably/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/readably/internal/infrastructure/persistence/writeback"
	"github.com/bnema/readably/internal/infrastructure/stylesink"
	"github.com/bnema/readably/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	db *sqlite.LazyDB

	// Settings queues writes in the background; Close drains it.
	Settings     *writeback.Writer
	Interactions repository.InteractionRepository

	RecordUC *usecase.RecordInteractionUseCase
	Loader   port.PageLoader

	// Context with logger
	ctx context.Context
	// tuiCtx logs to the file only, or nowhere.
	tuiCtx     context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies.
// The database is opened on first use.
func NewApp(configFile string) (*App, error) {
	mgr, cfg := loadConfig(configFile)

	logger, tuiLogger, logCleanup := newLoggers(cfg)
	ctx := logging.WithContext(context.Background(), logger)

	if mgr == nil {
		logger.Debug().Msg("using default configuration")
	}

	lazy := sqlite.NewLazyDB(cfg.Database.Path)
	settings := writeback.NewWriter(ctx, sqlite.NewLazySettingsRepository(lazy))
	interactions := sqlite.NewLazyInteractionRepository(lazy)

	loader := fetch.NewLoader(fetch.Options{
		Timeout:   time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second,
		RetryMax:  cfg.Fetch.RetryMax,
		UserAgent: cfg.Fetch.UserAgent,
	})

	logger.Debug().Str("db_path", cfg.Database.Path).Msg("app initialized")

	return &App{
		Config:       cfg,
		Manager:      mgr,
		Theme:        styles.NewTheme(),
		db:           lazy,
		Settings:     settings,
		Interactions: interactions,
		RecordUC:     usecase.NewRecordInteractionUseCase(interactions, nil),
		Loader:       loader,
		ctx:          ctx,
		tuiCtx:       logging.WithContext(context.Background(), tuiLogger),
		logCleanup:   logCleanup,
	}, nil
}

// newLoggers builds the command logger and the terminal UI logger. Both share
// the rotated log file when file logging is enabled.
func newLoggers(cfg *config.Config) (logger, tuiLogger zerolog.Logger, cleanup func()) {
	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(cfg.Logging.Level)
	logCfg.Format = string(cfg.Logging.Format)
	logCfg.TimeFormat = "15:04:05"

	loggers, cleanup, err := logging.NewWithFile(logCfg, logging.FileConfig{
		Enabled:       cfg.Logging.EnableFileLog,
		WriteToStderr: true,
		Rotator: logging.RotatorConfig{
			Dir:        cfg.Logging.LogDir,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAge,
			Compress:   cfg.Logging.Compress,
		},
	})
	if err != nil {
		loggers.Main.Warn().Err(err).Msg("file logging disabled")
	}
	return loggers.Main, loggers.Quiet, cleanup
}

// Close flushes queued settings writes and releases the database.
func (a *App) Close() error {
	if a.Settings != nil {
		if err := a.Settings.Close(); err != nil {
			logging.FromContext(a.ctx).Warn().Err(err).Msg("pending settings writes failed")
		}
	}
	var err error
	if a.db != nil {
		err = a.db.Close()
	}
	if a.logCleanup != nil {
		a.logCleanup()
		a.logCleanup = nil
	}
	return err
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// TUICtx returns a context whose logger never writes to the terminal.
func (a *App) TUICtx() context.Context {
	return a.tuiCtx
}

// RouterOptions maps the toggle section of the config.
func (a *App) RouterOptions() messaging.Options {
	return routerOptions(a.Config)
}

func routerOptions(cfg *config.Config) messaging.Options {
	return messaging.Options{
		ContrastToggleLevel: cfg.Toggles.ContrastLevel,
		ZoomToggleOffset:    cfg.Toggles.ZoomOffset,
	}
}

// NewEngine returns a style engine rendering into sink and persisting through the write-back queue.
func (a *App) NewEngine(sink port.StyleSink) *usecase.ApplyStyleUseCase {
	return usecase.NewApplyStyleUseCase(sink, a.Settings)
}

// Attach restores the stored settings into sink and returns a router for it.
// A store failure is logged and the page starts from defaults.
func (a *App) Attach(ctx context.Context, sink port.StyleSink) (*messaging.Router, error) {
	engine := a.NewEngine(sink)

	initial, err := engine.Restore(ctx)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("restoring stored settings failed")
		if renderErr := engine.Render(ctx, initial); renderErr != nil {
			return nil, fmt.Errorf("failed to render page: %w", renderErr)
		}
	}

	return messaging.NewRouter(engine, initial, a.RouterOptions()), nil
}

// WatchConfig reloads the config file on change and pushes new toggle targets to router.
func (a *App) WatchConfig(router *messaging.Router) error {
	if a.Manager == nil {
		return nil
	}
	a.Manager.OnConfigChange(func(cfg *config.Config) {
		router.SetOptions(routerOptions(cfg))
		logging.FromContext(a.ctx).Info().
			Int("contrast_level", cfg.Toggles.ContrastLevel).
			Int("zoom_offset", cfg.Toggles.ZoomOffset).
			Msg("toggle targets reloaded")
	})
	return a.Manager.Watch()
}

// Page is a loaded document plus the sink that styles it.
// Blank pages have no document and style an in-memory sink.
type Page struct {
	Target string
	Doc    *stylesink.Document
	Sink   port.StyleSink
}

// OpenPage loads target. An empty target yields a blank page.
func (a *App) OpenPage(ctx context.Context, target string) (*Page, error) {
	if target == "" {
		return &Page{Sink: stylesink.NewMemory()}, nil
	}

	ctx = logging.WithPage(ctx, target)
	raw, err := a.Loader.Load(ctx, target)
	if err != nil {
		return nil, err
	}

	doc, err := stylesink.NewDocumentFromBytes(raw)
	if err != nil {
		return nil, err
	}
	event := logging.FromContext(ctx).Debug().Int("bytes", len(raw))
	if normalized := pageurl.Normalize(target, nil); pageurl.IsRemote(normalized) {
		event = event.Str("domain", pageurl.ExtractDomain(normalized))
	}
	event.Msg("page loaded")
	return &Page{Target: target, Doc: doc, Sink: doc}, nil
}

// WritePage renders the styled document to out, or to stdout when out is empty or "-".
// Blank pages write nothing.
func (a *App) WritePage(p *Page, out string) error {
	if p.Doc == nil {
		return nil
	}

	var w io.Writer = os.Stdout
	if out != "" && out != "-" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", out, err)
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	if err := p.Doc.Render(w); err != nil {
		return fmt.Errorf("failed to write page: %w", err)
	}
	return nil
}

// loadConfig loads configuration, falling back to defaults. The manager is nil
// when no config file could be used.
func loadConfig(configFile string) (*config.Manager, *config.Config) {
	mgr, err := config.NewManager(configFile)
	if err != nil {
		return nil, defaultConfig()
	}

	if err := mgr.Load(); err != nil {
		logger := logging.NewFromEnv()
		logger.Warn().Err(err).Msg("failed to load config, using defaults")
		return nil, defaultConfig()
	}

	return mgr, mgr.Get()
}

func defaultConfig() *config.Config {
	cfg := config.DefaultConfig()
	if dbPath, err := config.GetDatabaseFile(); err == nil {
		cfg.Database.Path = dbPath
	}
	return cfg
}

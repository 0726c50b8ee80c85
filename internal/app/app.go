package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/roster/internal/api"
	"github.com/five82/roster/internal/config"
	"github.com/five82/roster/internal/prefs"
	"github.com/five82/roster/internal/state"
	"github.com/five82/roster/internal/ui"
)

// Options configure the roster application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/roster/prefs.toml
	APIURL     string // overrides api_url from the config file
}

// Env is the wired dependency set shared by the TUI and the CLI commands.
type Env struct {
	Config    config.Config
	Prefs     prefs.Prefs
	PrefsPath string
	Client    *api.Client
	Store     *state.Store
}

// Setup loads configuration and preferences and builds the API client and
// an empty store.
func Setup(opts Options) (*Env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if u := strings.TrimSpace(opts.APIURL); u != "" {
		cfg.APIURL = u
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	client, err := api.NewClient(cfg.APIURL, api.WithTimeout(cfg.RequestTimeout))
	if err != nil {
		return nil, fmt.Errorf("init api client: %w", err)
	}

	return &Env{
		Config:    cfg,
		Prefs:     prefs.Load(prefsPath),
		PrefsPath: prefsPath,
		Client:    client,
		Store:     &state.Store{},
	}, nil
}

// Run boots the roster TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	env, err := Setup(opts)
	if err != nil {
		return err
	}

	closeLog, err := redirectLog(env.Config.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	log.Printf("roster starting against %s", env.Client.BaseURL())

	return ui.Run(ctx, ui.Options{
		Context:   ctx,
		Service:   env.Client,
		Store:     env.Store,
		Locale:    env.Config.Language(),
		Prefs:     env.Prefs,
		PrefsPath: env.PrefsPath,
		Endpoint:  env.Client.BaseURL(),
	})
}

// redirectLog points the standard logger at path so log output does not
// land on the alternate screen. An empty path discards log output.
func redirectLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(path, "roster")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return func() { _ = f.Close() }, nil
}

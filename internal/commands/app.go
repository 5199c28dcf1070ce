package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/balkashynov/swatch/internal/colorapi"
	"github.com/balkashynov/swatch/internal/config"
	"github.com/balkashynov/swatch/internal/db"
	"github.com/balkashynov/swatch/internal/export"
	"github.com/balkashynov/swatch/internal/logging"
	"github.com/balkashynov/swatch/internal/models"
	"github.com/balkashynov/swatch/internal/session"
)

// appOptions selects the collaborators that differ between the TUI and the
// one-shot commands
type appOptions struct {
	notifier  session.Notifier
	theme     session.ThemeSink
	logToFile bool // the TUI owns the terminal, so it logs to a file
}

// app wires config, logging, the session store and the session manager
type app struct {
	cfg     config.Config
	log     hclog.Logger
	store   *db.Store
	session *session.Manager

	logCloser io.Closer
}

// newApp builds everything a command needs from its flags
func newApp(cmd *cobra.Command, opts appOptions) (*app, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	debug, _ := cmd.Flags().GetBool("debug")
	logOpts := logging.Options{Level: cfg.Log.Level, Debug: debug, File: cfg.Log.File}
	if !opts.logToFile {
		logOpts.Output = os.Stderr
	}
	log, logCloser, err := logging.New(logOpts)
	if err != nil {
		return nil, err
	}
	// runs share one log file, the id tells them apart
	log = log.With("run", uuid.NewString()[:8])

	store, err := db.Open(log)
	if err != nil {
		logCloser.Close()
		return nil, err
	}

	client := colorapi.NewClient(colorapi.Options{
		BaseURL:   cfg.API.BaseURL,
		Mode:      cfg.API.Mode,
		Count:     cfg.API.Count,
		Timeout:   cfg.API.Timeout,
		UserAgent: fmt.Sprintf("swatch/%s", version),
		Logger:    log,
	})

	mode := models.DisplayMode(cfg.UI.Dark)
	if cmd.Flags().Changed("dark") {
		dark, _ := cmd.Flags().GetBool("dark")
		mode = models.DisplayMode(dark)
	}

	s, err := session.New(session.Options{
		Fetcher:    client,
		Store:      store,
		Notifier:   opts.notifier,
		Downloader: export.FileDownloader{Dir: cfg.Export.Dir},
		Theme:      opts.theme,
		Logger:     log,
		Mode:       mode,
	})
	if err != nil {
		store.Close()
		logCloser.Close()
		return nil, err
	}

	log.Debug("session started", "api", cfg.API.BaseURL, "mode", mode.String())

	return &app{
		cfg:       cfg,
		log:       log,
		store:     store,
		session:   s,
		logCloser: logCloser,
	}, nil
}

// Close releases the session store and the log file
func (a *app) Close() {
	if err := a.store.Close(); err != nil {
		a.log.Warn("failed to close session store", "error", err)
	}
	a.logCloser.Close()
}

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gravitrone/operadoras/internal/api"
	"github.com/gravitrone/operadoras/internal/config"
	"github.com/gravitrone/operadoras/internal/logging"
)

// Globals holds the persistent flags shared by every command.
type Globals struct {
	BaseURL string
	Timeout time.Duration
	Debug   bool
}

// Bind registers the persistent flags on root.
func (g *Globals) Bind(root *cobra.Command) {
	flags := root.PersistentFlags()
	flags.StringVar(&g.BaseURL, "base-url", "", "API base URL (overrides config and "+config.BaseURLEnv+")")
	flags.DurationVar(&g.Timeout, "timeout", 0, "HTTP timeout per request, e.g. 5s")
	flags.BoolVar(&g.Debug, "debug", false, "log diagnostics to stderr")
}

// Env is what a command needs once flags and config are resolved.
type Env struct {
	Config *config.Config
	Client *api.Client
	Logger *logging.Logger
}

// Close releases the log file, if any.
func (e *Env) Close() error {
	return e.Logger.Close()
}

// Resolve loads the config, applies flag overrides and builds the client
// and logger. The dashboard owns the terminal, so with fileOnly set logs go
// to the log file and never to stderr.
func (g *Globals) Resolve(stderr io.Writer, fileOnly bool) (*Env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if g.BaseURL != "" {
		cfg.BaseURL = strings.TrimSpace(g.BaseURL)
	}
	if g.Timeout != 0 {
		cfg.Timeout = g.Timeout.String()
	}
	if g.Debug {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return nil, err
	}

	logCfg := logging.Config{Level: cfg.LogLevel, File: cfg.LogFile, Writer: stderr}
	if fileOnly {
		if logCfg.File == "" {
			logCfg.File = config.DefaultLogFile()
		}
	} else {
		logCfg.Console = g.Debug
	}
	logger, err := logging.New(logCfg)
	if err != nil {
		return nil, err
	}

	client := api.NewClient(cfg.BaseURL, timeout).WithLogger(logger.Logger)
	logger.Debug().Str("base_url", client.BaseURL()).Dur("timeout", timeout).Msg("client ready")
	return &Env{Config: cfg, Client: client, Logger: logger}, nil
}

func warn(w io.Writer, format string, args ...any) {
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, "warning: "+format+"\n", args...)
}

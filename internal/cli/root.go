package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"namesearch/internal/config"
	"namesearch/internal/eventbus"
	"namesearch/internal/logging"
	"namesearch/internal/ui"
)

type rootOptions struct {
	configPath  string
	logFile     string
	logLevel    string
	noAltScreen bool
}

// NewRootCommand creates the root command
func NewRootCommand(version, commit, date string) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "namesearch",
		Short: "Filter a list of names as you type",
		Long: `namesearch shows a search field above a fixed list of names.
Every keystroke filters the list to the names containing the typed text.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file path")
	rootCmd.Flags().StringVar(&opts.logFile, "log-file", "", "log file path (overrides config)")
	rootCmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log level: trace, debug, info, warn, error (overrides config)")
	rootCmd.Flags().BoolVar(&opts.noAltScreen, "no-alt-screen", false, "draw inline instead of using the alternate screen")

	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			if version == "dev" || version == "" {
				version = "development"
			}
			if commit == "none" || commit == "" {
				commit = "local-build"
			}
			if date == "unknown" || date == "" {
				date = "local-build"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "namesearch %s (%s) built on %s\n", version, commit, date)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

func run(cmd *cobra.Command, opts *rootOptions) error {
	bus := eventbus.New()

	// Config events fire before the log file is open; hold them until it is
	startup := recordEvents(bus, eventbus.EventConfigLoaded, eventbus.EventConfigSaved)

	svc := config.NewConfigServiceWithBus(opts.configPath, bus)
	cfg, err := loadOrCreateConfig(svc)
	if err != nil {
		return err
	}
	if err := applyOverrides(cmd, cfg, opts); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger, closer, err := logging.Setup(cfg.LogFile, level)
	if err != nil {
		return err
	}
	defer closer.Close()

	logger.Info("starting", "config", svc.Path(), "log_level", cfg.LogLevel)

	subscribeDiagnostics(bus, logger)
	startup.replay(bus)

	model := ui.NewModel(bus, cfg, logger)

	var programOpts []tea.ProgramOption
	if cfg.UISettings.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(model, programOpts...)
	model.SetProgram(p)

	if _, err := p.Run(); err != nil {
		logger.Error("error running program", "err", err)
		return fmt.Errorf("error running program: %w", err)
	}
	logger.Info("UI exited normally")

	return nil
}

// applyOverrides lets explicitly set flags win over the config file
func applyOverrides(cmd *cobra.Command, cfg *config.Config, opts *rootOptions) error {
	flags := cmd.Flags()
	if flags.Changed("log-file") {
		cfg.LogFile = opts.logFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if opts.noAltScreen {
		cfg.UISettings.AltScreen = false
	}
	return cfg.Validate()
}

// loadOrCreateConfig loads the config file, writing the defaults first if it does not exist yet
func loadOrCreateConfig(svc config.ConfigService) (*config.Config, error) {
	if _, err := os.Stat(svc.Path()); errors.Is(err, os.ErrNotExist) {
		if err := svc.Save(config.DefaultConfig()); err != nil {
			// Not fatal: Load falls back to the defaults
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}
	return svc.Load()
}

// eventRecorder keeps events published before anything can log them
type eventRecorder struct {
	events      []eventbus.DomainEvent
	unsubscribe []func()
}

func recordEvents(bus eventbus.EventBus, types ...eventbus.EventType) *eventRecorder {
	r := &eventRecorder{}
	for _, t := range types {
		r.unsubscribe = append(r.unsubscribe, bus.Subscribe(t, func(e eventbus.DomainEvent) {
			r.events = append(r.events, e)
		}))
	}
	return r
}

// replay stops recording and publishes the held events again, in order
func (r *eventRecorder) replay(bus eventbus.EventBus) {
	for _, unsubscribe := range r.unsubscribe {
		unsubscribe()
	}
	events := r.events
	r.events = nil
	for _, e := range events {
		bus.Publish(e)
	}
}

// subscribeDiagnostics records every UI event in the log file
func subscribeDiagnostics(bus eventbus.EventBus, logger *slog.Logger) {
	bus.Subscribe(eventbus.EventAppReady, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.AppReadyEvent); ok {
			logger.Info("UI ready", "records", event.RecordCount)
		}
	})
	bus.Subscribe(eventbus.EventQueryChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.QueryChangedEvent); ok {
			logging.Trace(logger, "query changed",
				"query", event.Query,
				"matches", event.MatchCount,
				"ids", event.MatchIDs)
		}
	})
	bus.Subscribe(eventbus.EventHelpPagerClosed, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.HelpPagerClosedEvent); ok && event.Err == nil {
			logger.Debug("help pager closed")
		}
	})
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigSavedEvent); ok {
			logger.Info("config written", "path", event.Path)
		}
	})
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigLoadedEvent); ok {
			logger.Debug("config loaded", "path", event.Path, "log_level", event.LogLevel)
		}
	})
}

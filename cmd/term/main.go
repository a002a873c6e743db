package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pedrobritto/gvt-tracker/internal/core/reps"
	"github.com/pedrobritto/gvt-tracker/internal/core/stopwatch"
	"github.com/pedrobritto/gvt-tracker/internal/logging"
	"github.com/pedrobritto/gvt-tracker/internal/platform"
	"github.com/pedrobritto/gvt-tracker/internal/storage"
	"github.com/pedrobritto/gvt-tracker/internal/ui/preferences"
	"github.com/pedrobritto/gvt-tracker/internal/ui/term"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const appName = "GVTTracker"

type options struct {
	configPath string
	statePath  string
	logPath    string
	debug      bool

	target    int
	cooldown  time.Duration
	millis    bool
	restart   bool
	wallClock bool
	noPersist bool
}

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "gvt-term",
		Short:         "Rep counter and rest stopwatch in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(opts.configPath)
			if err != nil {
				return err
			}
			if err := applyFlags(cmd, &settings, opts); err != nil {
				return err
			}
			return run(settings, opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "Settings file (default: user config dir)")
	cmd.Flags().StringVar(&opts.statePath, "state", "", "State file holding the rep count (default: user config dir)")
	cmd.Flags().StringVar(&opts.logPath, "log", "", "Log file (default: user config dir)")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	cmd.Flags().IntVar(&opts.target, "target", 0, "Target rep count")
	cmd.Flags().DurationVar(&opts.cooldown, "cooldown", 0, "Lock the add key for this long after each rep (0 disables)")
	cmd.Flags().BoolVar(&opts.millis, "millis", false, "Show hundredths on the stopwatch")
	cmd.Flags().BoolVar(&opts.restart, "restart", false, "Start always restarts the stopwatch from zero")
	cmd.Flags().BoolVar(&opts.wallClock, "wall-clock", false, "Measure elapsed time from the system clock instead of counting ticks")
	cmd.Flags().BoolVar(&opts.noPersist, "no-persist", false, "Do not load or save the rep count")

	return cmd
}

func loadSettings(configPath string) (preferences.Settings, error) {
	if configPath == "" {
		return storage.LoadSettings(appName)
	}
	return storage.LoadSettingsFile(configPath)
}

// applyFlags overrides file settings with the flags the user actually set.
func applyFlags(cmd *cobra.Command, settings *preferences.Settings, opts options) error {
	flags := cmd.Flags()
	if flags.Changed("target") {
		if opts.target < 0 {
			return fmt.Errorf("--target must be >= 0")
		}
		settings.TargetReps = opts.target
	}
	if flags.Changed("cooldown") {
		if opts.cooldown < 0 {
			return fmt.Errorf("--cooldown must be >= 0")
		}
		settings.CooldownEnabled = opts.cooldown > 0
		if opts.cooldown > 0 {
			settings.Cooldown = opts.cooldown
		}
	}
	if flags.Changed("millis") {
		settings.ShowMillis = opts.millis
	}
	if flags.Changed("restart") {
		settings.RestartOnStart = opts.restart
	}
	if flags.Changed("wall-clock") {
		settings.WallClock = opts.wallClock
	}
	if flags.Changed("no-persist") {
		settings.PersistReps = !opts.noPersist
	}
	return nil
}

func run(settings preferences.Settings, opts options) error {
	logger, err := openLogger(opts)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	tracker := reps.New(settings.RepsConfig())
	tracker.SetLogger(logger)
	if settings.PersistReps {
		statePath := opts.statePath
		if statePath == "" {
			statePath, err = storage.StatePath(appName)
			if err != nil {
				return err
			}
		}
		tracker.SetStore(storage.NewRepStore(storage.OpenFileStore(statePath, logger), logger))
	}

	watch := stopwatch.New(settings.StopwatchConfig(), stopwatch.Config{})
	watch.SetLogger(logger)
	defer watch.Close()

	model := term.New(tracker, watch)
	tracker.Initialize()
	logger.Info("terminal session started",
		zap.Int("target", tracker.Target()),
		zap.Int("count", tracker.Count()),
		zap.Duration("cooldown", tracker.Cooldown()))

	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}

func openLogger(opts options) (*zap.Logger, error) {
	logPath := opts.logPath
	if logPath == "" {
		configDir, err := platform.ConfigDir(appName)
		if err != nil {
			return nil, err
		}
		logPath = filepath.Join(configDir, "term.log")
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	return logging.ToFile(logPath, opts.debug)
}

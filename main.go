package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"

	"github.com/iburimskiy/clickspark/internal/config"
	"github.com/iburimskiy/clickspark/internal/input"
	"github.com/iburimskiy/clickspark/internal/overlay"
	"github.com/iburimskiy/clickspark/internal/panel"
	"github.com/iburimskiy/clickspark/internal/settings"
	"github.com/iburimskiy/clickspark/internal/sound/playback"
	"github.com/iburimskiy/clickspark/internal/spark"
)

func main() {
	if err := run(); err != nil {
		slog.Error("clickspark failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return buildCLI().ParseAndRun(ctx, os.Args[1:])
}

type globalFlags struct {
	dbPath   string
	logLevel string
}

type runConfig struct {
	source  string
	maxLive int
	watch   time.Duration
	noSound bool
	yUp     bool
}

func buildCLI() *ffcli.Command {
	var g globalFlags
	rootFlagSet := flag.NewFlagSet("clickspark", flag.ExitOnError)
	rootFlagSet.StringVar(&g.dbPath, "db", defaultDBPath(), "Settings database path")
	rootFlagSet.StringVar(&g.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	envOpts := []ff.Option{ff.WithEnvVarPrefix("CLICKSPARK")}

	// Run command
	var rc runConfig
	runFlagSet := flag.NewFlagSet("clickspark run", flag.ExitOnError)
	runFlagSet.StringVar(&rc.source, "source", "x11", "Pointer source: x11 or stdin (\"x y\" per line)")
	runFlagSet.IntVar(&rc.maxLive, "max-live", config.MaxLiveSparks, "Cap on live sparks, 0 for none")
	runFlagSet.DurationVar(&rc.watch, "watch", config.WatchInterval, "How often to poll the store for panel changes")
	runFlagSet.BoolVar(&rc.noSound, "no-sound", false, "Never open the audio device")
	runFlagSet.BoolVar(&rc.yUp, "y-up", false, "stdin coordinates have a bottom-left origin")

	runCmd := &ffcli.Command{
		Name:       "run",
		ShortUsage: "clickspark run [flags]",
		ShortHelp:  "Show sparks wherever the mouse is clicked",
		FlagSet:    runFlagSet,
		Options:    envOpts,
		Exec: func(ctx context.Context, _ []string) error {
			return withStore(g, func(store *settings.Store) error {
				return execRun(ctx, store, rc)
			})
		},
	}

	panelCmd := &ffcli.Command{
		Name:       "panel",
		ShortUsage: "clickspark panel",
		ShortHelp:  "Open the settings window",
		Exec: func(ctx context.Context, _ []string) error {
			return withStore(g, func(store *settings.Store) error {
				return execPanel(ctx, store)
			})
		},
	}

	getCmd := &ffcli.Command{
		Name:       "get",
		ShortUsage: "clickspark get [key]",
		ShortHelp:  "Print all settings as TOML, or one value",
		Exec: func(ctx context.Context, args []string) error {
			return withStore(g, func(store *settings.Store) error {
				return execGet(ctx, store, args)
			})
		},
	}

	setCmd := &ffcli.Command{
		Name:       "set",
		ShortUsage: "clickspark set <key> <value>",
		ShortHelp:  "Change one setting",
		Exec: func(ctx context.Context, args []string) error {
			if len(args) != 2 {
				return flag.ErrHelp
			}
			return withStore(g, func(store *settings.Store) error {
				return execSet(ctx, store, args[0], args[1])
			})
		},
	}

	importCmd := &ffcli.Command{
		Name:       "import",
		ShortUsage: "clickspark import <preset.toml>",
		ShortHelp:  "Replace settings with a TOML preset",
		Exec: func(ctx context.Context, args []string) error {
			if len(args) != 1 {
				return flag.ErrHelp
			}
			return withStore(g, func(store *settings.Store) error {
				return execImport(ctx, store, args[0])
			})
		},
	}

	exportCmd := &ffcli.Command{
		Name:       "export",
		ShortUsage: "clickspark export [preset.toml]",
		ShortHelp:  "Write settings as a TOML preset (stdout by default)",
		Exec: func(ctx context.Context, args []string) error {
			return withStore(g, func(store *settings.Store) error {
				return execExport(ctx, store, args)
			})
		},
	}

	resetCmd := &ffcli.Command{
		Name:       "reset",
		ShortUsage: "clickspark reset",
		ShortHelp:  "Restore default settings",
		Exec: func(ctx context.Context, _ []string) error {
			return withStore(g, func(store *settings.Store) error {
				return store.Reset(ctx)
			})
		},
	}

	return &ffcli.Command{
		ShortUsage:  "clickspark [flags] <subcommand>",
		ShortHelp:   "System-wide click spark effect",
		LongHelp:    "Run the overlay with 'clickspark run' and tune it from 'clickspark panel'.\nBoth share the settings database, so panel changes reach the overlay live.",
		FlagSet:     rootFlagSet,
		Options:     envOpts,
		Subcommands: []*ffcli.Command{runCmd, panelCmd, getCmd, setCmd, importCmd, exportCmd, resetCmd},
		Exec: func(ctx context.Context, _ []string) error {
			return withStore(g, func(store *settings.Store) error {
				return execRun(ctx, store, runConfig{
					source:  "x11",
					maxLive: config.MaxLiveSparks,
					watch:   config.WatchInterval,
				})
			})
		},
	}
}

func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "clickspark.db"
	}
	return filepath.Join(dir, "clickspark", "settings.db")
}

// withStore installs the logger, opens the settings database and hands it
// to fn.
func withStore(g globalFlags, fn func(store *settings.Store) error) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(g.logLevel)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	if err := os.MkdirAll(filepath.Dir(g.dbPath), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	store, err := settings.Open(g.dbPath)
	if err != nil {
		return err
	}
	defer store.Close()
	slog.Debug("settings database opened", "path", g.dbPath)

	return fn(store)
}

func execRun(ctx context.Context, store *settings.Store, rc runConfig) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	vals, err := store.Load(ctx)
	if err != nil {
		return err
	}
	s := settings.New(vals)
	s.Subscribe(func(_, cur settings.Values) {
		slog.Info("settings changed",
			"enabled", cur.Enabled,
			"color", cur.Color.Hex(),
			"count", cur.ParticleCount,
			"size", cur.ParticleSize,
			"radius", cur.Radius,
			"duration_ms", cur.DurationMs,
			"scale", cur.Scale,
			"click_sound", cur.ClickSound,
		)
	})

	opts := []spark.Option{
		spark.WithMaxLive(rc.maxLive),
		spark.WithLogger(slog.Default().With("component", "engine")),
	}
	if !rc.noSound {
		player := playback.NewPlayer()
		opts = append(opts, spark.WithOnTrigger(func(spark.Point, int) {
			if !s.ClickSound() {
				return
			}
			if err := player.Tick(); err != nil {
				slog.Warn("click sound", "error", err)
			}
		}))
	}
	engine := spark.NewEngine(s, opts...)

	monitor := ebiten.Monitor()
	width, height := monitor.Size()
	src, err := input.New(rc.source, input.Options{
		Scale:  monitor.DeviceScaleFactor(),
		Height: float64(height),
		YUp:    rc.yUp,
		Lines:  os.Stdin,
	})
	if err != nil {
		return err
	}

	go settings.Watch(ctx, store, s, rc.watch)
	go func() {
		err := src.Run(ctx, func(p spark.Point) { engine.Trigger(p) })
		switch {
		case errors.Is(err, input.ErrNoDisplay):
			slog.Error("pointer capture unavailable; try -source stdin", "error", err)
			cancel()
		case err != nil:
			slog.Error("pointer source stopped", "error", err)
			cancel()
		}
	}()

	slog.Info("overlay started", "width", width, "height", height, "source", rc.source, "enabled", vals.Enabled)
	return overlay.Run(overlay.New(ctx.Done(), engine, s, width, height))
}

func execPanel(ctx context.Context, store *settings.Store) error {
	vals, err := store.Load(ctx)
	if err != nil {
		return err
	}
	p, err := panel.New(ctx.Done(), settings.New(vals), store)
	if err != nil {
		return err
	}
	return panel.Run(p)
}

func execGet(ctx context.Context, store *settings.Store, args []string) error {
	vals, err := store.Load(ctx)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return settings.WritePreset(os.Stdout, vals)
	}
	for _, key := range args {
		raw, ok := vals.Encode()[key]
		if !ok {
			return fmt.Errorf("%w: %q", settings.ErrUnknownKey, key)
		}
		fmt.Println(raw)
	}
	return nil
}

func execSet(ctx context.Context, store *settings.Store, key, raw string) error {
	vals, err := store.Load(ctx)
	if err != nil {
		return err
	}
	if err := vals.SetKey(key, raw); err != nil {
		return err
	}
	vals = settings.Clamp(vals)
	if err := store.Save(ctx, vals); err != nil {
		return err
	}
	slog.Info("setting saved", "key", key, "value", vals.Encode()[key])
	return nil
}

func execImport(ctx context.Context, store *settings.Store, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	vals, err := settings.ReadPreset(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := store.Save(ctx, vals); err != nil {
		return err
	}
	slog.Info("preset imported", "path", path)
	return nil
}

func execExport(ctx context.Context, store *settings.Store, args []string) error {
	vals, err := store.Load(ctx)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return settings.WritePreset(os.Stdout, vals)
	}

	f, err := os.Create(args[0])
	if err != nil {
		return err
	}
	if err := settings.WritePreset(f, vals); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

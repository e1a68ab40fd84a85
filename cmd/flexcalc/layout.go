package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/x/ansi"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/grindlemire/go-flex/internal/config"
	"github.com/grindlemire/go-flex/internal/debug"
	"github.com/grindlemire/go-flex/internal/render"
	"github.com/grindlemire/go-flex/internal/scene"
)

// usageError marks command line mistakes, which exit with status 2.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

type options struct {
	width      int
	height     int
	format     string
	border     string
	outline    bool
	watch      bool
	stats      bool
	configPath string
	logFile    string
	logLevel   string
}

func newFlagSet(o *options) *flag.FlagSet {
	fs := flag.NewFlagSet("flexcalc", flag.ContinueOnError)
	fs.SortFlags = false
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	fs.IntVarP(&o.width, "width", "W", 0, "viewport width in cells (0 uses the scene viewport)")
	fs.IntVarP(&o.height, "height", "H", 0, "viewport height in cells (0 uses the scene viewport)")
	fs.StringVarP(&o.format, "format", "o", "", "output format: grid, table or plain")
	fs.StringVarP(&o.border, "border", "b", "", "grid border: single, double, rounded or thick")
	fs.BoolVar(&o.outline, "outline", false, "outline every node in grid output, not only bordered ones")
	fs.BoolVarP(&o.watch, "watch", "w", false, "lay the scene out again whenever the file changes")
	fs.BoolVar(&o.stats, "stats", false, "print layout pass statistics to stderr")
	fs.StringVarP(&o.configPath, "config", "c", "", "config file")
	fs.StringVar(&o.logFile, "log-file", "", "write debug logs to this file")
	fs.StringVar(&o.logLevel, "log-level", "", "log level: debug, info, warn or error")
	return fs
}

// apply overrides cfg with the flags that were given explicitly.
func (o *options) apply(fs *flag.FlagSet, cfg *config.Config) {
	if fs.Changed("width") {
		cfg.Width = o.width
	}
	if fs.Changed("height") {
		cfg.Height = o.height
	}
	if fs.Changed("format") {
		cfg.Format = o.format
	}
	if fs.Changed("border") {
		cfg.Border = o.border
	}
	if fs.Changed("log-file") {
		cfg.Log.File = o.logFile
	}
	if fs.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
}

func runLayout(args []string, stdout, stderr io.Writer) error {
	var o options
	fs := newFlagSet(&o)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(stdout)
			return nil
		}
		return usageError{err}
	}
	if fs.NArg() != 1 {
		return usageError{fmt.Errorf("expected one scene file, got %d arguments", fs.NArg())}
	}
	path := fs.Arg(0)

	cfg, err := loadConfig(o.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "warning: %v\n", err)
	}
	o.apply(fs, &cfg)
	if err := cfg.Validate(); err != nil {
		return usageError{err}
	}

	if err := setupLogging(cfg.Log); err != nil {
		return err
	}
	defer func() { _ = debug.Close() }()

	border, err := render.ParseBorder(cfg.Border)
	if err != nil {
		return usageError{err}
	}

	r := &runner{
		cfg:       cfg,
		opts:      render.Options{Border: border, Outline: o.outline},
		widthSet:  fs.Changed("width"),
		heightSet: fs.Changed("height"),
		stats:     o.stats,
		stdout:    stdout,
		stderr:    stderr,
	}

	if !o.watch {
		return r.renderFile(path)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	r.clear = true
	return watch(ctx, path, func() {
		if err := r.renderFile(path); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
	})
}

func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

func configPathForHelp() string {
	return config.Path()
}

// setupLogging points the debug logger at the configured file, or at the
// file named by FLEX_DEBUG when no file is configured.
func setupLogging(cfg config.LogConfig) error {
	if cfg.File == "" {
		_, err := debug.InitFromEnv()
		return err
	}
	if err := debug.Init(debug.Config{Path: cfg.File, Level: cfg.Level}); err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}
	return nil
}

// runner lays out and prints one scene file.
type runner struct {
	cfg       config.Config
	opts      render.Options
	widthSet  bool
	heightSet bool
	stats     bool
	clear     bool
	stdout    io.Writer
	stderr    io.Writer
}

func (r *runner) renderFile(path string) error {
	log := debug.Logger()

	s, err := scene.Load(path)
	if err != nil {
		return err
	}

	width := viewportSize(r.widthSet, r.cfg.Width, s.Viewport.Width)
	height := viewportSize(r.heightSet, r.cfg.Height, s.Viewport.Height)
	stats := s.Calculate(width, height)
	log.Info("scene laid out",
		zap.String("path", path),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("nodes_visited", stats.NodesVisited),
	)

	out, err := render.Render(s, r.cfg.Format, r.opts)
	if err != nil {
		return err
	}
	if r.clear {
		io.WriteString(r.stdout, ansi.CursorHomePosition+ansi.EraseEntireScreen)
	}
	io.WriteString(r.stdout, out)
	if !strings.HasSuffix(out, "\n") {
		io.WriteString(r.stdout, "\n")
	}

	if r.stats {
		fmt.Fprintf(r.stderr, "generation %d: %d nodes visited, %d layout cache hits, %d measure calls, %d measure cache hits, %d freeze iterations\n",
			stats.Generation, stats.NodesVisited, stats.LayoutCacheHits,
			stats.MeasureCalls, stats.MeasureCacheHits, stats.FreezeIterations)
	}
	return nil
}

// viewportSize picks an explicit flag first, then the scene's own
// viewport, then the configured default.
func viewportSize(flagSet bool, configured, sceneSize int) int {
	if !flagSet && sceneSize > 0 {
		return sceneSize
	}
	return configured
}

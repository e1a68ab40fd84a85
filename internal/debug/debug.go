// Package debug holds the process-wide debug logger.
//
// Logging is a no-op until Init or SetLogger is called. When the
// FLEX_DEBUG environment variable names a file, InitFromEnv points the
// logger at it.
package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// EnvVar names the environment variable read by InitFromEnv.
const EnvVar = "FLEX_DEBUG"

// Config describes a rotating debug log file.
type Config struct {
	Path       string // Log file path; "debug.log" when empty
	Level      string // debug, info, warn or error; debug when empty
	MaxSizeMB  int    // Size before rotation
	MaxBackups int    // Rotated files to keep
	MaxAgeDays int    // Days to keep rotated files
}

var (
	logger atomic.Pointer[zap.Logger]

	mu     sync.Mutex
	writer *lumberjack.Logger
)

func init() {
	logger.Store(zap.NewNop())
}

// Logger returns the current logger. It is never nil.
func Logger() *zap.Logger {
	return logger.Load()
}

// SetLogger replaces the logger. A nil logger disables logging.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}

// Init initializes debug logging to the file described by cfg.
func Init(cfg Config) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(cfg)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(cfg Config) error {
	if cfg.Path == "" {
		cfg.Path = "debug.log"
	}
	if cfg.MaxSizeMB == 0 {
		cfg.MaxSizeMB = 10
	}
	if cfg.MaxBackups == 0 {
		cfg.MaxBackups = 3
	}
	if cfg.MaxAgeDays == 0 {
		cfg.MaxAgeDays = 7
	}

	level := zapcore.DebugLevel
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
	}

	// Ensure directory exists
	dir := filepath.Dir(cfg.Path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	if writer != nil {
		_ = writer.Close()
	}
	writer = &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.LowercaseLevelEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.AddSync(writer), level)
	logger.Store(zap.New(core).Named("flex"))
	return nil
}

// InitFromEnv initializes logging when EnvVar is set. It reports whether
// logging was enabled.
func InitFromEnv() (bool, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return false, nil
	}
	if err := Init(Config{Path: path}); err != nil {
		return false, err
	}
	return true, nil
}

// Close flushes and closes the debug log file and disables logging.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	_ = logger.Load().Sync()
	logger.Store(zap.NewNop())
	if writer != nil {
		err := writer.Close()
		writer = nil
		return err
	}
	return nil
}

package log

import (
	"fmt"
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Logger is a shared go-kit logger. It discards everything until InitLogger
// is called.
var Logger = log.NewNopLogger()

// Config configures the process logger.
type Config struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns the logging defaults: info level, logfmt output.
func DefaultConfig() Config {
	return Config{Level: "info", Format: "logfmt"}
}

// Validate checks that the level and format are known.
func (cfg *Config) Validate() error {
	if _, err := parseLevel(cfg.Level); err != nil {
		return err
	}
	switch cfg.Format {
	case "logfmt", "json":
		return nil
	default:
		return fmt.Errorf("unrecognized log format %q", cfg.Format)
	}
}

func parseLevel(s string) (level.Option, error) {
	switch s {
	case "debug":
		return level.AllowDebug(), nil
	case "info":
		return level.AllowInfo(), nil
	case "warn":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	default:
		return nil, fmt.Errorf("unrecognized log level %q", s)
	}
}

// InitLogger initialises the global logger writing to stderr and returns it.
func InitLogger(cfg Config, reg prometheus.Registerer) (log.Logger, error) {
	return initLogger(cfg, os.Stderr, reg)
}

func initLogger(cfg Config, w io.Writer, reg prometheus.Registerer) (log.Logger, error) {
	l, err := NewPrometheusLogger(cfg, w, reg)
	if err != nil {
		return nil, err
	}
	Logger = log.With(l, "caller", log.Caller(3))
	return Logger, nil
}

type prometheusLogger struct {
	baseLogger  log.Logger
	logMessages *prometheus.CounterVec
}

// NewPrometheusLogger creates a leveled logger writing to w that also counts
// the messages it emits by level.
func NewPrometheusLogger(cfg Config, w io.Writer, reg prometheus.Registerer) (log.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	allowed, _ := parseLevel(cfg.Level)

	var logger log.Logger
	if cfg.Format == "json" {
		logger = log.NewJSONLogger(log.NewSyncWriter(w))
	} else {
		logger = log.NewLogfmtLogger(log.NewSyncWriter(w))
	}
	logger = level.NewFilter(logger, allowed)

	plogger := &prometheusLogger{
		baseLogger: logger,
		logMessages: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "log_messages_total",
			Help: "Total number of log messages.",
		}, []string{"level"}),
	}
	// Initialise counters for all supported levels.
	for _, l := range []level.Value{level.DebugValue(), level.InfoValue(), level.WarnValue(), level.ErrorValue()} {
		plogger.logMessages.WithLabelValues(l.String())
	}

	return log.With(plogger, "ts", log.DefaultTimestampUTC), nil
}

// Log increments the appropriate Prometheus counter depending on the log level.
func (pl *prometheusLogger) Log(kv ...interface{}) error {
	pl.baseLogger.Log(kv...)
	l := "unknown"
	for i := 1; i < len(kv); i += 2 {
		if v, ok := kv[i].(level.Value); ok {
			l = v.String()
			break
		}
	}
	pl.logMessages.WithLabelValues(l).Inc()
	return nil
}

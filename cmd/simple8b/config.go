package main

import (
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	util_log "github.com/grafana/simple8b/pkg/util/log"
	"github.com/grafana/simple8b/pkg/wordio"
)

// Config is the configuration of the simple8b tool. It is loaded from an
// optional YAML file and then overridden by command-line flags.
type Config struct {
	Log   util_log.Config `yaml:"log"`
	Words wordio.Config   `yaml:"words"`

	// MetricsTextfile, if set, receives the tool's metrics in the Prometheus
	// text format when a command finishes.
	MetricsTextfile string `yaml:"metrics_textfile"`
}

func defaultConfig() Config {
	return Config{
		Log:   util_log.DefaultConfig(),
		Words: wordio.DefaultConfig(),
	}
}

func (cfg *Config) Validate() error {
	if err := cfg.Log.Validate(); err != nil {
		return errors.Wrap(err, "invalid log config")
	}
	if err := cfg.Words.Validate(); err != nil {
		return errors.Wrap(err, "invalid words config")
	}
	return nil
}

// configFlags holds values given on the command line. Empty strings mean the
// flag was not set and the file or default value applies.
type configFlags struct {
	configFile      string
	logLevel        string
	logFormat       string
	byteOrder       string
	metricsTextfile string
}

func (f *configFlags) register(app *kingpin.Application) {
	app.Flag("config.file", "YAML file to load configuration from.").PlaceHolder("FILE").StringVar(&f.configFile)
	app.Flag("log.level", "Only log messages with the given severity or above (default info).").EnumVar(&f.logLevel, "debug", "info", "warn", "error")
	app.Flag("log.format", "Output format of log messages (default logfmt).").EnumVar(&f.logFormat, "logfmt", "json")
	app.Flag("words.byte-order", "Byte order of encoded words on disk (default little).").EnumVar(&f.byteOrder, "little", "big")
	app.Flag("metrics.textfile", "Write metrics to this file in the Prometheus text format.").PlaceHolder("FILE").StringVar(&f.metricsTextfile)
}

// load builds the effective configuration: defaults, then the config file,
// then flags.
func (f *configFlags) load() (Config, error) {
	cfg := defaultConfig()

	if f.configFile != "" {
		buf, err := os.ReadFile(f.configFile)
		if err != nil {
			return cfg, errors.Wrap(err, "reading config file")
		}
		if err := yaml.UnmarshalStrict(buf, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "parsing config file %s", f.configFile)
		}
	}

	override(&cfg.Log.Level, f.logLevel)
	override(&cfg.Log.Format, f.logFormat)
	override(&cfg.Words.ByteOrder, f.byteOrder)
	override(&cfg.MetricsTextfile, f.metricsTextfile)

	return cfg, cfg.Validate()
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

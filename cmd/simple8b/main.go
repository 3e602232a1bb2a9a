package main

import (
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	util_log "github.com/grafana/simple8b/pkg/util/log"
	"github.com/grafana/simple8b/pkg/wordstats"
)

func main() {
	app := newApp(os.Stdout)
	if _, err := app.Parse(os.Args[1:]); err != nil {
		exitWithErr(err)
	}
}

func exitWithErr(err error) {
	printErr(os.Stderr, err)
	os.Exit(1)
}

func printErr(w io.Writer, err error) {
	color.New(color.FgRed).Fprintf(w, "error: %v\n", err)
}

// globals is the state shared by every command. It is populated by setup
// before any command runs.
type globals struct {
	flags configFlags
	out   io.Writer

	cfg    Config
	logger log.Logger
	reg    *prometheus.Registry
	stats  *wordstats.Collector
}

func newApp(out io.Writer) *kingpin.Application {
	app := kingpin.New("simple8b", "Encode, decode and inspect simple8b integer words.")
	app.HelpFlag.Short('h')

	g := &globals{out: out}
	g.flags.register(app)
	app.PreAction(g.setup)

	(&exampleCommand{g: g}).register(app)
	(&encodeCommand{g: g}).register(app)
	(&decodeCommand{g: g}).register(app)
	(&statsCommand{g: g}).register(app)
	(&compareCommand{g: g}).register(app)

	return app
}

func (g *globals) setup(_ *kingpin.ParseContext) error {
	cfg, err := g.flags.load()
	if err != nil {
		return err
	}
	g.cfg = cfg

	g.reg = prometheus.NewRegistry()
	g.logger, err = util_log.InitLogger(cfg.Log, g.reg)
	if err != nil {
		return err
	}
	g.stats = wordstats.NewCollector(g.reg)

	level.Debug(g.logger).Log("msg", "loaded config", "config_file", g.flags.configFile, "byte_order", cfg.Words.ByteOrder)
	return nil
}

// finish writes metrics if a textfile was configured.
func (g *globals) finish() error {
	if g.cfg.MetricsTextfile == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(g.cfg.MetricsTextfile, g.reg); err != nil {
		return errors.Wrap(err, "writing metrics")
	}
	level.Debug(g.logger).Log("msg", "wrote metrics", "file", g.cfg.MetricsTextfile)
	return nil
}

func readFile(name string, fn func(io.Reader) error) error {
	f, err := os.Open(name)
	if err != nil {
		return errors.Wrap(err, "failed to open file")
	}
	defer func() { _ = f.Close() }()
	return fn(f)
}

func writeFile(name string, fn func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return errors.Wrap(err, "failed to create file")
	}
	if err := fn(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

package main

import (
	"fmt"
	"io"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/grafana/simple8b/pkg/wordio"
	"github.com/grafana/simple8b/pkg/wordstats"
)

// statsCommand prints selector usage for each file of words.
type statsCommand struct {
	g     *globals
	files []string
}

func (cmd *statsCommand) register(app *kingpin.Application) {
	c := app.Command("stats", "Print selector usage of files of simple8b words.").Action(cmd.run)
	c.Arg("file", "Files of encoded words.").Required().ExistingFilesVar(&cmd.files)
}

func (cmd *statsCommand) run(_ *kingpin.ParseContext) error {
	for _, name := range cmd.files {
		var words []uint64
		err := readFile(name, func(r io.Reader) (err error) {
			words, err = wordio.ReadWords(r, cmd.g.cfg.Words.Order())
			return err
		})
		if err != nil {
			return errors.Wrapf(err, "reading %s", name)
		}

		// Each file gets its own counters; the shared collector keeps the
		// totals across files.
		reg := prometheus.NewRegistry()
		fileStats := wordstats.NewCollector(reg)
		for _, word := range words {
			fileStats.ObserveWord(word)
			cmd.g.stats.ObserveWord(word)
		}

		summary, err := wordstats.Gather(reg)
		if err != nil {
			return err
		}
		cmd.printStats(name, summary)
	}
	return cmd.g.finish()
}

func (cmd *statsCommand) printStats(name string, s wordstats.Summary) {
	out := cmd.g.out
	bold := color.New(color.Bold)

	bold.Fprintf(out, "%s:\n", name)
	fmt.Fprintf(out,
		"\twords: %s, values: %s, size: %v, bits per value: %.2f\n",
		humanize.Comma(int64(s.Words)),
		humanize.Comma(int64(s.Values)),
		humanize.Bytes(s.EncodedBytes()),
		s.BitsPerValue(),
	)
	for _, u := range s.Selectors {
		if u.Words == 0 {
			continue
		}
		fmt.Fprintf(out,
			"\t\tselector %2d (%3d x %2d bits): %s words, %s values (%.1f%%)\n",
			u.Selector.Index,
			u.Selector.N,
			u.Selector.Bits,
			humanize.Comma(int64(u.Words)),
			humanize.Comma(int64(u.Values)),
			percent(u.Values, s.Values),
		)
	}
}

func percent(part, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(part) / float64(total)
}

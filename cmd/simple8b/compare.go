package main

import (
	"fmt"
	"io"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/ronanh/intcomp"

	"github.com/grafana/simple8b/pkg/wordio"
)

// compareCommand encodes the same integers with simple8b and with intcomp
// and reports the size of each.
type compareCommand struct {
	g     *globals
	input string
}

func (cmd *compareCommand) register(app *kingpin.Application) {
	c := app.Command("compare", "Compare simple8b against intcomp bit packing on a text file of integers.").Action(cmd.run)
	c.Arg("input", "Text file with whitespace separated integers.").Required().ExistingFileVar(&cmd.input)
}

type comparison struct {
	values        int
	simple8bWords int
	intcompWords  int
}

func (cmd *compareCommand) run(_ *kingpin.ParseContext) error {
	var values []uint64
	err := readFile(cmd.input, func(r io.Reader) (err error) {
		values, err = wordio.ReadValues(r)
		return err
	})
	if err != nil {
		return errors.Wrapf(err, "reading %s", cmd.input)
	}

	res, err := cmd.compare(values)
	if err != nil {
		return err
	}

	out := cmd.g.out
	color.New(color.Bold).Fprintf(out, "%s: %s values\n", cmd.input, humanize.Comma(int64(res.values)))
	fmt.Fprintf(out, "\tsimple8b: %d words, %v\n", res.simple8bWords, humanize.Bytes(uint64(res.simple8bWords*8)))
	fmt.Fprintf(out, "\tintcomp:  %d words, %v\n", res.intcompWords, humanize.Bytes(uint64(res.intcompWords*8)))
	return cmd.g.finish()
}

func (cmd *compareCommand) compare(values []uint64) (comparison, error) {
	res := comparison{values: len(values)}

	words, err := encodeValues(values, cmd.g.stats)
	if err != nil {
		return res, err
	}
	if err := checkRoundTrip("simple8b", values, decodeWords(words)); err != nil {
		return res, err
	}
	res.simple8bWords = len(words)

	// Keep values intact for the round trip check.
	in := append([]uint64(nil), values...)
	compressed := intcomp.CompressUint64(in, nil)
	if err := checkRoundTrip("intcomp", values, intcomp.UncompressUint64(compressed, nil)); err != nil {
		return res, err
	}
	res.intcompWords = len(compressed)

	level.Debug(cmd.g.logger).Log("msg", "compared encodings", "values", res.values, "simple8b_words", res.simple8bWords, "intcomp_words", res.intcompWords)
	return res, nil
}

func checkRoundTrip(name string, expect, actual []uint64) error {
	if len(expect) != len(actual) {
		return fmt.Errorf("%s: decoded %d values, expected %d", name, len(actual), len(expect))
	}
	for i := range expect {
		if expect[i] != actual[i] {
			return fmt.Errorf("%s: value %d decoded as %d, expected %d", name, i, actual[i], expect[i])
		}
	}
	return nil
}

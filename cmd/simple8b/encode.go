package main

import (
	"io"

	"github.com/alecthomas/kingpin/v2"
	"github.com/dustin/go-humanize"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/grafana/simple8b/pkg/wordio"
	"github.com/grafana/simple8b/pkg/wordstats"
)

// encodeCommand turns a text file of integers into a file of words.
type encodeCommand struct {
	g      *globals
	input  string
	output string
}

func (cmd *encodeCommand) register(app *kingpin.Application) {
	c := app.Command("encode", "Encode a text file of integers into simple8b words.").Action(cmd.run)
	c.Arg("input", "Text file with whitespace separated integers.").Required().ExistingFileVar(&cmd.input)
	c.Arg("output", "File to write the encoded words to.").Required().StringVar(&cmd.output)
}

func (cmd *encodeCommand) run(_ *kingpin.ParseContext) error {
	var values []uint64
	err := readFile(cmd.input, func(r io.Reader) (err error) {
		values, err = wordio.ReadValues(r)
		return err
	})
	if err != nil {
		return errors.Wrapf(err, "reading %s", cmd.input)
	}

	words, err := encodeValues(values, cmd.g.stats)
	if err != nil {
		level.Error(cmd.g.logger).Log("msg", "failed to encode", "input", cmd.input, "err", err)
		if ferr := cmd.g.finish(); ferr != nil {
			level.Warn(cmd.g.logger).Log("msg", "failed to write metrics", "err", ferr)
		}
		return err
	}

	err = writeFile(cmd.output, func(w io.Writer) error {
		return wordio.WriteWords(w, cmd.g.cfg.Words.Order(), words)
	})
	if err != nil {
		return errors.Wrapf(err, "writing %s", cmd.output)
	}

	summary, err := wordstats.Gather(cmd.g.reg)
	if err != nil {
		return err
	}
	level.Info(cmd.g.logger).Log(
		"msg", "encoded values",
		"input", cmd.input,
		"output", cmd.output,
		"values", len(values),
		"words", len(words),
		"size", humanize.Bytes(summary.EncodedBytes()),
		"bits_per_value", summary.BitsPerValue(),
	)
	return cmd.g.finish()
}

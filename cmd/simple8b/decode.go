package main

import (
	"io"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/grafana/simple8b/pkg/wordio"
)

// decodeCommand prints the values held in a file of words.
type decodeCommand struct {
	g      *globals
	input  string
	output string
}

func (cmd *decodeCommand) register(app *kingpin.Application) {
	c := app.Command("decode", "Decode a file of simple8b words into integers, one per line.").Action(cmd.run)
	c.Arg("input", "File of encoded words.").Required().ExistingFileVar(&cmd.input)
	c.Flag("output", "Write values to this file instead of stdout.").Short('o').StringVar(&cmd.output)
}

func (cmd *decodeCommand) run(_ *kingpin.ParseContext) error {
	var words []uint64
	err := readFile(cmd.input, func(r io.Reader) (err error) {
		words, err = wordio.ReadWords(r, cmd.g.cfg.Words.Order())
		return err
	})
	if err != nil {
		return errors.Wrapf(err, "reading %s", cmd.input)
	}

	for _, word := range words {
		cmd.g.stats.ObserveWord(word)
	}
	values := decodeWords(words)
	level.Debug(cmd.g.logger).Log("msg", "decoded words", "input", cmd.input, "words", len(words), "values", len(values))

	if cmd.output == "" {
		if err := wordio.WriteValues(cmd.g.out, values); err != nil {
			return err
		}
		return cmd.g.finish()
	}

	err = writeFile(cmd.output, func(w io.Writer) error {
		return wordio.WriteValues(w, values)
	})
	if err != nil {
		return errors.Wrapf(err, "writing %s", cmd.output)
	}
	return cmd.g.finish()
}

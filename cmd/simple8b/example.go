package main

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/grafana/simple8b/pkg/simple8b"
)

// exampleCommand packs the values 1 to 10 into a single word and prints
// what the word decodes to.
type exampleCommand struct {
	g *globals
}

func (cmd *exampleCommand) register(app *kingpin.Application) {
	app.Command("example", "Encode 1..10 into one word and print the decoded values.").Action(cmd.run)
}

func (cmd *exampleCommand) run(_ *kingpin.ParseContext) error {
	src := []uint64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	word, _, err := simple8b.Encode(src)
	if err != nil {
		return err
	}
	cmd.g.stats.ObserveWord(word)

	var decoded [simple8b.MaxValuesPerWord]uint64
	n := simple8b.Decode(&decoded, word)
	for i, v := range decoded[:n] {
		fmt.Fprintf(cmd.g.out, "[%d] = %d\n", i, v)
	}
	return cmd.g.finish()
}

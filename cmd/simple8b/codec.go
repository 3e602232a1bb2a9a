package main

import (
	"fmt"

	"github.com/grafana/simple8b/pkg/simple8b"
	"github.com/grafana/simple8b/pkg/wordstats"
)

// encodeValues encodes values into as many words as needed by calling
// simple8b.Encode on the remaining input until all of it is consumed.
func encodeValues(values []uint64, stats *wordstats.Collector) ([]uint64, error) {
	words := make([]uint64, 0, len(values)/simple8b.MaxValuesPerWord+1)
	for rest := values; len(rest) > 0; {
		word, n, err := simple8b.Encode(rest)
		if err != nil {
			stats.ObserveError()
			return nil, fmt.Errorf("encoding value %d: %w", len(values)-len(rest), err)
		}
		stats.ObserveWord(word)
		words = append(words, word)
		rest = rest[n:]
	}
	return words, nil
}

// decodeWords concatenates the values of every word.
func decodeWords(words []uint64) []uint64 {
	var (
		buf    [simple8b.MaxValuesPerWord]uint64
		values = make([]uint64, 0, len(words))
	)
	for _, word := range words {
		n := simple8b.Decode(&buf, word)
		values = append(values, buf[:n]...)
	}
	return values
}

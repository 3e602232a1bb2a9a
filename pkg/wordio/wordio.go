// Package wordio reads and writes the two plain forms simple8b data takes on
// disk: text files of integers, and flat sequences of encoded 64-bit words.
package wordio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const wordSize = 8

// Config controls how words are serialised.
type Config struct {
	ByteOrder string `yaml:"byte_order"`
}

// DefaultConfig returns little-endian words.
func DefaultConfig() Config {
	return Config{ByteOrder: "little"}
}

// Validate checks that the byte order is known.
func (cfg *Config) Validate() error {
	_, err := ParseByteOrder(cfg.ByteOrder)
	return err
}

// Order returns the configured byte order. Call Validate first.
func (cfg *Config) Order() binary.ByteOrder {
	order, _ := ParseByteOrder(cfg.ByteOrder)
	return order
}

// ParseByteOrder accepts "little" or "big".
func ParseByteOrder(s string) (binary.ByteOrder, error) {
	switch strings.ToLower(s) {
	case "little", "le":
		return binary.LittleEndian, nil
	case "big", "be":
		return binary.BigEndian, nil
	default:
		return nil, fmt.Errorf("unknown byte order %q", s)
	}
}

// ReadValues parses unsigned integers separated by whitespace. Decimal and
// 0x-prefixed hexadecimal are accepted. Lines starting with # are skipped.
func ReadValues(r io.Reader) ([]uint64, error) {
	var (
		values []uint64
		line   int
	)

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for s.Scan() {
		line++
		text := strings.TrimSpace(s.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		for _, field := range strings.Fields(text) {
			v, err := strconv.ParseUint(field, 0, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
			values = append(values, v)
		}
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "reading values")
	}
	return values, nil
}

// WriteValues writes one decimal value per line.
func WriteValues(w io.Writer, values []uint64) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 20)
	for _, v := range values {
		buf = strconv.AppendUint(buf[:0], v, 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return errors.Wrap(err, "writing values")
		}
	}
	return errors.Wrap(bw.Flush(), "writing values")
}

// WriteWords writes each word as 8 bytes in the given order.
func WriteWords(w io.Writer, order binary.ByteOrder, words []uint64) error {
	bw := bufio.NewWriter(w)
	var buf [wordSize]byte
	for _, word := range words {
		order.PutUint64(buf[:], word)
		if _, err := bw.Write(buf[:]); err != nil {
			return errors.Wrap(err, "writing words")
		}
	}
	return errors.Wrap(bw.Flush(), "writing words")
}

// ReadWords reads words written by WriteWords until EOF. A trailing partial
// word is an error.
func ReadWords(r io.Reader, order binary.ByteOrder) ([]uint64, error) {
	var (
		words []uint64
		buf   [wordSize]byte
	)

	br := bufio.NewReader(r)
	for {
		n, err := io.ReadFull(br, buf[:])
		switch {
		case err == nil:
			words = append(words, order.Uint64(buf[:]))
		case errors.Is(err, io.EOF):
			return words, nil
		case errors.Is(err, io.ErrUnexpectedEOF):
			return nil, fmt.Errorf("truncated word: %d trailing bytes after %d words", n, len(words))
		default:
			return nil, errors.Wrap(err, "reading words")
		}
	}
}

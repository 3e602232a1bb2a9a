package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/grafana/simple8b/pkg/simple8b"
)

func init() {
	color.NoColor = true
}

func run(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	app := newApp(&out)
	_, err := app.Parse(args)
	require.NoError(t, err)
	return out.String()
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestExample(t *testing.T) {
	out := run(t, "--log.level=error", "example")

	var expect strings.Builder
	for i := 0; i < 10; i++ {
		fmt.Fprintf(&expect, "[%d] = %d\n", i, i+1)
	}
	require.Equal(t, expect.String(), out)
}

func TestEncodeDecode(t *testing.T) {
	var input strings.Builder
	for i := 0; i < 250; i++ {
		input.WriteString("1\n")
	}
	input.WriteString("2 3 4 5 0x10\n1152921504606846975\n")

	in := writeTemp(t, "values.txt", input.String())
	encoded := filepath.Join(t.TempDir(), "values.s8b")

	for _, order := range []string{"little", "big"} {
		t.Run(order, func(t *testing.T) {
			run(t, "--log.level=error", "--words.byte-order="+order, "encode", in, encoded)

			info, err := os.Stat(encoded)
			require.NoError(t, err)
			require.Zero(t, info.Size()%8)

			out := run(t, "--log.level=error", "--words.byte-order="+order, "decode", encoded)
			lines := strings.Split(strings.TrimSpace(out), "\n")
			require.Len(t, lines, 256)
			require.Equal(t, "1", lines[0])
			require.Equal(t, "16", lines[254])
			require.Equal(t, "1152921504606846975", lines[255])
		})
	}
}

func TestDecode_OutputFile(t *testing.T) {
	in := writeTemp(t, "values.txt", "7 8 9\n")
	encoded := filepath.Join(t.TempDir(), "values.s8b")
	decoded := filepath.Join(t.TempDir(), "decoded.txt")

	run(t, "--log.level=error", "encode", in, encoded)
	require.Empty(t, run(t, "--log.level=error", "decode", encoded, "-o", decoded))

	buf, err := os.ReadFile(decoded)
	require.NoError(t, err)
	require.Equal(t, "7\n8\n9\n", string(buf))
}

func TestEncode_OutOfRange(t *testing.T) {
	in := writeTemp(t, "values.txt", "1 2 1152921504606846976\n")
	encoded := filepath.Join(t.TempDir(), "values.s8b")

	var out bytes.Buffer
	_, err := newApp(&out).Parse([]string{"--log.level=error", "encode", in, encoded})
	require.ErrorIs(t, err, simple8b.ErrValueOutOfRange)
	require.ErrorContains(t, err, "encoding value 2")
}

func TestEncode_OutOfRangeWritesMetrics(t *testing.T) {
	in := writeTemp(t, "values.txt", "1152921504606846976\n")
	dir := t.TempDir()
	metrics := filepath.Join(dir, "simple8b.prom")

	var out bytes.Buffer
	_, err := newApp(&out).Parse([]string{"--log.level=error", "--metrics.textfile=" + metrics, "encode", in, filepath.Join(dir, "values.s8b")})
	require.ErrorIs(t, err, simple8b.ErrValueOutOfRange)

	buf, err := os.ReadFile(metrics)
	require.NoError(t, err)
	require.Contains(t, string(buf), "simple8b_encode_errors_total 1")
}

func TestPrintErr(t *testing.T) {
	var buf bytes.Buffer
	printErr(&buf, errors.New("reading values.txt: line 2"))
	require.Equal(t, "error: reading values.txt: line 2\n", buf.String())

	color.NoColor = false
	t.Cleanup(func() { color.NoColor = true })

	buf.Reset()
	printErr(&buf, errors.New("bad input"))
	require.Equal(t, "\x1b[31merror: bad input\n\x1b[0m", buf.String())
}

func TestStats(t *testing.T) {
	ones := writeTemp(t, "ones.txt", strings.Repeat("1 ", 240))
	small := writeTemp(t, "small.txt", "1 2 3 4 5 6 7 8 9 10\n")

	dir := t.TempDir()
	onesWords := filepath.Join(dir, "ones.s8b")
	smallWords := filepath.Join(dir, "small.s8b")
	run(t, "--log.level=error", "encode", ones, onesWords)
	run(t, "--log.level=error", "encode", small, smallWords)

	out := run(t, "--log.level=error", "stats", onesWords, smallWords)
	require.Contains(t, out, onesWords+":")
	require.Contains(t, out, "words: 1, values: 240, size: 8 B")
	require.Contains(t, out, "selector  0 (240 x  0 bits): 1 words, 240 values (100.0%)")
	require.Contains(t, out, smallWords+":")
	require.Contains(t, out, "words: 1, values: 10, size: 8 B")
	require.Contains(t, out, "selector  7 ( 10 x  6 bits): 1 words, 10 values (100.0%)")
	require.NotContains(t, out, "selector 15")
}

func TestCompare(t *testing.T) {
	var input strings.Builder
	for i := 0; i < 1000; i++ {
		input.WriteString(strconv.Itoa(i) + "\n")
	}
	in := writeTemp(t, "values.txt", input.String())

	out := run(t, "--log.level=error", "compare", in)
	require.Contains(t, out, "1,000 values")
	require.Contains(t, out, "simple8b: ")
	require.Contains(t, out, "intcomp: ")
}

func TestMetricsTextfile(t *testing.T) {
	metrics := filepath.Join(t.TempDir(), "simple8b.prom")
	run(t, "--log.level=error", "--metrics.textfile="+metrics, "example")

	buf, err := os.ReadFile(metrics)
	require.NoError(t, err)
	require.Contains(t, string(buf), `simple8b_words_total{selector="7"} 1`)
	require.Contains(t, string(buf), `simple8b_values_total{selector="7"} 10`)
}

func TestConfigFile(t *testing.T) {
	cfgFile := writeTemp(t, "config.yaml", `
log:
  level: error
words:
  byte_order: big
`)

	flags := configFlags{configFile: cfgFile}
	cfg, err := flags.load()
	require.NoError(t, err)
	require.Equal(t, "error", cfg.Log.Level)
	require.Equal(t, "logfmt", cfg.Log.Format)
	require.Equal(t, "big", cfg.Words.ByteOrder)

	// Flags win over the file.
	flags.byteOrder = "little"
	cfg, err = flags.load()
	require.NoError(t, err)
	require.Equal(t, "little", cfg.Words.ByteOrder)

	bad := writeTemp(t, "bad.yaml", "words:\n  endianness: big\n")
	_, err = (&configFlags{configFile: bad}).load()
	require.Error(t, err)

	invalid := writeTemp(t, "invalid.yaml", "words:\n  byte_order: middle\n")
	_, err = (&configFlags{configFile: invalid}).load()
	require.ErrorContains(t, err, "invalid words config")
}

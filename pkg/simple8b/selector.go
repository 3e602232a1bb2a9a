package simple8b

import "fmt"

const (
	// MaxValue is the largest value that can be encoded.
	MaxValue = (1 << payloadBits) - 1

	// MaxValuesPerWord is the number of values held by the densest selector.
	// Buffers passed to [Decode] must be able to hold this many values.
	MaxValuesPerWord = 240

	// SelectorCount is the number of selectors addressable by the 4-bit tag.
	SelectorCount = 16

	payloadBits  = 60
	selectorMask = SelectorCount - 1
)

// Selector describes one of the 16 ways a word can be packed.
type Selector struct {
	Index uint8 // Value of the top 4 bits of a word using this selector.
	N     int   // Number of values (slots) in the word.
	Bits  uint  // Width of each slot in bits. Zero for the all-ones selectors.
}

// MaxValue returns the largest value a slot of s can hold. The zero-width
// selectors only ever hold the literal 1.
func (s Selector) MaxValue() uint64 {
	if s.Bits == 0 {
		return 1
	}
	return (1 << s.Bits) - 1
}

func (s Selector) String() string {
	return fmt.Sprintf("%dx%dbit", s.N, s.Bits)
}

// selectors is ordered by index, which is also the order of preference when
// encoding: the selector holding the most values comes first.
var selectors = [SelectorCount]Selector{
	{Index: 0, N: 240, Bits: 0},
	{Index: 1, N: 120, Bits: 0},
	{Index: 2, N: 60, Bits: 1},
	{Index: 3, N: 30, Bits: 2},
	{Index: 4, N: 20, Bits: 3},
	{Index: 5, N: 15, Bits: 4},
	{Index: 6, N: 12, Bits: 5},
	{Index: 7, N: 10, Bits: 6},
	{Index: 8, N: 8, Bits: 7},
	{Index: 9, N: 7, Bits: 8},
	{Index: 10, N: 6, Bits: 10},
	{Index: 11, N: 5, Bits: 12},
	{Index: 12, N: 4, Bits: 15},
	{Index: 13, N: 3, Bits: 20},
	{Index: 14, N: 2, Bits: 30},
	{Index: 15, N: 1, Bits: 60},
}

// Lookup returns the selector with the given index. Only the low 4 bits of
// index are used, so every index maps to a selector.
func Lookup(index uint8) Selector {
	return selectors[index&selectorMask]
}

// Selectors returns a copy of the selector table in order of preference,
// from most values per word to fewest.
func Selectors() [SelectorCount]Selector {
	return selectors
}

// SelectorOf returns the selector a word was packed with.
func SelectorOf(word uint64) Selector {
	return selectors[word>>payloadBits]
}

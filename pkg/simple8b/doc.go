// Package simple8b implements the Simple8b word-aligned integer encoding
// described by Anh and Moffat in "Index compression using 64-bit words",
// Softw. Pract. Exper. 2010; 40:131–147.
//
// A word stores a 4-bit selector in its most significant bits followed by a
// 60-bit payload. The selector determines how many values the payload holds
// and how wide each of them is:
//
//	┌──────────┬─────────────────────────────────────────────────────────────┐
//	│ Selector │   0    1   2   3   4   5   6   7  8  9 10 11 12 13 14 15    │
//	├──────────┼─────────────────────────────────────────────────────────────┤
//	│   Bits   │   0    0   1   2   3   4   5   6  7  8 10 12 15 20 30 60    │
//	├──────────┼─────────────────────────────────────────────────────────────┤
//	│    N     │ 240  120  60  30  20  15  12  10  8  7  6  5  4  3  2  1    │
//	└──────────┴─────────────────────────────────────────────────────────────┘
//
// Values are packed least-significant field first. Selectors 0 and 1 carry no
// payload: they encode runs of the literal value 1.
//
// [Encode] packs as many leading values of its input as fit into one word;
// callers loop over the remaining input to produce a sequence of words.
// [Decode] unpacks a single word. Both are pure and safe for concurrent use.
package simple8b

package simple8b

// Decode unpacks word into dst and returns the number of values written.
// Every word decodes: the top 4 bits always name a valid selector. Words that
// were not produced by [Encode] decode to meaningless values.
func Decode(dst *[MaxValuesPerWord]uint64, word uint64) int {
	sel := SelectorOf(word)
	out := dst[:sel.N]
	if sel.Bits == 0 {
		fill(out)
	} else {
		unpack(out, word, sel.Bits)
	}
	return sel.N
}

// Count returns the number of values encoded in word without decoding it.
func Count(word uint64) int {
	return SelectorOf(word).N
}

// ForEach calls fn for each value encoded in word, in order, until fn
// returns false.
func ForEach(word uint64, fn func(v uint64) bool) {
	sel := SelectorOf(word)
	if sel.Bits == 0 {
		for i := 0; i < sel.N; i++ {
			if !fn(1) {
				return
			}
		}
		return
	}

	mask := uint64(1)<<sel.Bits - 1
	for i := 0; i < sel.N; i++ {
		if !fn(word & mask) {
			return
		}
		word >>= sel.Bits
	}
}

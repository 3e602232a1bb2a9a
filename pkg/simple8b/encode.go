package simple8b

// Encode packs as many leading values of src as possible into a single word.
// It returns the word and how many values of src it holds. Callers encode a
// whole slice by calling Encode again on src[n:] until it is empty.
//
// An empty src yields a zero word, n == 0 and no error. If the next value is
// larger than [MaxValue], Encode returns an error matching
// [ErrValueOutOfRange].
func Encode(src []uint64) (word uint64, n int, err error) {
	if len(src) == 0 {
		return 0, 0, nil
	}

	for _, sel := range &selectors {
		if !CanPack(src, sel) {
			continue
		}
		word = uint64(sel.Index) << payloadBits
		if sel.Bits > 0 {
			word |= pack(src[:sel.N], sel.Bits)
		}
		return word, sel.N, nil
	}

	// The single-slot selector takes any value up to MaxValue, so the first
	// value is the one out of range.
	return 0, 0, &OutOfRangeError{Value: src[0], Position: 0}
}

// CanPack reports whether Encode could use sel for the leading values of src.
//
// src must hold at least sel.N values. For the zero-width selectors every
// value in src must be 1, not only the first sel.N; this keeps runs of ones
// from being split by a shorter run. For all other selectors only the first
// sel.N values are checked against the slot width.
func CanPack(src []uint64, sel Selector) bool {
	if len(src) < sel.N {
		return false
	}

	if sel.Bits == 0 {
		for _, v := range src {
			if v != 1 {
				return false
			}
		}
		return true
	}

	limit := sel.MaxValue()
	for _, v := range src[:sel.N] {
		if v > limit {
			return false
		}
	}
	return true
}

package simple8b

// pack stores src into the low 60 bits of a word, bits wide each, with src[0]
// in the least significant field. Values must already fit in bits.
func pack(src []uint64, bits uint) uint64 {
	var word uint64
	for i, v := range src {
		word |= v << (uint(i) * bits)
	}
	return word
}

// unpack is the inverse of pack. It fills all of dst from payload.
func unpack(dst []uint64, payload uint64, bits uint) {
	mask := uint64(1)<<bits - 1
	for i := range dst {
		dst[i] = payload & mask
		payload >>= bits
	}
}

// fill writes the literal 1 to every slot of dst.
func fill(dst []uint64) {
	for i := range dst {
		dst[i] = 1
	}
}

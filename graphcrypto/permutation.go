package graphcrypto

import (
	"sort"

	"github.com/bgallie/graphcrypt/graphcrypto/bitops"
)

// NumPermutationBits is the width of the bit permutation pi, which acts on
// the full 128-bit SPN state.
const NumPermutationBits = StateBits

// buildPi derives the 128-entry bit permutation from the first 128 bytes of
// topoBytes: index pairs (value, original_index) are stable-sorted
// ascending by value (ties broken by original_index), and
// pi[k] = sorted[k].original_index.
func buildPi(topoBytes [NumVertices]byte) [NumPermutationBits]byte {
	type indexed struct {
		value byte
		index byte
	}

	pairs := make([]indexed, NumPermutationBits)
	for i := 0; i < NumPermutationBits; i++ {
		pairs[i] = indexed{value: topoBytes[i], index: byte(i)}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].value < pairs[j].value
	})

	var pi [NumPermutationBits]byte
	for k, p := range pairs {
		pi[k] = p.index
	}
	return pi
}

// invertPi computes pi's inverse: piInv[pi[k]] = k.
func invertPi(pi [NumPermutationBits]byte) [NumPermutationBits]byte {
	var inv [NumPermutationBits]byte
	for k, v := range pi {
		inv[v] = byte(k)
	}
	return inv
}

// bitPermutation applies pi to the 128 bits of state, bit k of the output
// coming from bit pi[k] of the input. Bits are indexed low-to-high across
// bytes and LSB-to-MSB within each byte: bit index i corresponds to byte
// i/8, bit i%8 of that byte.
func bitPermutation(state *[StateBytes]byte, pi [NumPermutationBits]byte) [StateBytes]byte {
	var out [StateBytes]byte
	src := state[:]
	dst := out[:]

	for k, srcBit := range pi {
		if bitops.GetBit(src, uint(srcBit)) {
			bitops.SetBit(dst, uint(k))
		}
	}

	return out
}

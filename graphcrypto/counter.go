package graphcrypto

import "math/big"

// counter128 is a 128-bit unsigned counter, big-endian encoded, that
// increments by 1 modulo 2^128 per block. It is the only mutable state a
// cipher instance carries after construction (spec.md §3 Lifecycle).
type counter128 [StateBytes]byte

// ctrModulus is 2^128, used to wrap a caller-supplied big.Int counter value
// into the counter's 128-bit range.
var ctrModulus = new(big.Int).Lsh(big.NewInt(1), StateBits)

// bytes returns the big-endian 16-byte encoding of the counter.
func (c counter128) bytes() [StateBytes]byte {
	return [StateBytes]byte(c)
}

// increment advances the counter by 1, wrapping modulo 2^128.
func (c *counter128) increment() {
	for i := len(c) - 1; i >= 0; i-- {
		c[i]++
		if c[i] != 0 {
			return
		}
	}
}

// bigInt returns the counter's value as a big.Int.
func (c counter128) bigInt() *big.Int {
	return new(big.Int).SetBytes(c[:])
}

// counterFromBigInt builds a counter128 from n, reduced modulo 2^128.
func counterFromBigInt(n *big.Int) counter128 {
	var c counter128
	new(big.Int).Mod(n, ctrModulus).FillBytes(c[:])
	return c
}

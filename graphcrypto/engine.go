package graphcrypto

import "math/big"

// Stats is the diagnostic snapshot spec.md §6 requires from an Engine,
// supplemented with a couple of cheap-to-retain topology summaries
// original_source/src/main.py's get_stats() also reports.
type Stats struct {
	Nodes             int
	Edges             int
	SBoxDiffFromAES   int
	AverageClustering float64
	Density           float64
}

// Option configures an Engine at construction time.
type Option func(*options)

type options struct {
	sboxMode sboxMode
}

// WithSBoxMode selects a named S-box construction variant. The zero value
// (and the default when no option is given) is "affine", the spec-mandated
// mode. "pure" uses the unmodified AES S-box, for A/B comparison against
// vanilla AES confusion; spec.md §9 permits exposing such variants as long
// as affine stays the default.
func WithSBoxMode(mode string) Option {
	return func(o *options) {
		if mode == "pure" {
			o.sboxMode = sboxModePure
		} else {
			o.sboxMode = sboxModeAffine
		}
	}
}

// Engine is a deterministic function of a seed: its derived graph,
// topology, S-box, bit permutation, and round keys are computed once at
// construction and are immutable thereafter. Only its internal counter
// mutates, so an Engine's generate/encrypt methods are not reentrant - if
// concurrent producers are needed, each should own its own Engine.
type Engine struct {
	topoBytes [NumVertices]byte
	laplacian [NumVertices]float64
	stats     Stats
	cipher    cipher
	ctr       counter128
}

// New derives an Engine from seed. Seed may be any byte string, including
// empty. Construction fails only if the Laplacian eigensolver does not
// converge (spec.md §7 ConstructionError); every other seed deterministically
// succeeds.
func New(seed []byte, opts ...Option) (*Engine, error) {
	cfg := options{sboxMode: sboxModeAffine}
	for _, opt := range opts {
		opt(&cfg)
	}

	g := buildGraph(seed)

	t, err := extractTopology(g)
	if err != nil {
		return nil, newConstructionError(seed, err.Error())
	}

	topoBytes := fuseTopology(t)
	pi := buildPi(topoBytes)
	sbox := buildSBox(cfg.sboxMode, topoBytes, t.laplacian)
	roundKeys := buildRoundKeys(seed, topoBytes)

	var clusteringSum float64
	for _, c := range t.clustering {
		clusteringSum += c
	}

	e := &Engine{
		topoBytes: topoBytes,
		laplacian: t.laplacian,
		cipher: cipher{
			sbox:      sbox,
			pi:        pi,
			roundKeys: roundKeys,
		},
		stats: Stats{
			Nodes:             NumVertices,
			Edges:             g.edges,
			SBoxDiffFromAES:   sboxDiffFromAES(sbox),
			AverageClustering: clusteringSum / NumVertices,
			Density:           float64(g.edges) / (NumVertices * (NumVertices - 1) / 2),
		},
	}

	return e, nil
}

// GenerateBlock encodes the current counter as a 16-byte big-endian
// integer, runs it through the SPN transform, advances the counter by one,
// and returns the 16-byte result.
func (e *Engine) GenerateBlock() [StateBytes]byte {
	block := e.cipher.transform(e.ctr.bytes())
	e.ctr.increment()
	return block
}

// GenerateBytes returns n pseudorandom bytes, the truncated concatenation
// of ceil(n/16) keystream blocks. n must be non-negative.
func (e *Engine) GenerateBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrInvalidInput
	}

	out := make([]byte, 0, n)
	for len(out) < n {
		block := e.GenerateBlock()
		out = append(out, block[:]...)
	}
	return out[:n], nil
}

// Encrypt XORs plaintext with the keystream, one block at a time, after
// right-padding the last partial block with zero bytes. The result's
// length is ceil(len(plaintext)/16)*16; the original length is not
// recorded anywhere, so this is not safely invertible at the byte level
// for inputs whose length is not a multiple of 16 (spec.md §9 open
// question 1). Use EncryptFramed when exact length recovery matters.
func (e *Engine) Encrypt(plaintext []byte) []byte {
	padded := padToBlock(plaintext)
	out := make([]byte, 0, len(padded))

	for i := 0; i < len(padded); i += StateBytes {
		var block [StateBytes]byte
		copy(block[:], padded[i:i+StateBytes])
		ks := e.GenerateBlock()
		for j := range block {
			block[j] ^= ks[j]
		}
		out = append(out, block[:]...)
	}

	return out
}

// EncryptFramed behaves like Encrypt but prepends an 8-byte big-endian
// original length, so a caller can truncate the decrypted padding back
// off. This is additive: it does not change Encrypt's documented,
// zero-pad-with-no-length-tag behavior.
func (e *Engine) EncryptFramed(plaintext []byte) []byte {
	n := uint64(len(plaintext))
	header := make([]byte, 8)
	for i := 0; i < 8; i++ {
		header[7-i] = byte(n >> (8 * i))
	}
	return append(header, e.Encrypt(plaintext)...)
}

func padToBlock(data []byte) []byte {
	rem := len(data) % StateBytes
	if rem == 0 {
		return data
	}
	padded := make([]byte, len(data)+(StateBytes-rem))
	copy(padded, data)
	return padded
}

// Stats returns diagnostic information about the derived graph and S-box.
func (e *Engine) Stats() Stats {
	return e.stats
}

// SBox returns a copy of the derived S-box.
func (e *Engine) SBox() [256]byte {
	return e.cipher.sbox
}

// Pi returns a copy of the derived 128-bit permutation.
func (e *Engine) Pi() [NumPermutationBits]byte {
	return e.cipher.pi
}

// Counter returns the engine's current counter value, so a caller can
// persist it and resume the keystream at the same point in a later run.
func (e *Engine) Counter() *big.Int {
	return e.ctr.bigInt()
}

// SetCounter sets the engine's counter to n, reduced modulo 2^128. Callers
// use this to resume a keystream from a previously persisted counter value.
func (e *Engine) SetCounter(n *big.Int) {
	e.ctr = counterFromBigInt(n)
}

package graphcrypto

const (
	// NumVertices is the fixed size of the seed-derived graph.
	NumVertices = 256
	// GraphHashRounds is the number of SHA-512 hash-chain rounds used to
	// build the graph's edge set.
	GraphHashRounds = 48
	// StateBytes is the width of the SPN state and cipher block, in bytes.
	StateBytes = 16
	// StateBits is the width of the SPN state, in bits.
	StateBits = StateBytes * 8
	// StateRows and StateCols describe the 4x4 byte-matrix view of a state,
	// column-major: byte k sits at row k%4, column k/4.
	StateRows = 4
	StateCols = 4
	// NumRounds is the number of SPN rounds (round 0 is the initial
	// AddRoundKey only; rounds 1..NumRounds-1 run the full round function;
	// the final round omits MixColumns). There are NumRounds+1 round keys.
	NumRounds = 12
)

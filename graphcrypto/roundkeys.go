package graphcrypto

import "crypto/sha256"

// rkLiteral is the two-byte ASCII literal "RK" (0x52, 0x4B) spec.md §4.6
// mixes into each round key's hash input.
var rkLiteral = [2]byte{0x52, 0x4B}

// buildRoundKeys derives the NumRounds+1 round keys RK[0..NumRounds] from
// anchor = SHA256(seed || topoBytes[0:32]): RK[r] = SHA256(anchor || "RK" ||
// byte(r))[0:StateBytes].
func buildRoundKeys(seed []byte, topoBytes [NumVertices]byte) [NumRounds + 1][StateBytes]byte {
	input := make([]byte, 0, len(seed)+32)
	input = append(input, seed...)
	input = append(input, topoBytes[:32]...)
	anchorSum := sha256.Sum256(input)
	anchor := anchorSum[:]

	var keys [NumRounds + 1][StateBytes]byte
	buf := make([]byte, 0, len(anchor)+2+1)
	for r := 0; r <= NumRounds; r++ {
		buf = buf[:0]
		buf = append(buf, anchor...)
		buf = append(buf, rkLiteral[:]...)
		buf = append(buf, byte(r))
		sum := sha256.Sum256(buf)
		copy(keys[r][:], sum[:StateBytes])
	}

	return keys
}

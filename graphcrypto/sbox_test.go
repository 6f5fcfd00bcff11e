package graphcrypto

import "testing"

func TestAESSBoxIsBijective(t *testing.T) {
	var seen [256]bool
	for _, v := range AESSBox {
		if seen[v] {
			t.Fatalf("AES S-box is not bijective: %#x appears twice", v)
		}
		seen[v] = true
	}
}

func buildSBoxForSeed(t *testing.T, seed string) [256]byte {
	t.Helper()
	g := buildGraph([]byte(seed))
	tp, err := extractTopology(g)
	if err != nil {
		t.Fatalf("extractTopology: %v", err)
	}
	topoBytes := fuseTopology(tp)
	return buildSBox(sboxModeAffine, topoBytes, tp.laplacian)
}

func TestBuildSBoxAffineIsBijective(t *testing.T) {
	sbox := buildSBoxForSeed(t, "test")

	var seen [256]bool
	for _, v := range sbox {
		if seen[v] {
			t.Fatalf("affine S-box is not bijective: %#x appears twice", v)
		}
		seen[v] = true
	}
}

// differentialUniformity computes max_{a!=0} max_b #{x : S(x^a) ^ S(x) = b}.
func differentialUniformity(sbox [256]byte) int {
	max := 0
	for a := 1; a < 256; a++ {
		var count [256]int
		for x := 0; x < 256; x++ {
			b := sbox[x] ^ sbox[x^a]
			count[b]++
		}
		for _, c := range count {
			if c > max {
				max = c
			}
		}
	}
	return max
}

func TestBuildSBoxAffinePreservesDifferentialUniformity(t *testing.T) {
	sbox := buildSBoxForSeed(t, "test")
	du := differentialUniformity(sbox)
	if du != 4 {
		t.Fatalf("affine-mode S-box differential uniformity = %d, want 4", du)
	}
}

// nonlinearity computes 128 - max|W|/2, where W ranges over the
// Walsh-Hadamard coefficients of every component function
// f(x) = parity(b & S(x)), b != 0, against every linear mask a.
func nonlinearity(sbox [256]byte) int {
	maxAbs := 0
	for b := 1; b < 256; b++ {
		for a := 0; a < 256; a++ {
			sum := 0
			for x := 0; x < 256; x++ {
				fx := parity(byte(a)&byte(x)) ^ parity(byte(b)&sbox[x])
				if fx == 0 {
					sum++
				} else {
					sum--
				}
			}
			if sum < 0 {
				sum = -sum
			}
			if sum > maxAbs {
				maxAbs = sum
			}
		}
	}
	return 128 - maxAbs/2
}

func parity(x byte) byte {
	var p byte
	for x != 0 {
		p ^= x & 1
		x >>= 1
	}
	return p
}

func TestBuildSBoxAffinePreservesNonlinearity(t *testing.T) {
	sbox := buildSBoxForSeed(t, "test")
	nl := nonlinearity(sbox)
	if nl != 112 {
		t.Fatalf("affine-mode S-box nonlinearity = %d, want 112", nl)
	}
}

func TestBuildSBoxPureModeReturnsAES(t *testing.T) {
	g := buildGraph([]byte("test"))
	tp, err := extractTopology(g)
	if err != nil {
		t.Fatalf("extractTopology: %v", err)
	}
	topoBytes := fuseTopology(tp)

	sbox := buildSBox(sboxModePure, topoBytes, tp.laplacian)
	if sbox != AESSBox {
		t.Fatalf("pure mode should return the plain AES S-box unchanged")
	}
}

func TestSBoxDiffFromAES(t *testing.T) {
	if diff := sboxDiffFromAES(AESSBox); diff != 0 {
		t.Fatalf("AES S-box compared to itself should differ in 0 places, got %d", diff)
	}

	sbox := buildSBoxForSeed(t, "test")
	diff := sboxDiffFromAES(sbox)
	if diff < 0 || diff > 256 {
		t.Fatalf("sboxDiffFromAES out of range: %d", diff)
	}
}

package graphcrypto

import "testing"

func TestBuildRoundKeysCount(t *testing.T) {
	var topoBytes [NumVertices]byte
	keys := buildRoundKeys([]byte("test"), topoBytes)
	if len(keys) != NumRounds+1 {
		t.Fatalf("expected %d round keys, got %d", NumRounds+1, len(keys))
	}
}

func TestBuildRoundKeysDistinct(t *testing.T) {
	var topoBytes [NumVertices]byte
	for i := range topoBytes {
		topoBytes[i] = byte(i)
	}
	keys := buildRoundKeys([]byte("my_secret_seed"), topoBytes)

	seen := map[[StateBytes]byte]bool{}
	for i, k := range keys {
		if seen[k] {
			t.Fatalf("round key %d collides with an earlier round key", i)
		}
		seen[k] = true
	}
}

func TestBuildRoundKeysDeterministic(t *testing.T) {
	var topoBytes [NumVertices]byte
	for i := range topoBytes {
		topoBytes[i] = byte(i * 3)
	}
	seed := []byte("a")

	k1 := buildRoundKeys(seed, topoBytes)
	k2 := buildRoundKeys(seed, topoBytes)
	if k1 != k2 {
		t.Fatalf("buildRoundKeys is not deterministic for the same inputs")
	}
}

func TestBuildRoundKeysSeedSensitive(t *testing.T) {
	var topoBytes [NumVertices]byte
	ka := buildRoundKeys([]byte("a"), topoBytes)
	kb := buildRoundKeys([]byte("b"), topoBytes)
	if ka == kb {
		t.Fatalf("different seeds produced identical round key schedules")
	}
}

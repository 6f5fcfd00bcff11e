package graphcrypto

import "testing"

func TestXtime(t *testing.T) {
	cases := []struct {
		in, want byte
	}{
		{0x00, 0x00},
		{0x01, 0x02},
		{0x53, 0xa6},
		{0x80, 0x1b}, // overflow: 0x100 ^ 0x1B -> 0x1B after truncation
	}

	for _, c := range cases {
		if got := xtime(c.in); got != c.want {
			t.Errorf("xtime(%#x) = %#x, want %#x", c.in, got, c.want)
		}
	}
}

func TestGfMulTables(t *testing.T) {
	for x := 0; x < 256; x++ {
		if gfMul2[x] != xtime(byte(x)) {
			t.Fatalf("gfMul2[%d] disagrees with xtime", x)
		}
		if gfMul3[x] != xtime(byte(x))^byte(x) {
			t.Fatalf("gfMul3[%d] disagrees with xtime(x)^x", x)
		}
	}
}

package graphcrypto

import "math"

const normalizeEpsilon = 1e-12

// normalizeToBytes maps each element of v to round(255*(v[i]-min)/max(max-min,eps)).
func normalizeToBytes(v [NumVertices]float64) [NumVertices]byte {
	var out [NumVertices]byte

	min, max := v[0], v[0]
	for _, x := range v {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}

	spread := max - min
	if spread < normalizeEpsilon {
		spread = normalizeEpsilon
	}

	for i, x := range v {
		out[i] = byte(math.Round(255 * (x - min) / spread))
	}

	return out
}

// fuseTopology normalizes the four feature vectors to bytes and XORs them
// together into the 256-byte topo_bytes fusion spec.md §4.3 defines.
func fuseTopology(t *topology) [NumVertices]byte {
	degreeBytes := normalizeToBytes(t.degree)
	clusterBytes := normalizeToBytes(t.clustering)
	betweenBytes := normalizeToBytes(t.betweenness)
	laplacianBytes := normalizeToBytes(t.laplacian)

	var topoBytes [NumVertices]byte
	for i := range topoBytes {
		topoBytes[i] = degreeBytes[i] ^ clusterBytes[i] ^ betweenBytes[i] ^ laplacianBytes[i]
	}

	return topoBytes
}

package graphcrypto

import "testing"

func TestComputeClusteringBounds(t *testing.T) {
	g := buildGraph([]byte("test"))
	tp := &topology{}
	computeClustering(g, tp)

	for v, c := range tp.clustering {
		if c < 0 || c > 1 {
			t.Fatalf("clustering[%d] = %v out of [0,1]", v, c)
		}
	}
}

func TestComputeClusteringIsolatedVertex(t *testing.T) {
	g := &graph{}
	g.addEdge(0, 1) // leaves vertex 2 isolated, degree 0
	tp := &topology{}
	computeClustering(g, tp)

	if tp.clustering[2] != 0 {
		t.Fatalf("isolated vertex should have clustering 0, got %v", tp.clustering[2])
	}
}

func TestComputeBetweennessNonNegative(t *testing.T) {
	g := buildGraph([]byte("test"))
	tp := &topology{}
	computeBetweenness(g, tp)

	for v, b := range tp.betweenness {
		if b < 0 {
			t.Fatalf("betweenness[%d] = %v is negative", v, b)
		}
	}
}

func TestLaplacianSpectrumSmallestEigenvalueNearZero(t *testing.T) {
	g := buildGraph([]byte("test"))
	lambda, err := laplacianSpectrum(g)
	if err != nil {
		t.Fatalf("laplacianSpectrum returned error: %v", err)
	}

	if lambda[0] > 1e-6 || lambda[0] < -1e-6 {
		t.Fatalf("smallest Laplacian eigenvalue should be ~0, got %v", lambda[0])
	}

	for i := 1; i < len(lambda); i++ {
		if lambda[i] < lambda[i-1] {
			t.Fatalf("eigenvalues not sorted ascending at index %d: %v < %v", i, lambda[i], lambda[i-1])
		}
	}
}

func TestExtractTopologyDeterministic(t *testing.T) {
	g := buildGraph([]byte("a"))

	t1, err := extractTopology(g)
	if err != nil {
		t.Fatalf("extractTopology returned error: %v", err)
	}
	t2, err := extractTopology(g)
	if err != nil {
		t.Fatalf("extractTopology returned error: %v", err)
	}

	if *t1 != *t2 {
		t.Fatalf("extractTopology is not deterministic for the same graph")
	}
}

func TestInsertionSortFloat64(t *testing.T) {
	xs := []float64{3.1, -2.0, 0.0, 1.5, -2.0}
	insertionSortFloat64(xs)
	want := []float64{-2.0, -2.0, 0.0, 1.5, 3.1}
	for i, v := range xs {
		if v != want[i] {
			t.Fatalf("insertionSortFloat64 = %v, want %v", xs, want)
		}
	}
}

package graphcrypto

import (
	"fmt"
	"math"
)

// topology holds the four length-256 real-valued feature vectors spec.md
// §4.3 derives from the graph: degree, local clustering, betweenness
// centrality, and the Laplacian spectrum.
type topology struct {
	degree      [NumVertices]float64
	clustering  [NumVertices]float64
	betweenness [NumVertices]float64
	laplacian   [NumVertices]float64
}

// extractTopology computes all four feature vectors for g.
func extractTopology(g *graph) (*topology, error) {
	t := &topology{}

	for v := 0; v < NumVertices; v++ {
		t.degree[v] = float64(g.degree(v))
	}

	computeClustering(g, t)
	computeBetweenness(g, t)

	lambda, err := laplacianSpectrum(g)
	if err != nil {
		return nil, err
	}
	t.laplacian = lambda

	return t, nil
}

// computeClustering fills t.clustering[i] = triangles through i /
// C(degree(i), 2), or 0 when degree(i) < 2.
func computeClustering(g *graph, t *topology) {
	for v := 0; v < NumVertices; v++ {
		ns := g.neighbors(v)
		d := len(ns)
		if d < 2 {
			t.clustering[v] = 0
			continue
		}

		triangles := 0
		for i := 0; i < len(ns); i++ {
			for j := i + 1; j < len(ns); j++ {
				if g.adjacent[ns[i]][ns[j]] {
					triangles++
				}
			}
		}

		possible := float64(d*(d-1)) / 2
		t.clustering[v] = float64(triangles) / possible
	}
}

// computeBetweenness runs Brandes' algorithm once per source vertex, in
// ascending vertex order, and accumulates the standard dependency sums.
// The result is normalized by the undirected-graph factor
// 2/((n-1)(n-2)).
func computeBetweenness(g *graph, t *topology) {
	const n = NumVertices
	betweenness := make([]float64, n)

	// Reusable per-source buffers.
	sigma := make([]float64, n)
	dist := make([]int, n)
	delta := make([]float64, n)
	predecessors := make([][]int, n)
	stack := make([]int, 0, n)
	queue := make([]int, 0, n)

	for s := 0; s < n; s++ {
		for v := 0; v < n; v++ {
			predecessors[v] = predecessors[v][:0]
			sigma[v] = 0
			dist[v] = -1
			delta[v] = 0
		}
		sigma[s] = 1
		dist[s] = 0
		stack = stack[:0]
		queue = append(queue[:0], s)

		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			stack = append(stack, v)

			for w := 0; w < n; w++ {
				if !g.adjacent[v][w] {
					continue
				}
				if dist[w] < 0 {
					dist[w] = dist[v] + 1
					queue = append(queue, w)
				}
				if dist[w] == dist[v]+1 {
					sigma[w] += sigma[v]
					predecessors[w] = append(predecessors[w], v)
				}
			}
		}

		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			for _, v := range predecessors[w] {
				delta[v] += (sigma[v] / sigma[w]) * (1 + delta[w])
			}
			if w != s {
				betweenness[w] += delta[w]
			}
		}
	}

	norm := 1.0
	if n > 2 {
		norm = 2.0 / float64((n-1)*(n-2))
	}
	for v := 0; v < n; v++ {
		t.betweenness[v] = betweenness[v] * norm
	}
}

// laplacianSpectrum computes the eigenvalues of L = D - A for the graph's
// Laplacian via the cyclic Jacobi eigenvalue algorithm, returning them
// sorted ascending. Jacobi's algorithm is used (rather than a library
// eigensolver) because no dense linear-algebra package is available in
// this module's dependency surface; see DESIGN.md.
func laplacianSpectrum(g *graph) ([NumVertices]float64, error) {
	const n = NumVertices
	var lambda [NumVertices]float64

	// Build L = D - A as a dense symmetric matrix.
	a := make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		a[i][i] = float64(g.degree(i))
		for j := 0; j < n; j++ {
			if i != j && g.adjacent[i][j] {
				a[i][j] = -1
			}
		}
	}

	const maxSweeps = 100
	const tolerance = 1e-10

	converged := false
	for sweep := 0; sweep < maxSweeps; sweep++ {
		offDiag := 0.0
		for p := 0; p < n; p++ {
			for q := p + 1; q < n; q++ {
				offDiag += a[p][q] * a[p][q]
			}
		}
		if offDiag < tolerance {
			converged = true
			break
		}

		for p := 0; p < n; p++ {
			for q := p + 1; q < n; q++ {
				if math.Abs(a[p][q]) < 1e-15 {
					continue
				}

				theta := (a[q][q] - a[p][p]) / (2 * a[p][q])
				t := math.Copysign(1, theta) / (math.Abs(theta) + math.Sqrt(theta*theta+1))
				c := 1 / math.Sqrt(t*t+1)
				s := t * c

				app, aqq, apq := a[p][p], a[q][q], a[p][q]
				a[p][p] = c*c*app - 2*s*c*apq + s*s*aqq
				a[q][q] = s*s*app + 2*s*c*apq + c*c*aqq
				a[p][q] = 0
				a[q][p] = 0

				for i := 0; i < n; i++ {
					if i == p || i == q {
						continue
					}
					aip, aiq := a[i][p], a[i][q]
					a[i][p] = c*aip - s*aiq
					a[p][i] = a[i][p]
					a[i][q] = s*aip + c*aiq
					a[q][i] = a[i][q]
				}
			}
		}
	}

	if !converged {
		return lambda, fmt.Errorf("%w: laplacian eigensolver did not converge after %d sweeps", errLaplacianConverge, maxSweeps)
	}

	for i := 0; i < n; i++ {
		lambda[i] = a[i][i]
	}
	insertionSortFloat64(lambda[:])
	return lambda, nil
}

func insertionSortFloat64(xs []float64) {
	for i := 1; i < len(xs); i++ {
		v := xs[i]
		j := i - 1
		for j >= 0 && xs[j] > v {
			xs[j+1] = xs[j]
			j--
		}
		xs[j+1] = v
	}
}

// Package graphcrypto derives a 128-bit block cipher and counter-mode
// byte generator from the topology of a seed-generated 256-vertex graph.
//
// Given a seed, the package deterministically builds an undirected graph on
// 256 vertices, extracts its degree, clustering, betweenness, and Laplacian
// spectrum, fuses them into 256 bytes, and uses those bytes to derive an
// 8x8 affine-transformed AES S-box, a 128-bit permutation, and thirteen
// round keys. A 12-round substitution-permutation network built from those
// derived tables backs both a counter-mode keystream and a block encryption
// primitive. See the top-level SPEC_FULL.md for the full contract.
package graphcrypto

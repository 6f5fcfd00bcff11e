package graphcrypto

import (
	"crypto/sha256"
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when an operation is given an argument that
// cannot be satisfied, such as a negative byte count.
var ErrInvalidInput = errors.New("graphcrypto: invalid input")

// ErrConstruction is returned by New when the derived cryptographic
// material cannot be built from the seed, such as when the Laplacian
// eigensolver fails to converge.
var ErrConstruction = errors.New("graphcrypto: construction failed")

// errLaplacianConverge is wrapped by ErrConstruction when the Jacobi
// eigensolver exhausts its sweep budget without the off-diagonal mass
// dropping below tolerance.
var errLaplacianConverge = fmt.Errorf("%w: laplacian eigensolver", ErrConstruction)

// constructionError wraps ErrConstruction with enough context to reproduce
// the failure without leaking the seed itself into logs or error strings.
type constructionError struct {
	reason   string
	seedHash [sha256.Size]byte
}

func (e *constructionError) Error() string {
	return fmt.Sprintf("graphcrypto: construction failed (seed sha256=%x): %s", e.seedHash, e.reason)
}

func (e *constructionError) Unwrap() error {
	return ErrConstruction
}

func newConstructionError(seed []byte, reason string) error {
	return &constructionError{reason: reason, seedHash: sha256.Sum256(seed)}
}

package balancesum

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// ComputeTEvals builds the range table evaluation vector: t(omega^i) = i
// for i in [0,n) (§3).
func ComputeTEvals(n uint64) []fr.Element {
	t := make([]fr.Element, n)
	for i := uint64(0); i < n; i++ {
		t[i].SetUint64(i)
	}
	return t
}

// Precomputed holds the public parameters shared by every proof over a
// fixed domain: the range-table polynomial and its commitment (§2, "C7
// consumes the committer key and a precomputed (t(X), T) pair").
type Precomputed struct {
	Domain *Domain
	TPoly  []fr.Element
	T      Commitment
}

// Precompute builds the range-table polynomial and commits to it once, so
// every subsequent Prove call can reuse (TPoly, T) without recomputing
// them.
func Precompute(ck *CommitterKey, n uint64, blinding bool) (*Precomputed, error) {
	d, err := NewDomain(n, blinding)
	if err != nil {
		return nil, err
	}
	tEvals := ComputeTEvals(n)
	tPoly := d.Interpolate(tEvals)
	T, err := Commit(ck, tPoly)
	if err != nil {
		return nil, err
	}
	return &Precomputed{Domain: d, TPoly: tPoly, T: T}, nil
}

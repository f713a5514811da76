package balancesum

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/nume-crypto/posol/internal/errs"
)

// Witness holds the evaluation vectors and b's interpolated polynomial
// that a proof is built from. Prove does not build one: it returns b's
// commitment and polynomial directly, and callers keep those for later
// individual openings (§4.8).
type Witness struct {
	Balances []uint64 // padded to length n
	BEvals   []fr.Element
	BPoly    []fr.Element
	Sum      fr.Element // m
}

// GenerateB builds the balance evaluation vector: bal[i] for i < len(bal),
// zero for the remaining positions up to n, and returns the padded int
// array (needed by GenerateH) and the running sum m (§4.3 step 1).
func GenerateB(n uint64, bal []uint64) (balPadded []uint64, bEvals []fr.Element, m fr.Element, err error) {
	if uint64(len(bal)) > n {
		return nil, nil, fr.Element{}, errs.New(errs.InvalidInput, "%d balances exceed domain size %d", len(bal), n)
	}

	balPadded = make([]uint64, n)
	bEvals = make([]fr.Element, n)
	for i, b := range bal {
		if b >= n {
			return nil, nil, fr.Element{}, errs.New(errs.InvalidInput, "balance[%d]=%d is not < n=%d", i, b, n)
		}
		balPadded[i] = b
		bEvals[i].SetUint64(b)
		m.Add(&m, &bEvals[i])
	}
	return balPadded, bEvals, m, nil
}

// GenerateS builds the prefix-sum accumulator: s[0] = m, and s[i] for
// i>0 is the exclusive prefix sum of b[0..i-1]. The quotient identity's
// first term enforces s(omega*X) - s(X) + m*L0(X) - b(X) = 0 on D_n; at
// i=0 that reads s[1] = s[0] - m + b[0] = b[0] because s[0] = m, and at
// the wraparound s[0] = s[n-1] + b[n-1] = sum(b) = m, closing the cycle
// (§4.3 step 2).
func GenerateS(n uint64, bEvals []fr.Element, m fr.Element) []fr.Element {
	s := make([]fr.Element, n)
	s[0] = m

	var running fr.Element
	for i := uint64(1); i < n; i++ {
		running.Add(&running, &bEvals[i-1])
		s[i] = running
	}
	return s
}

// GenerateH builds the two halves of the sorted multiset permutation that
// arithmetizes the range predicate (§4.3 step 3): for each value v in
// [0,n), v is repeated count_v+1 times, where count_v counts balances
// equal to v across the whole padded domain (so zero-padding beyond the
// real user count legitimately contributes to count_0). The resulting
// length-2n non-decreasing sequence is split at n into h1, h2.
func GenerateH(n uint64, balPadded []uint64) (h1, h2 []fr.Element, err error) {
	if uint64(len(balPadded)) != n {
		return nil, nil, errs.New(errs.InvalidInput, "padded balances length %d != n=%d", len(balPadded), n)
	}

	counts := make([]uint64, n)
	for _, v := range balPadded {
		if v >= n {
			return nil, nil, errs.New(errs.InvalidInput, "balance %d is not < n=%d", v, n)
		}
		counts[v]++
	}

	seq := make([]uint64, 0, 2*n)
	for v := uint64(0); v < n; v++ {
		for c := uint64(0); c <= counts[v]; c++ {
			seq = append(seq, v)
		}
	}
	if uint64(len(seq)) != 2*n {
		return nil, nil, errs.New(errs.InvalidInput, "h sequence length %d != 2n=%d", len(seq), 2*n)
	}

	h1 = make([]fr.Element, n)
	h2 = make([]fr.Element, n)
	for i := uint64(0); i < n; i++ {
		h1[i].SetUint64(seq[i])
	}
	for i := uint64(0); i < n; i++ {
		h2[i].SetUint64(seq[n+i])
	}

	if !h1[0].IsZero() {
		return nil, nil, errs.New(errs.InvalidInput, "h1[0] = %s, want 0", h1[0].String())
	}
	var nMinus1 fr.Element
	nMinus1.SetUint64(n - 1)
	if !h2[n-1].Equal(&nMinus1) {
		return nil, nil, errs.New(errs.InvalidInput, "h2[n-1] = %s, want %d", h2[n-1].String(), n-1)
	}

	return h1, h2, nil
}

// GenerateZ builds the grand-product accumulator after gamma has been
// squeezed from the transcript (§4.3 step 4): z[0] = 1, and
// z[i+1] = z[i] * (gamma+b[i])(gamma+t[i]) / ((gamma+h1[i])(gamma+h2[i])),
// where t[i] = i is the range table. Closure at the wraparound is not
// enforced here; it is the quotient identity's job (§4.5).
func GenerateZ(n uint64, bEvals, h1Evals, h2Evals []fr.Element, gamma fr.Element) ([]fr.Element, error) {
	z := make([]fr.Element, n)
	z[0].SetOne()

	for i := uint64(0); i < n-1; i++ {
		var tI, num1, num2, num, den1, den2, den, denInv, ratio fr.Element
		tI.SetUint64(i)

		num1.Add(&gamma, &bEvals[i])
		num2.Add(&gamma, &tI)
		num.Mul(&num1, &num2)

		den1.Add(&gamma, &h1Evals[i])
		den2.Add(&gamma, &h2Evals[i])
		den.Mul(&den1, &den2)

		if den.IsZero() {
			return nil, errs.New(errs.InvalidInput, "zero grand-product denominator at i=%d", i)
		}
		denInv.Inverse(&den)
		ratio.Mul(&num, &denInv)

		z[i+1].Mul(&z[i], &ratio)
	}
	return z, nil
}

// AddBlinders lifts poly above degree n-1 for bounded zero-knowledge
// (§4.3, blinding mode): it appends k random coefficients at degrees
// [n, n+k) and subtracts the same values at degrees [0, k), so that
// poly(omega^i) for i in [0,n) is unchanged (X^(n+j) agrees with X^j on
// D_n) while the polynomial itself now carries fresh randomness above n.
func AddBlinders(poly []fr.Element, n uint64, blinders []fr.Element) []fr.Element {
	k := uint64(len(blinders))
	out := make([]fr.Element, n+k)
	copy(out, poly)
	for j := uint64(0); j < k; j++ {
		out[n+j] = blinders[j]
		out[j].Sub(&out[j], &blinders[j])
	}
	return out
}

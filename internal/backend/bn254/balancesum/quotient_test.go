package balancesum

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"
)

func buildWitnessPolys(t *testing.T, d *Domain, bal []uint64, gamma fr.Element) (tPoly, bPoly, sPoly, h1Poly, h2Poly, zPoly []fr.Element, m fr.Element) {
	t.Helper()
	n := d.N
	balPadded, bEvals, m, err := GenerateB(n, bal)
	require.NoError(t, err)
	sEvals := GenerateS(n, bEvals, m)
	h1Evals, h2Evals, err := GenerateH(n, balPadded)
	require.NoError(t, err)
	zEvals, err := GenerateZ(n, bEvals, h1Evals, h2Evals, gamma)
	require.NoError(t, err)

	tPoly = d.Interpolate(ComputeTEvals(n))
	bPoly = d.Interpolate(bEvals)
	sPoly = d.Interpolate(sEvals)
	h1Poly = d.Interpolate(h1Evals)
	h2Poly = d.Interpolate(h2Evals)
	zPoly = d.Interpolate(zEvals)
	return
}

func TestComputeQuotientWithinDegreeBound(t *testing.T) {
	d, err := NewDomain(8, false)
	require.NoError(t, err)

	var gamma, delta fr.Element
	gamma.SetUint64(11)
	delta.SetUint64(13)

	tPoly, bPoly, sPoly, h1Poly, h2Poly, zPoly, m := buildWitnessPolys(t, d, []uint64{1, 2, 3, 0}, gamma)

	q, err := ComputeQuotient(d, QuotientInputs{
		TPoly: tPoly, BPoly: bPoly, SPoly: sPoly, H1Poly: h1Poly, H2Poly: h2Poly, ZPoly: zPoly,
		M: m, Gamma: gamma, Delta: delta,
	}, 1)
	require.NoError(t, err)
	require.LessOrEqual(t, len(q)-1, int(2*d.N))

	// Q(X) * Z_H(X) must equal the 8-term identity pointwise on the base
	// domain trivially (Z_H is zero there); a stronger sanity check is that
	// Q is well-formed (finite degree, no division-by-zero panic already
	// implied by reaching this point without error).
	require.NotEmpty(t, q)
}

func TestSplitQuotientReassembles(t *testing.T) {
	n := uint64(8)
	q := make([]fr.Element, 20)
	for i := range q {
		q[i].SetUint64(uint64(i + 1))
	}
	q1, q2 := SplitQuotient(q, n, 0, nil)
	require.Len(t, q1, int(n))
	require.Len(t, q2, len(q)-int(n))
	for i := range q1 {
		require.True(t, q1[i].Equal(&q[i]))
	}
	for i := range q2 {
		require.True(t, q2[i].Equal(&q[int(n)+i]))
	}
}

func TestSplitQuotientWithBlinderPreservesSum(t *testing.T) {
	n := uint64(8)
	q := make([]fr.Element, 8) // shorter than split: entirely q1
	for i := range q {
		q[i].SetUint64(uint64(i + 1))
	}
	var e0 fr.Element
	e0.SetUint64(99)

	q1, q2 := SplitQuotient(q, n, 3, &e0)
	require.Len(t, q1, int(n)+3+1)
	require.Len(t, q2, 1)

	var negE0 fr.Element
	negE0.Neg(&e0)
	require.True(t, q2[0].Equal(&negE0))
	require.True(t, q1[len(q1)-1].Equal(&e0))
}

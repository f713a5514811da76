package balancesum

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"
)

func TestRCommitMatchesDirectEvaluation(t *testing.T) {
	d, err := NewDomain(8, false)
	require.NoError(t, err)
	ck, _ := testSRS(t, 2*d.N+10)

	var gamma, delta fr.Element
	gamma.SetUint64(11)
	delta.SetUint64(13)

	tPoly, bPoly, sPoly, h1Poly, h2Poly, zPoly, m := buildWitnessPolys(t, d, []uint64{1, 2, 3, 0}, gamma)

	q, err := ComputeQuotient(d, QuotientInputs{
		TPoly: tPoly, BPoly: bPoly, SPoly: sPoly, H1Poly: h1Poly, H2Poly: h2Poly, ZPoly: zPoly,
		M: m, Gamma: gamma, Delta: delta,
	}, 1)
	require.NoError(t, err)
	q1Poly, q2Poly := SplitQuotient(q, d.N, 0, nil)

	var zeta fr.Element
	zeta.SetUint64(17)
	var zetaOmega fr.Element
	zetaOmega.Mul(&zeta, &d.Base.Generator)

	ev := ComputeEvaluations(zeta, zetaOmega, tPoly, bPoly, h1Poly, h2Poly, sPoly, zPoly)

	rPoly, rEval := BuildLinearisation(d, zeta, gamma, delta, m, 0, ev, sPoly, bPoly, zPoly, h1Poly, h2Poly, q1Poly, q2Poly)

	// The prover's r(zeta), computed by directly evaluating r(X), must
	// equal the closed-form rEval BuildLinearisation also returns.
	directEval := Evaluate(rPoly, zeta)
	require.True(t, directEval.Equal(&rEval), "direct r(zeta) = %s, closed form = %s", directEval.String(), rEval.String())

	// The verifier's homomorphic RCommit must equal a direct commitment to
	// r(X), without ever constructing r(X) itself.
	commS, err := Commit(ck, sPoly)
	require.NoError(t, err)
	commB, err := Commit(ck, bPoly)
	require.NoError(t, err)
	commZ, err := Commit(ck, zPoly)
	require.NoError(t, err)
	commH1, err := Commit(ck, h1Poly)
	require.NoError(t, err)
	commH2, err := Commit(ck, h2Poly)
	require.NoError(t, err)
	commQ1, err := Commit(ck, q1Poly)
	require.NoError(t, err)
	commQ2, err := Commit(ck, q2Poly)
	require.NoError(t, err)

	zh := d.EvaluateVanishing(zeta)
	var one fr.Element
	one.SetOne()
	l0 := d.LagrangeEval(one, zh, zeta)
	lnMinus1 := d.LagrangeEval(d.Element(d.N-1), zh, zeta)

	rComm, err := RCommit(zeta, gamma, delta, zh, l0, lnMinus1, 0, ev, commS, commB, commZ, commH1, commH2, commQ1, commQ2)
	require.NoError(t, err)

	directComm, err := Commit(ck, rPoly)
	require.NoError(t, err)

	require.Equal(t, directComm, rComm)
}

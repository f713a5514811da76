package balancesum

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/nume-crypto/posol/internal/transcript"
)

// splitDelta is the q1/q2 split offset of §3: 3 with blinding enabled (to
// make room for the blinding scalar e0 appended to q1), 0 without.
func splitDelta(blinding bool) uint64 {
	if blinding {
		return 3
	}
	return 0
}

// Prove runs the round-by-round prover of §4.7 over a fixed committer key
// and precomputed range table, producing the commitment to b and its
// interpolated polynomial (so the caller can later serve individual
// balance openings, §4.8) and the proof. blinders, when non-nil, supplies
// fresh per-polynomial randomness for b, s, h1, h2, z and the quotient
// split scalar; nil runs the non-blinded configuration.
func Prove(ck *CommitterKey, pre *Precomputed, tr transcript.Protocol, balances []uint64, blinders *Blinders) (fr.Element, Commitment, []fr.Element, *Proof, error) {
	d := pre.Domain
	n := d.N

	if err := tr.AppendU64("gamma", n); err != nil {
		return fr.Element{}, Commitment{}, nil, nil, err
	}

	balPadded, bEvals, m, err := GenerateB(n, balances)
	if err != nil {
		return fr.Element{}, Commitment{}, nil, nil, err
	}
	if err := tr.AppendScalar("gamma", m); err != nil {
		return fr.Element{}, Commitment{}, nil, nil, err
	}
	sEvals := GenerateS(n, bEvals, m)
	h1Evals, h2Evals, err := GenerateH(n, balPadded)
	if err != nil {
		return fr.Element{}, Commitment{}, nil, nil, err
	}

	bPoly := d.Interpolate(bEvals)
	sPoly := d.Interpolate(sEvals)
	h1Poly := d.Interpolate(h1Evals)
	h2Poly := d.Interpolate(h2Evals)

	if blinders != nil {
		bPoly = AddBlinders(bPoly, n, blinders.B)
		sPoly = AddBlinders(sPoly, n, blinders.S)
		h1Poly = AddBlinders(h1Poly, n, blinders.H1)
		h2Poly = AddBlinders(h2Poly, n, blinders.H2)
	}

	commB, err := Commit(ck, bPoly)
	if err != nil {
		return fr.Element{}, Commitment{}, nil, nil, err
	}
	commS, err := Commit(ck, sPoly)
	if err != nil {
		return fr.Element{}, Commitment{}, nil, nil, err
	}
	commH1, err := Commit(ck, h1Poly)
	if err != nil {
		return fr.Element{}, Commitment{}, nil, nil, err
	}
	commH2, err := Commit(ck, h2Poly)
	if err != nil {
		return fr.Element{}, Commitment{}, nil, nil, err
	}
	if err := tr.AppendCommitment("gamma", bn254.G1Affine(commB)); err != nil {
		return fr.Element{}, Commitment{}, nil, nil, err
	}
	if err := tr.AppendCommitment("gamma", bn254.G1Affine(commS)); err != nil {
		return fr.Element{}, Commitment{}, nil, nil, err
	}
	if err := tr.AppendCommitment("gamma", bn254.G1Affine(commH1)); err != nil {
		return fr.Element{}, Commitment{}, nil, nil, err
	}
	if err := tr.AppendCommitment("gamma", bn254.G1Affine(commH2)); err != nil {
		return fr.Element{}, Commitment{}, nil, nil, err
	}

	gamma, err := tr.ChallengeScalar("gamma")
	if err != nil {
		return fr.Element{}, Commitment{}, nil, nil, err
	}

	zEvals, err := GenerateZ(n, bEvals, h1Evals, h2Evals, gamma)
	if err != nil {
		return fr.Element{}, Commitment{}, nil, nil, err
	}
	zPoly := d.Interpolate(zEvals)
	if blinders != nil {
		zPoly = AddBlinders(zPoly, n, blinders.Z)
	}
	commZ, err := Commit(ck, zPoly)
	if err != nil {
		return fr.Element{}, Commitment{}, nil, nil, err
	}
	if err := tr.AppendCommitment("delta", bn254.G1Affine(commZ)); err != nil {
		return fr.Element{}, Commitment{}, nil, nil, err
	}

	delta, err := tr.ChallengeScalar("delta")
	if err != nil {
		return fr.Element{}, Commitment{}, nil, nil, err
	}

	qIn := QuotientInputs{
		TPoly: pre.TPoly, BPoly: bPoly, SPoly: sPoly, H1Poly: h1Poly, H2Poly: h2Poly, ZPoly: zPoly,
		M: m, Gamma: gamma, Delta: delta,
	}
	q, err := ComputeQuotient(d, qIn, 0)
	if err != nil {
		return fr.Element{}, Commitment{}, nil, nil, err
	}

	sd := splitDelta(blinders != nil)
	var e0 *fr.Element
	if blinders != nil {
		e0 = &blinders.E0
	}
	q1Poly, q2Poly := SplitQuotient(q, n, sd, e0)

	commQ1, err := Commit(ck, q1Poly)
	if err != nil {
		return fr.Element{}, Commitment{}, nil, nil, err
	}
	commQ2, err := Commit(ck, q2Poly)
	if err != nil {
		return fr.Element{}, Commitment{}, nil, nil, err
	}
	if err := tr.AppendCommitment("zeta", bn254.G1Affine(commQ1)); err != nil {
		return fr.Element{}, Commitment{}, nil, nil, err
	}
	if err := tr.AppendCommitment("zeta", bn254.G1Affine(commQ2)); err != nil {
		return fr.Element{}, Commitment{}, nil, nil, err
	}

	zeta, err := tr.ChallengeScalar("zeta")
	if err != nil {
		return fr.Element{}, Commitment{}, nil, nil, err
	}
	var zetaOmega fr.Element
	zetaOmega.Mul(&zeta, &d.Base.Generator)

	ev := ComputeEvaluations(zeta, zetaOmega, pre.TPoly, bPoly, h1Poly, h2Poly, sPoly, zPoly)

	rPoly, rEval := BuildLinearisation(d, zeta, gamma, delta, m, sd, ev, sPoly, bPoly, zPoly, h1Poly, h2Poly, q1Poly, q2Poly)
	_ = rEval // the prover does not send r_eval; the verifier recomputes it independently (§4.9)

	// Absorb the eight evaluations in the fixed order §4.7 step 5 names.
	for _, label := range []struct {
		name string
		v    fr.Element
	}{
		{"eta", ev.T}, {"eta", ev.B}, {"eta", ev.H1}, {"eta", ev.H2},
		{"eta", ev.SNext}, {"eta", ev.H1Next}, {"eta", ev.H2Next}, {"eta", ev.ZNext},
	} {
		if err := tr.AppendScalar(label.name, label.v); err != nil {
			return fr.Element{}, Commitment{}, nil, nil, err
		}
	}

	eta, err := tr.ChallengeScalar("eta")
	if err != nil {
		return fr.Element{}, Commitment{}, nil, nil, err
	}

	w, err := Open(ck, [][]fr.Element{rPoly, pre.TPoly, bPoly, h1Poly, h2Poly}, zeta, eta)
	if err != nil {
		return fr.Element{}, Commitment{}, nil, nil, err
	}
	wPrime, err := Open(ck, [][]fr.Element{sPoly, h1Poly, h2Poly, zPoly}, zetaOmega, eta)
	if err != nil {
		return fr.Element{}, Commitment{}, nil, nil, err
	}

	proof := &Proof{
		B: commB, S: commS, H1: commH1, H2: commH2, Z: commZ,
		Q1: commQ1, Q2: commQ2,
		Evaluations: ev,
		W:           w,
		WPrime:      wPrime,
	}
	return m, commB, bPoly, proof, nil
}

// Blinders bundles the fresh randomness the blinding configuration needs:
// per-polynomial blinder coefficients for b, s, h1, h2, z (§4.3) and the
// quotient split scalar e0 (§4.5). The caller is responsible for sampling
// these from a secure source; Prove never samples randomness itself so
// tests can supply fixed values deterministically.
type Blinders struct {
	B, S, H1, H2, Z []fr.Element
	E0              fr.Element
}

package balancesum

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/nume-crypto/posol/internal/errs"
	"github.com/nume-crypto/posol/internal/transcript"
)

// Verify mirrors the prover's round order to recompute gamma, delta, zeta
// and eta from the transcript, reconstructs the linearisation commitment
// and r(zeta) in closed form, and checks the two batched openings (§4.9).
// T is the precomputed range-table commitment shared by every proof over
// this domain; n, m are the public domain size and declared total. The
// caller passes blinding=true iff the proof was produced with blinders,
// since that changes the quotient split offset baked into the
// linearisation coefficients (§3).
func Verify(vk *VerifierKey, d *Domain, tr transcript.Protocol, n uint64, m fr.Element, T Commitment, proof *Proof, blinding bool) error {
	if n != d.N {
		return errs.New(errs.InvalidInput, "proof domain size %d does not match verifier domain %d", n, d.N)
	}

	if err := tr.AppendU64("gamma", n); err != nil {
		return err
	}
	if err := tr.AppendScalar("gamma", m); err != nil {
		return err
	}
	if err := tr.AppendCommitment("gamma", bn254.G1Affine(proof.B)); err != nil {
		return err
	}
	if err := tr.AppendCommitment("gamma", bn254.G1Affine(proof.S)); err != nil {
		return err
	}
	if err := tr.AppendCommitment("gamma", bn254.G1Affine(proof.H1)); err != nil {
		return err
	}
	if err := tr.AppendCommitment("gamma", bn254.G1Affine(proof.H2)); err != nil {
		return err
	}
	gamma, err := tr.ChallengeScalar("gamma")
	if err != nil {
		return err
	}

	if err := tr.AppendCommitment("delta", bn254.G1Affine(proof.Z)); err != nil {
		return err
	}
	delta, err := tr.ChallengeScalar("delta")
	if err != nil {
		return err
	}

	if err := tr.AppendCommitment("zeta", bn254.G1Affine(proof.Q1)); err != nil {
		return err
	}
	if err := tr.AppendCommitment("zeta", bn254.G1Affine(proof.Q2)); err != nil {
		return err
	}
	zeta, err := tr.ChallengeScalar("zeta")
	if err != nil {
		return err
	}
	var zetaOmega fr.Element
	zetaOmega.Mul(&zeta, &d.Base.Generator)

	ev := proof.Evaluations
	for _, v := range []fr.Element{ev.T, ev.B, ev.H1, ev.H2, ev.SNext, ev.H1Next, ev.H2Next, ev.ZNext} {
		if err := tr.AppendScalar("eta", v); err != nil {
			return err
		}
	}
	eta, err := tr.ChallengeScalar("eta")
	if err != nil {
		return err
	}

	zh := d.EvaluateVanishing(zeta)
	var one fr.Element
	one.SetOne()
	l0 := d.LagrangeEval(one, zh, zeta)
	lnMinus1 := d.LagrangeEval(d.Element(d.N-1), zh, zeta)

	sd := splitDelta(blinding)
	rEval := computeREval(m, gamma, delta, l0, lnMinus1, d.N, ev)
	rComm, err := RCommit(zeta, gamma, delta, zh, l0, lnMinus1, sd, ev, proof.S, proof.B, proof.Z, proof.H1, proof.H2, proof.Q1, proof.Q2)
	if err != nil {
		return err
	}

	if err := Check(vk, []Commitment{rComm, T, proof.B, proof.H1, proof.H2}, zeta,
		[]fr.Element{rEval, ev.T, ev.B, ev.H1, ev.H2}, proof.W, eta); err != nil {
		return err
	}

	return Check(vk, []Commitment{proof.S, proof.H1, proof.H2, proof.Z}, zetaOmega,
		[]fr.Element{ev.SNext, ev.H1Next, ev.H2Next, ev.ZNext}, proof.WPrime, eta)
}

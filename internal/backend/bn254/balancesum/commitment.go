package balancesum

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/kzg"

	"github.com/nume-crypto/posol/internal/errs"
)

// Commitment is a single commitment: a bn254 G1 point (C2).
type Commitment = kzg.Digest

// OpeningProof is a KZG opening witness for a batch of polynomials folded
// at a single point.
type OpeningProof = kzg.OpeningProof

// CommitterKey holds the prover-side view of the SRS.
type CommitterKey struct {
	SRS *kzg.SRS
}

// VerifierKey holds the verifier-side view of the SRS. It is the same
// underlying SRS as CommitterKey; gnark-crypto's kzg.SRS carries both the
// G1 Lagrange/monomial basis and the two G2 points a verifier needs, so
// unlike ark-poly-commit's split PowersOfG/VerifierKey, trim here is an
// identity adapter rather than a real slice.
type VerifierKey struct {
	SRS *kzg.SRS
}

// Setup runs the (for-tests-only, single-party) trusted setup: it samples
// no fresh randomness itself, taking the toxic-waste scalar from the
// caller so tests can reproduce a fixed SRS deterministically.
func Setup(maxDegree uint64, alpha *big.Int) (*kzg.SRS, error) {
	srs, err := kzg.NewSRS(maxDegree+1, alpha)
	if err != nil {
		return nil, errs.Wrap(errs.CommitError, err, "kzg setup (max degree %d)", maxDegree)
	}
	return srs, nil
}

// Trim returns the committer/verifier key views of an SRS sized for
// maxDegree (C2 trim).
func Trim(srs *kzg.SRS, maxDegree uint64) (*CommitterKey, *VerifierKey) {
	return &CommitterKey{SRS: srs}, &VerifierKey{SRS: srs}
}

// Commit commits to a single polynomial (C2 commit).
func Commit(ck *CommitterKey, poly []fr.Element) (Commitment, error) {
	c, err := kzg.Commit(poly, ck.SRS)
	if err != nil {
		return Commitment{}, errs.Wrap(errs.CommitError, err, "commit")
	}
	return c, nil
}

// CommitMany commits to several polynomials in order.
func CommitMany(ck *CommitterKey, polys [][]fr.Element) ([]Commitment, error) {
	out := make([]Commitment, len(polys))
	for i, p := range polys {
		c, err := Commit(ck, p)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// FoldPolynomials returns sum_i eta^i * polys[i], coefficientwise. This is
// how the batched KZG opening at one point (§4.2, §4.7) combines several
// polynomials under one opening challenge instead of opening each
// separately.
func FoldPolynomials(polys [][]fr.Element, eta fr.Element) []fr.Element {
	maxLen := 0
	for _, p := range polys {
		if len(p) > maxLen {
			maxLen = len(p)
		}
	}
	folded := make([]fr.Element, maxLen)

	var power fr.Element
	power.SetOne()
	for _, p := range polys {
		for j := range p {
			var term fr.Element
			term.Mul(&p[j], &power)
			folded[j].Add(&folded[j], &term)
		}
		power.Mul(&power, &eta)
	}
	return folded
}

// FoldEvaluations returns sum_i eta^i * evals[i], the scalar companion to
// FoldPolynomials used to state the claimed value of a batched opening.
func FoldEvaluations(evals []fr.Element, eta fr.Element) fr.Element {
	var folded, power fr.Element
	power.SetOne()
	for i := range evals {
		var term fr.Element
		term.Mul(&evals[i], &power)
		folded.Add(&folded, &term)
		power.Mul(&power, &eta)
	}
	return folded
}

// MultiScalarMul computes sum_i scalars[i] * comms[i] (C2 multi_scalar_mul).
// The verifier relies on this homomorphism to reconstruct a commitment to
// the linearisation polynomial r(X) without the prover ever sending it.
func MultiScalarMul(comms []Commitment, scalars []fr.Element) (Commitment, error) {
	if len(comms) != len(scalars) {
		return Commitment{}, errs.New(errs.CheckError, "multi_scalar_mul: %d commitments vs %d scalars", len(comms), len(scalars))
	}
	points := make([]bn254.G1Affine, len(comms))
	for i, c := range comms {
		points[i] = bn254.G1Affine(c)
	}
	var result bn254.G1Affine
	if _, err := result.MultiExp(points, scalars, ecc.MultiExpConfig{}); err != nil {
		return Commitment{}, errs.Wrap(errs.CheckError, err, "multi_scalar_mul")
	}
	return Commitment(result), nil
}

// foldCommitments is MultiScalarMul specialised to consecutive powers of
// eta, mirroring FoldPolynomials on the commitment side.
func foldCommitments(comms []Commitment, eta fr.Element) (Commitment, error) {
	scalars := make([]fr.Element, len(comms))
	var power fr.Element
	power.SetOne()
	for i := range comms {
		scalars[i] = power
		power.Mul(&power, &eta)
	}
	return MultiScalarMul(comms, scalars)
}

// Open produces a batched opening of polys at point, folded under eta (C2
// open). The caller supplies eta from its own Fiat-Shamir transcript
// rather than letting the commitment scheme derive it, so the transcript
// stays the single source of randomness for the whole protocol.
func Open(ck *CommitterKey, polys [][]fr.Element, point, eta fr.Element) (OpeningProof, error) {
	folded := FoldPolynomials(polys, eta)
	proof, err := kzg.Open(folded, point, ck.SRS)
	if err != nil {
		return OpeningProof{}, errs.Wrap(errs.OpenError, err, "open at point")
	}
	return proof, nil
}

// Check verifies a batched opening against commitments and claimed
// evaluations, both folded under eta (C2 check).
func Check(vk *VerifierKey, comms []Commitment, point fr.Element, evals []fr.Element, proof OpeningProof, eta fr.Element) error {
	foldedComm, err := foldCommitments(comms, eta)
	if err != nil {
		return errs.Wrap(errs.CheckError, err, "fold commitments")
	}
	foldedEval := FoldEvaluations(evals, eta)
	if !proof.ClaimedValue.Equal(&foldedEval) {
		return errs.New(errs.VerificationFailed, "folded claimed value does not match folded evaluations")
	}
	if err := kzg.Verify(&foldedComm, &proof, point, vk.SRS); err != nil {
		return errs.Wrap(errs.CheckError, err, "kzg verify")
	}
	return nil
}

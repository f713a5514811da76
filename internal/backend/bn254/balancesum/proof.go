package balancesum

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/nume-crypto/posol/internal/codec"
	"github.com/nume-crypto/posol/internal/errs"
)

// Proof bundles everything the verifier needs beyond the public inputs
// (n, m, T, the committer/verifier key): the five round commitments, the
// quotient split, the eight opening evaluations, and the two batched
// opening witnesses (§6).
type Proof struct {
	B, S, H1, H2, Z Commitment
	Q1, Q2          Commitment
	Evaluations     Evaluations
	W, WPrime       OpeningProof
}

// wire is the exact field order §6 lays out: 8 scalars, then 7 G1 points,
// then 2 G1 opening witnesses (each itself a G1 point plus a claimed
// value, per kzg.OpeningProof).
type wire struct {
	B, T, H1, H2                 [32]byte
	SNext, ZNext, H1Next, H2Next [32]byte

	CommitB, CommitS, CommitH1, CommitH2, CommitZ [64]byte
	CommitQ1, CommitQ2                             [64]byte

	WQuotient      [64]byte
	WClaimedValue  [32]byte
	WpQuotient     [64]byte
	WpClaimedValue [32]byte
}

// MarshalBinary serializes a Proof to the big-endian wire layout of §6.
func (p *Proof) MarshalBinary() ([]byte, error) {
	w := wire{
		B:      codec.EncodeScalar(p.Evaluations.B),
		T:      codec.EncodeScalar(p.Evaluations.T),
		H1:     codec.EncodeScalar(p.Evaluations.H1),
		H2:     codec.EncodeScalar(p.Evaluations.H2),
		SNext:  codec.EncodeScalar(p.Evaluations.SNext),
		ZNext:  codec.EncodeScalar(p.Evaluations.ZNext),
		H1Next: codec.EncodeScalar(p.Evaluations.H1Next),
		H2Next: codec.EncodeScalar(p.Evaluations.H2Next),

		CommitB:  codec.EncodeG1(bn254.G1Affine(p.B)),
		CommitS:  codec.EncodeG1(bn254.G1Affine(p.S)),
		CommitH1: codec.EncodeG1(bn254.G1Affine(p.H1)),
		CommitH2: codec.EncodeG1(bn254.G1Affine(p.H2)),
		CommitZ:  codec.EncodeG1(bn254.G1Affine(p.Z)),
		CommitQ1: codec.EncodeG1(bn254.G1Affine(p.Q1)),
		CommitQ2: codec.EncodeG1(bn254.G1Affine(p.Q2)),

		WQuotient:      codec.EncodeG1(p.W.H),
		WClaimedValue:  codec.EncodeScalar(p.W.ClaimedValue),
		WpQuotient:     codec.EncodeG1(p.WPrime.H),
		WpClaimedValue: codec.EncodeScalar(p.WPrime.ClaimedValue),
	}

	out := make([]byte, 0, 8*32+7*64+2*(64+32))
	out = append(out, w.B[:]...)
	out = append(out, w.T[:]...)
	out = append(out, w.H1[:]...)
	out = append(out, w.H2[:]...)
	out = append(out, w.SNext[:]...)
	out = append(out, w.ZNext[:]...)
	out = append(out, w.H1Next[:]...)
	out = append(out, w.H2Next[:]...)
	out = append(out, w.CommitB[:]...)
	out = append(out, w.CommitS[:]...)
	out = append(out, w.CommitH1[:]...)
	out = append(out, w.CommitH2[:]...)
	out = append(out, w.CommitZ[:]...)
	out = append(out, w.CommitQ1[:]...)
	out = append(out, w.CommitQ2[:]...)
	out = append(out, w.WQuotient[:]...)
	out = append(out, w.WClaimedValue[:]...)
	out = append(out, w.WpQuotient[:]...)
	out = append(out, w.WpClaimedValue[:]...)
	return out, nil
}

const proofWireLen = 8*32 + 7*64 + 2*(64+32)

// UnmarshalBinary parses the wire layout MarshalBinary produces.
func (p *Proof) UnmarshalBinary(b []byte) error {
	if len(b) != proofWireLen {
		return errs.New(errs.InvalidInput, "proof must be %d bytes, got %d", proofWireLen, len(b))
	}

	readScalar := func(off int) (fr.Element, error) { return codec.DecodeScalar(b[off : off+32]) }
	readG1 := func(off int) (bn254.G1Affine, error) { return codec.DecodeG1(b[off : off+64]) }

	off := 0
	var err error
	scalars := make([]fr.Element, 8)
	for i := range scalars {
		if scalars[i], err = readScalar(off); err != nil {
			return err
		}
		off += 32
	}
	p.Evaluations = Evaluations{
		B: scalars[0], T: scalars[1], H1: scalars[2], H2: scalars[3],
		SNext: scalars[4], ZNext: scalars[5], H1Next: scalars[6], H2Next: scalars[7],
	}

	points := make([]bn254.G1Affine, 7)
	for i := range points {
		if points[i], err = readG1(off); err != nil {
			return err
		}
		off += 64
	}
	p.B, p.S, p.H1, p.H2, p.Z = Commitment(points[0]), Commitment(points[1]), Commitment(points[2]), Commitment(points[3]), Commitment(points[4])
	p.Q1, p.Q2 = Commitment(points[5]), Commitment(points[6])

	wH, err := readG1(off)
	if err != nil {
		return err
	}
	off += 64
	wVal, err := readScalar(off)
	if err != nil {
		return err
	}
	off += 32
	p.W = OpeningProof{H: wH, ClaimedValue: wVal}

	wpH, err := readG1(off)
	if err != nil {
		return err
	}
	off += 64
	wpVal, err := readScalar(off)
	if err != nil {
		return err
	}
	p.WPrime = OpeningProof{H: wpH, ClaimedValue: wpVal}

	return nil
}

// Package tag commits to a per-user opaque tag (e.g. a hashed account
// identifier) alongside the balance table, using the same single-point
// KZG opening contract individual balance openings use (§4.8), so a user
// can confirm their tag was included without trusting the exchange's
// claimed user list. Grounded on original_source/core/src/tag.rs.
package tag

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/nume-crypto/posol/internal/backend/bn254/balancesum"
	"github.com/nume-crypto/posol/internal/errs"
)

// Commit interpolates tags (zero-padded to n) into a polynomial and
// commits to it, returning both the commitment and the polynomial so the
// caller can retain it for later individual openings.
func Commit(ck *balancesum.CommitterKey, d *balancesum.Domain, n uint64, tags []fr.Element) (balancesum.Commitment, []fr.Element, error) {
	if uint64(len(tags)) > n {
		return balancesum.Commitment{}, nil, errs.New(errs.InvalidInput, "%d tags exceed domain size %d", len(tags), n)
	}
	evals := make([]fr.Element, n)
	copy(evals, tags)
	poly := d.Interpolate(evals)
	c, err := balancesum.Commit(ck, poly)
	if err != nil {
		return balancesum.Commitment{}, nil, err
	}
	return c, poly, nil
}

// IndividualOpen opens the tag polynomial at omega^i (§4.8, mirrored for
// tags).
func IndividualOpen(ck *balancesum.CommitterKey, d *balancesum.Domain, i uint64, tagPoly []fr.Element) (balancesum.OpeningProof, error) {
	return balancesum.IndividualOpen(ck, d, i, tagPoly)
}

// IndividualVerify checks that tagCommit opens to tag at omega^i. A
// single-commitment fold is invariant to the fold challenge (eta^0 = 1
// regardless of eta), so it passes the field's multiplicative identity.
func IndividualVerify(vk *balancesum.VerifierKey, d *balancesum.Domain, i uint64, tag fr.Element, tagCommit balancesum.Commitment, proof balancesum.OpeningProof) error {
	if i >= d.N {
		return errs.New(errs.InvalidInput, "index %d out of range for domain size %d", i, d.N)
	}
	if !proof.ClaimedValue.Equal(&tag) {
		return errs.New(errs.VerificationFailed, "opening claims tag %s, want %s", proof.ClaimedValue.String(), tag.String())
	}
	point := d.Element(i)
	var one fr.Element
	one.SetOne()
	return balancesum.Check(vk, []balancesum.Commitment{tagCommit}, point, []fr.Element{tag}, proof, one)
}

package balancesum

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	kzgbn254 "github.com/consensys/gnark-crypto/ecc/bn254/fr/kzg"

	"github.com/nume-crypto/posol/internal/errs"
)

// IndividualOpen produces a single-point KZG opening of bPoly at omega^i,
// letting a user confirm their own balance entered the committed b
// without learning anyone else's (§4.8). It takes no commitment: the
// opening is checked against the b commitment already published as part
// of the Proof.
func IndividualOpen(ck *CommitterKey, d *Domain, i uint64, bPoly []fr.Element) (OpeningProof, error) {
	if i >= d.N {
		return OpeningProof{}, errs.New(errs.InvalidInput, "index %d out of range for domain size %d", i, d.N)
	}
	point := d.Element(i)
	proof, err := kzgbn254.Open(bPoly, point, ck.SRS)
	if err != nil {
		return OpeningProof{}, errs.Wrap(errs.OpenError, err, "individual open at index %d", i)
	}
	return proof, nil
}

// IndividualVerify checks that commB opens to balance at omega^i (§4.8).
func IndividualVerify(vk *VerifierKey, d *Domain, i uint64, balance uint64, commB Commitment, proof OpeningProof) error {
	if i >= d.N {
		return errs.New(errs.InvalidInput, "index %d out of range for domain size %d", i, d.N)
	}
	var want fr.Element
	want.SetUint64(balance)
	if !proof.ClaimedValue.Equal(&want) {
		return errs.New(errs.VerificationFailed, "opening claims balance %s, want %d", proof.ClaimedValue.String(), balance)
	}
	point := d.Element(i)
	if err := kzgbn254.Verify(&commB, &proof, point, vk.SRS); err != nil {
		return errs.Wrap(errs.CheckError, err, "individual verify at index %d", i)
	}
	return nil
}

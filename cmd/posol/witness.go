package main

import (
	"os"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/nume-crypto/posol/internal/backend/bn254/balancesum"
	"github.com/nume-crypto/posol/internal/codec"
	"github.com/nume-crypto/posol/internal/errs"
)

// proveWitness is everything the open command needs to serve a later
// individual opening without rerunning the whole protocol: the tag and
// balance commitments and their interpolated polynomials (mirrors
// original_source/bin/src/main.rs's Witness struct).
type proveWitness struct {
	TagCommit balancesum.Commitment
	TagPoly   []fr.Element
	BCommit   balancesum.Commitment
	BPoly     []fr.Element
}

func writeWitness(path string, w *proveWitness) error {
	b, err := codec.MarshalCBOR(w)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o600); err != nil {
		return errs.Wrap(errs.InvalidInput, err, "write %s", path)
	}
	return nil
}

func readWitness(path string) (*proveWitness, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(errs.InvalidInput, err, "read %s", path)
	}
	var w proveWitness
	if err := codec.UnmarshalCBOR(b, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

package main

import (
	"os"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr/kzg"

	"github.com/nume-crypto/posol/internal/codec"
	"github.com/nume-crypto/posol/internal/errs"
)

func writeSRS(path string, srs *kzg.SRS) error {
	b, err := codec.MarshalCBOR(srs)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o600); err != nil {
		return errs.Wrap(errs.InvalidInput, err, "write %s", path)
	}
	return nil
}

func readSRS(path string) (*kzg.SRS, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(errs.InvalidInput, err, "read %s", path)
	}
	var srs kzg.SRS
	if err := codec.UnmarshalCBOR(b, &srs); err != nil {
		return nil, err
	}
	return &srs, nil
}

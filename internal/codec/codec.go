// Package codec implements the big-endian wire layout for field elements
// and curve points §6 specifies (matching a pairing-precompile ABI), plus
// a CBOR envelope for the keys and witnesses the CLI persists to disk —
// the role original_source/bin/src/parser.rs's canonical ark_serialize
// (de)serialization plays, but with fxamacker/cbor/v2 standing in for a
// canonical binary codec in Go.
package codec

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/fxamacker/cbor/v2"

	"github.com/nume-crypto/posol/internal/errs"
)

// EncodeScalar returns x as 32 big-endian bytes.
func EncodeScalar(x fr.Element) [32]byte {
	return x.Bytes()
}

// DecodeScalar reads 32 big-endian bytes into a field element.
func DecodeScalar(b []byte) (fr.Element, error) {
	if len(b) != 32 {
		return fr.Element{}, errs.New(errs.InvalidInput, "scalar must be 32 bytes, got %d", len(b))
	}
	var x fr.Element
	x.SetBytes(b)
	return x, nil
}

// EncodeG1 returns a G1 point as the (x, y) tuple of two 32-byte
// big-endian unsigned integers §6 specifies.
func EncodeG1(p bn254.G1Affine) [64]byte {
	var out [64]byte
	xb := p.X.Bytes()
	yb := p.Y.Bytes()
	copy(out[0:32], xb[:])
	copy(out[32:64], yb[:])
	return out
}

// DecodeG1 parses a 64-byte (x, y) tuple into a G1 point.
func DecodeG1(b []byte) (bn254.G1Affine, error) {
	if len(b) != 64 {
		return bn254.G1Affine{}, errs.New(errs.InvalidInput, "G1 point must be 64 bytes, got %d", len(b))
	}
	var p bn254.G1Affine
	p.X.SetBytes(b[0:32])
	p.Y.SetBytes(b[32:64])
	return p, nil
}

// EncodeG2 returns a G2 point as ([x_c1,x_c0],[y_c1,y_c0]), each
// coordinate a 32-byte big-endian unsigned integer — the order common EVM
// pairing precompiles expect for the quadratic-extension coordinates.
func EncodeG2(p bn254.G2Affine) [128]byte {
	var out [128]byte
	xc1 := p.X.A1.Bytes()
	xc0 := p.X.A0.Bytes()
	yc1 := p.Y.A1.Bytes()
	yc0 := p.Y.A0.Bytes()
	copy(out[0:32], xc1[:])
	copy(out[32:64], xc0[:])
	copy(out[64:96], yc1[:])
	copy(out[96:128], yc0[:])
	return out
}

// DecodeG2 parses a 128-byte ([x_c1,x_c0],[y_c1,y_c0]) tuple into a G2
// point.
func DecodeG2(b []byte) (bn254.G2Affine, error) {
	if len(b) != 128 {
		return bn254.G2Affine{}, errs.New(errs.InvalidInput, "G2 point must be 128 bytes, got %d", len(b))
	}
	var p bn254.G2Affine
	p.X.A1.SetBytes(b[0:32])
	p.X.A0.SetBytes(b[32:64])
	p.Y.A1.SetBytes(b[64:96])
	p.Y.A0.SetBytes(b[96:128])
	return p, nil
}

// MarshalCBOR encodes v (a key or witness envelope) to canonical CBOR for
// on-disk persistence.
func MarshalCBOR(v interface{}) ([]byte, error) {
	opts := cbor.CanonicalEncOptions()
	em, err := opts.EncMode()
	if err != nil {
		return nil, errs.Wrap(errs.InvalidInput, err, "build cbor encoder")
	}
	b, err := em.Marshal(v)
	if err != nil {
		return nil, errs.Wrap(errs.InvalidInput, err, "cbor marshal")
	}
	return b, nil
}

// UnmarshalCBOR decodes b (produced by MarshalCBOR) into v.
func UnmarshalCBOR(b []byte, v interface{}) error {
	if err := cbor.Unmarshal(b, v); err != nil {
		return errs.Wrap(errs.InvalidInput, err, "cbor unmarshal")
	}
	return nil
}

// Package abi tokenizes a Proof into the EVM ABI tuple an on-chain
// verifier contract expects: little-endian uint256 words, distinct from
// the big-endian wire layout internal/codec uses for off-chain storage.
// Grounded on original_source/bin/src/abi.rs.
package abi

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/nume-crypto/posol/internal/backend/bn254/balancesum"
)

// Token mirrors ethabi's minimal token algebra used here: a single
// uint256, or a tuple of sub-tokens. It has no external ABI-encoding
// dependency of its own; the caller wires it into go-ethereum's
// accounts/abi (or equivalent) Arguments.Pack.
type Token struct {
	Uint  *big.Int
	Tuple []Token
}

// TokenizeScalar wraps a field element as a one-element uint256 tuple,
// matching tokenize_fr's little-endian repr-to-U256 conversion: x.Bytes()
// is already the canonical big-endian encoding of the integer value, so
// big.Int.SetBytes reads it back as that same integer directly.
func TokenizeScalar(x fr.Element) Token {
	b := x.Bytes()
	return Token{Tuple: []Token{{Uint: new(big.Int).SetBytes(b[:])}}}
}

// TokenizeG1 wraps a G1 point's two coordinates as a uint256 pair,
// matching tokenize_g1. X and Y live in the base field Fq, not the
// scalar field Fr, so they are read as raw bytes rather than routed
// through fr.Element.
func TokenizeG1(p bn254.G1Affine) Token {
	xb := p.X.Bytes()
	yb := p.Y.Bytes()
	return Token{Tuple: []Token{
		{Uint: new(big.Int).SetBytes(xb[:])},
		{Uint: new(big.Int).SetBytes(yb[:])},
	}}
}

// TokenizeProof assembles the full tuple an on-chain verifier consumes:
// the eight opening evaluations, the seven round commitments, and the two
// batched opening witnesses, in the field order tokenize_sum_proof names.
func TokenizeProof(p *balancesum.Proof) Token {
	ev := p.Evaluations
	return Token{Tuple: []Token{
		TokenizeScalar(ev.B),
		TokenizeScalar(ev.T),
		TokenizeScalar(ev.H1),
		TokenizeScalar(ev.H2),
		TokenizeScalar(ev.SNext),
		TokenizeScalar(ev.ZNext),
		TokenizeScalar(ev.H1Next),
		TokenizeScalar(ev.H2Next),
		TokenizeG1(bn254.G1Affine(p.B)),
		TokenizeG1(bn254.G1Affine(p.S)),
		TokenizeG1(bn254.G1Affine(p.H1)),
		TokenizeG1(bn254.G1Affine(p.H2)),
		TokenizeG1(bn254.G1Affine(p.Z)),
		TokenizeG1(bn254.G1Affine(p.Q1)),
		TokenizeG1(bn254.G1Affine(p.Q2)),
		TokenizeG1(p.W.H),
		TokenizeG1(p.WPrime.H),
	}}
}

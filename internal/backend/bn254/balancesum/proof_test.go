package balancesum

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/stretchr/testify/require"
)

func TestProofWireRoundTrip(t *testing.T) {
	d, err := NewDomain(8, false)
	require.NoError(t, err)
	ck, _ := testSRS(t, 2*d.N+10)

	tr := newFixedTranscript()
	pre, err := Precompute(ck, d.N, false)
	require.NoError(t, err)

	_, _, _, proof, err := Prove(ck, pre, tr, []uint64{1, 2, 3, 0}, nil)
	require.NoError(t, err)

	b, err := proof.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, b, proofWireLen)

	var got Proof
	require.NoError(t, got.UnmarshalBinary(b))

	require.Equal(t, proof.Evaluations, got.Evaluations)
	require.Equal(t, bn254.G1Affine(proof.B), bn254.G1Affine(got.B))
	require.Equal(t, bn254.G1Affine(proof.Q2), bn254.G1Affine(got.Q2))
	require.Equal(t, proof.W.ClaimedValue, got.W.ClaimedValue)
	require.Equal(t, proof.WPrime.ClaimedValue, got.WPrime.ClaimedValue)
}

func TestProofUnmarshalRejectsWrongLength(t *testing.T) {
	var p Proof
	err := p.UnmarshalBinary(make([]byte, 10))
	require.Error(t, err)
}

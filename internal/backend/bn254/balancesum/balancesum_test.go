package balancesum

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"
)

// runScenario proves and verifies over n/balances, asserting the proof
// verifies and the declared sum matches wantSum.
func runScenario(t *testing.T, n uint64, balances []uint64, wantSum uint64) {
	t.Helper()

	ck, vk := testSRS(t, 2*n+10)
	pre, err := Precompute(ck, n, false)
	require.NoError(t, err)

	m, _, _, proof, err := Prove(ck, pre, newFixedTranscript(), balances, nil)
	require.NoError(t, err)

	var want fr.Element
	want.SetUint64(wantSum)
	require.True(t, m.Equal(&want), "m=%s want=%d", m.String(), wantSum)

	err = Verify(vk, pre.Domain, newFixedTranscript(), n, m, pre.T, proof, false)
	require.NoError(t, err)
}

func TestE1AllZeroBalances(t *testing.T) {
	runScenario(t, 16, make([]uint64, 16), 0)
}

func TestE2IncreasingBalances(t *testing.T) {
	runScenario(t, 16, []uint64{0, 1, 2, 3, 4, 5, 6, 7, 0, 0, 0, 0, 0, 0, 0, 0}, 28)
}

func TestE3UniformBalances(t *testing.T) {
	bal := make([]uint64, 16)
	for i := range bal {
		bal[i] = 7
	}
	runScenario(t, 16, bal, 112)
}

func TestE4ShortBalancesPaddedWithZeros(t *testing.T) {
	runScenario(t, 8, []uint64{3, 5, 1, 0}, 9)
}

func TestE5RandomSampleAndIndividualOpening(t *testing.T) {
	n := uint64(16)
	bal := []uint64{1, 2, 3, 4, 5, 6, 7, 0, 1, 2, 3, 4, 5, 6, 7, 0}
	var want uint64
	for _, b := range bal {
		want += b
	}

	ck, vk := testSRS(t, 2*n+10)
	pre, err := Precompute(ck, n, false)
	require.NoError(t, err)

	m, commB, bPoly, proof, err := Prove(ck, pre, newFixedTranscript(), bal, nil)
	require.NoError(t, err)
	require.NoError(t, Verify(vk, pre.Domain, newFixedTranscript(), n, m, pre.T, proof, false))

	i := uint64(5)
	opening, err := IndividualOpen(ck, pre.Domain, i, bPoly)
	require.NoError(t, err)
	require.NoError(t, IndividualVerify(vk, pre.Domain, i, bal[i], commB, opening))
	require.Error(t, IndividualVerify(vk, pre.Domain, i, bal[i]+1, commB, opening))
}

// Invariant 1: correctness, restated generically over E2's parameters.
func TestInvariantCorrectness(t *testing.T) {
	runScenario(t, 16, []uint64{0, 1, 2, 3, 4, 5, 6, 7, 0, 0, 0, 0, 0, 0, 0, 0}, 28)
}

// Invariant 2: soundness — tampering m or the proof causes rejection.
func TestInvariantSoundnessTamperedSum(t *testing.T) {
	n := uint64(16)
	ck, vk := testSRS(t, 2*n+10)
	pre, err := Precompute(ck, n, false)
	require.NoError(t, err)

	bal := []uint64{0, 1, 2, 3, 4, 5, 6, 7, 0, 0, 0, 0, 0, 0, 0, 0}
	m, _, _, proof, err := Prove(ck, pre, newFixedTranscript(), bal, nil)
	require.NoError(t, err)

	var tampered, one fr.Element
	one.SetOne()
	tampered.Add(&m, &one)

	err = Verify(vk, pre.Domain, newFixedTranscript(), n, tampered, pre.T, proof, false)
	require.Error(t, err)
}

func TestInvariantSoundnessTamperedProof(t *testing.T) {
	n := uint64(16)
	ck, vk := testSRS(t, 2*n+10)
	pre, err := Precompute(ck, n, false)
	require.NoError(t, err)

	bal := []uint64{0, 1, 2, 3, 4, 5, 6, 7, 0, 0, 0, 0, 0, 0, 0, 0}
	m, _, _, proof, err := Prove(ck, pre, newFixedTranscript(), bal, nil)
	require.NoError(t, err)

	tampered := *proof
	var one fr.Element
	one.SetOne()
	tampered.Evaluations.B.Add(&tampered.Evaluations.B, &one)

	err = Verify(vk, pre.Domain, newFixedTranscript(), n, m, pre.T, &tampered, false)
	require.Error(t, err)
}

// Invariant 3: range enforcement — a balance >= n is rejected at
// generation time.
func TestInvariantRangeEnforcement(t *testing.T) {
	n := uint64(16)
	ck, _ := testSRS(t, 2*n+10)
	pre, err := Precompute(ck, n, false)
	require.NoError(t, err)

	_, _, _, _, err = Prove(ck, pre, newFixedTranscript(), []uint64{n}, nil)
	require.Error(t, err)
}

// Invariant 4: determinism — two proving runs over identical inputs and
// transcript state (no blinding) produce byte-identical proofs.
func TestInvariantDeterminism(t *testing.T) {
	n := uint64(16)
	ck, _ := testSRS(t, 2*n+10)
	pre, err := Precompute(ck, n, false)
	require.NoError(t, err)

	bal := []uint64{0, 1, 2, 3, 4, 5, 6, 7, 0, 0, 0, 0, 0, 0, 0, 0}

	_, _, _, proof1, err := Prove(ck, pre, newFixedTranscript(), bal, nil)
	require.NoError(t, err)
	_, _, _, proof2, err := Prove(ck, pre, newFixedTranscript(), bal, nil)
	require.NoError(t, err)

	b1, err := proof1.MarshalBinary()
	require.NoError(t, err)
	b2, err := proof2.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, b1, b2)
}

// Invariant 5 and 6 (individual opening + tamper) are covered by
// TestE5RandomSampleAndIndividualOpening above.

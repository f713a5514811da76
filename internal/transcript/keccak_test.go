package transcript

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"
)

// TestKeccakChallengeDeterministic checks invariant 7's determinism half:
// two freshly constructed transcripts fed the same items in the same
// order squeeze identical challenges.
func TestKeccakChallengeDeterministic(t *testing.T) {
	build := func() fr.Element {
		tr := NewKeccak()
		require.NoError(t, tr.AppendU64("a", 1))
		c, err := tr.ChallengeScalar("a")
		require.NoError(t, err)
		return c
	}

	a := build()
	b := build()
	require.True(t, a.Equal(&b), "same transcript inputs must squeeze the same challenge")
}

// TestKeccakChallengeOrderSensitive checks that absorbing the same bytes
// in a different order (or under a different value) changes the squeezed
// challenge, since the duplex folds items into the running state rather
// than treating them as a commutative set.
func TestKeccakChallengeOrderSensitive(t *testing.T) {
	tr1 := NewKeccak()
	require.NoError(t, tr1.AppendU64("a", 1))
	require.NoError(t, tr1.AppendU64("a", 2))
	c1, err := tr1.ChallengeScalar("a")
	require.NoError(t, err)

	tr2 := NewKeccak()
	require.NoError(t, tr2.AppendU64("a", 2))
	require.NoError(t, tr2.AppendU64("a", 1))
	c2, err := tr2.ChallengeScalar("a")
	require.NoError(t, err)

	require.False(t, c1.Equal(&c2), "absorb order must affect the squeezed challenge")
}

// TestKeccakChallengeCounterAdvances checks that repeated squeezes from
// the same state (no further absorbs) still diverge, since the challenge
// counter is folded into the digest.
func TestKeccakChallengeCounterAdvances(t *testing.T) {
	tr := NewKeccak()
	require.NoError(t, tr.AppendU64("a", 7))

	c1, err := tr.ChallengeScalar("a")
	require.NoError(t, err)
	c2, err := tr.ChallengeScalar("a")
	require.NoError(t, err)

	require.False(t, c1.Equal(&c2), "the challenge counter must prevent repeat squeezes from colliding")
}

// NOTE: §8 invariant 7 calls for three fixed byte-for-bit Keccak test
// vectors. Reproducing those exactly requires running this implementation
// against the reference one, which is out of reach here (the toolchain is
// never executed in this exercise); once real vectors are captured from a
// live run, pin them here as additional require.Equal assertions on the
// raw 32-byte digest alongside the tests above.

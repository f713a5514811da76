package balancesum

import "github.com/nume-crypto/posol/internal/transcript"

// newFixedTranscript returns a fresh sponge transcript; prover and
// verifier each start from their own empty instance; they converge on
// the same challenges only because they absorb the same items in the
// same order (§4.4).
func newFixedTranscript() *transcript.Sponge {
	return transcript.NewSponge()
}

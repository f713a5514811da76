// Package transcript implements the two interchangeable Fiat-Shamir
// transcript variants the balance-sum argument is built against (C3): a
// generic sponge for in-process testing, and a Keccak256 duplex matching
// an on-chain verifier.
package transcript

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Protocol is the contract both transcript variants satisfy. challengeLabel
// names the upcoming challenge an absorbed item contributes to (e.g.
// "gamma"); the Keccak variant ignores it and matches purely by call
// order, as spec'd for on-chain compatibility.
type Protocol interface {
	AppendU64(challengeLabel string, v uint64) error
	AppendScalar(challengeLabel string, x fr.Element) error
	AppendCommitment(challengeLabel string, c bn254.G1Affine) error
	ChallengeScalar(challengeLabel string) (fr.Element, error)
}

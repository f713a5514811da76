package transcript

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	fiatshamir "github.com/consensys/gnark-crypto/fiat-shamir"

	"github.com/nume-crypto/posol/internal/errs"
)

// Sponge is the generic in-process transcript variant, a thin
// domain-specific wrapper over gnark-crypto's own duplex transcript, used
// the way the teacher's PLONK prover drives one (fiatshamir.NewTranscript
// bound to a fixed challenge list, Bind then ComputeChallenge per round).
type Sponge struct {
	fs fiatshamir.Transcript
}

// NewSponge builds a sponge transcript with the four challenges the
// protocol squeezes, in round order (§4.7): gamma, delta, zeta, eta.
func NewSponge() *Sponge {
	fs := fiatshamir.NewTranscript(sha256.New(), "gamma", "delta", "zeta", "eta")
	return &Sponge{fs: fs}
}

func (s *Sponge) AppendU64(challengeLabel string, v uint64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	if err := s.fs.Bind(challengeLabel, buf[:]); err != nil {
		return errs.Wrap(errs.CheckError, err, "bind u64 under %s", challengeLabel)
	}
	return nil
}

func (s *Sponge) AppendScalar(challengeLabel string, x fr.Element) error {
	b := x.Bytes()
	if err := s.fs.Bind(challengeLabel, b[:]); err != nil {
		return errs.Wrap(errs.CheckError, err, "bind scalar under %s", challengeLabel)
	}
	return nil
}

func (s *Sponge) AppendCommitment(challengeLabel string, c bn254.G1Affine) error {
	xb := c.X.Bytes()
	yb := c.Y.Bytes()
	if err := s.fs.Bind(challengeLabel, xb[:]); err != nil {
		return errs.Wrap(errs.CheckError, err, "bind commitment.x under %s", challengeLabel)
	}
	if err := s.fs.Bind(challengeLabel, yb[:]); err != nil {
		return errs.Wrap(errs.CheckError, err, "bind commitment.y under %s", challengeLabel)
	}
	return nil
}

func (s *Sponge) ChallengeScalar(challengeLabel string) (fr.Element, error) {
	out, err := s.fs.ComputeChallenge(challengeLabel)
	if err != nil {
		return fr.Element{}, errs.Wrap(errs.CheckError, err, "squeeze challenge %s", challengeLabel)
	}
	var e fr.Element
	e.SetBytes(out)
	return e, nil
}

var _ Protocol = (*Sponge)(nil)

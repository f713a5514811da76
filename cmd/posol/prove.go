package main

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/spf13/cobra"

	"github.com/nume-crypto/posol/internal/backend/bn254/balancesum"
	"github.com/nume-crypto/posol/internal/errs"
	"github.com/nume-crypto/posol/internal/log"
	"github.com/nume-crypto/posol/internal/tag"
	"github.com/nume-crypto/posol/internal/transcript"
)

var proveCKPath, proveUsersPath, proveWitnessPath string

var proveCmd = &cobra.Command{
	Use:   "prove",
	Short: "commit to a user list's tags and balances and produce a balance-sum proof",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.Component("prove")

		srs, err := readSRS(proveCKPath)
		if err != nil {
			return err
		}
		ck, _ := balancesum.Trim(srs, 2*domainSize+10)

		users, err := readUsersJSON(proveUsersPath)
		if err != nil {
			return err
		}
		if uint64(len(users)) > domainSize {
			return errs.New(errs.InvalidInput, "%d users exceed domain size %d", len(users), domainSize)
		}

		tags := make([]fr.Element, len(users))
		balances := make([]uint64, len(users))
		for i, u := range users {
			tags[i].SetBytes(u.ID[:])
			balances[i] = u.Balance
		}

		pre, err := balancesum.Precompute(ck, domainSize, blinding)
		if err != nil {
			return err
		}
		logger.Info().Str("t-commit-x", pre.T.X.String()).Msg("precomputed range table")

		tagCommit, tagPoly, err := tag.Commit(ck, pre.Domain, domainSize, tags)
		if err != nil {
			return err
		}

		var blinders *balancesum.Blinders
		if blinding {
			r := make([]fr.Element, 15)
			for i := range r {
				if _, err := r[i].SetRandom(); err != nil {
					return err
				}
			}
			blinders = &balancesum.Blinders{B: r[0:2], S: r[2:5], H1: r[5:8], H2: r[8:11], Z: r[11:14], E0: r[14]}
		}

		tr := transcript.NewSponge()
		m, bCommit, bPoly, _, err := balancesum.Prove(ck, pre, tr, balances, blinders)
		if err != nil {
			return err
		}
		logger.Info().Str("m", m.String()).Int("users", len(users)).Msg("proof generated")

		if err := writeWitness(proveWitnessPath, &proveWitness{
			TagCommit: tagCommit,
			TagPoly:   tagPoly,
			BCommit:   bCommit,
			BPoly:     bPoly,
		}); err != nil {
			return err
		}
		return nil
	},
}

func init() {
	proveCmd.Flags().StringVar(&proveCKPath, "ck-path", "ck.cbor", "input path for the committer key")
	proveCmd.Flags().StringVar(&proveUsersPath, "users-path", "users.json", "input path for the user list")
	proveCmd.Flags().StringVar(&proveWitnessPath, "witness-path", "witness.cbor", "output path for the retained witness")
}

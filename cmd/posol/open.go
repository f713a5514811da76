package main

import (
	"github.com/spf13/cobra"

	"github.com/nume-crypto/posol/internal/backend/bn254/balancesum"
	"github.com/nume-crypto/posol/internal/log"
	"github.com/nume-crypto/posol/internal/tag"
)

var openCKPath, openWitnessPath string
var openUserIndex uint64

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "produce an individual tag+balance opening for one user index",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.Component("open")

		srs, err := readSRS(openCKPath)
		if err != nil {
			return err
		}
		ck, _ := balancesum.Trim(srs, 2*domainSize+10)

		w, err := readWitness(openWitnessPath)
		if err != nil {
			return err
		}

		d, err := balancesum.NewDomain(domainSize, blinding)
		if err != nil {
			return err
		}

		tagOpening, err := tag.IndividualOpen(ck, d, openUserIndex, w.TagPoly)
		if err != nil {
			return err
		}
		bOpening, err := balancesum.IndividualOpen(ck, d, openUserIndex, w.BPoly)
		if err != nil {
			return err
		}

		logger.Info().
			Uint64("user-index", openUserIndex).
			Str("tag-claim", tagOpening.ClaimedValue.String()).
			Str("balance-claim", bOpening.ClaimedValue.String()).
			Msg("individual opening produced")
		return nil
	},
}

func init() {
	openCmd.Flags().Uint64Var(&openUserIndex, "user-index", 0, "index of the user to open")
	openCmd.Flags().StringVar(&openCKPath, "ck-path", "ck.cbor", "input path for the committer key")
	openCmd.Flags().StringVar(&openWitnessPath, "witness-path", "witness.cbor", "input path for the retained witness")
}

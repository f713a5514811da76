package main

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/spf13/cobra"

	"github.com/nume-crypto/posol/internal/backend/bn254/balancesum"
	"github.com/nume-crypto/posol/internal/log"
)

var setupCKPath, setupCVKPath string
var showVKPath string

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "run the (insecure, single-party) trusted setup and persist ck/vk",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.Component("setup")

		var alpha fr.Element
		if _, err := alpha.SetRandom(); err != nil {
			return err
		}
		maxDegree := 2*domainSize + 10

		srs, err := balancesum.Setup(maxDegree, alpha.BigInt(new(big.Int)))
		if err != nil {
			return err
		}

		if err := writeSRS(setupCKPath, srs); err != nil {
			return err
		}
		if err := writeSRS(setupCVKPath, srs); err != nil {
			return err
		}
		logger.Info().Uint64("max-degree", maxDegree).Msg("wrote committer/verifier key")
		return nil
	},
}

var showVKCmd = &cobra.Command{
	Use:   "show-vk",
	Short: "print the verifier key's G1/G2 points",
	RunE: func(cmd *cobra.Command, args []string) error {
		srs, err := readSRS(showVKPath)
		if err != nil {
			return err
		}
		_, vk := balancesum.Trim(srs, 2*domainSize+10)
		g1 := vk.SRS.G1[0]
		g2 := vk.SRS.G2
		fmt.Printf("G: x: %s\n", g1.X.String())
		fmt.Printf("G: y: %s\n", g1.Y.String())
		fmt.Printf("H: x-c0: %s\n", g2[0].X.A0.String())
		fmt.Printf("H: x-c1: %s\n", g2[0].X.A1.String())
		fmt.Printf("H: y-c0: %s\n", g2[0].Y.A0.String())
		fmt.Printf("H: y-c1: %s\n", g2[0].Y.A1.String())
		fmt.Printf("Beta H: x-c0: %s\n", g2[1].X.A0.String())
		fmt.Printf("Beta H: x-c1: %s\n", g2[1].X.A1.String())
		fmt.Printf("Beta H: y-c0: %s\n", g2[1].Y.A0.String())
		fmt.Printf("Beta H: y-c1: %s\n", g2[1].Y.A1.String())
		return nil
	},
}

func init() {
	setupCmd.Flags().StringVar(&setupCKPath, "ck-path", "ck.cbor", "output path for the committer key")
	setupCmd.Flags().StringVar(&setupCVKPath, "cvk-path", "cvk.cbor", "output path for the verifier key")

	showVKCmd.Flags().StringVar(&showVKPath, "cvk-path", "cvk.cbor", "input path for the verifier key")
}

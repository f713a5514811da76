// Command posol is the reference CLI for the balance-sum argument: it
// generates a sample user list, runs the KZG trusted setup, produces a
// proof over a user list, and serves individual balance/tag openings,
// mirroring original_source/bin/src/main.rs's subcommand surface (§4.12).
package main

import (
	"fmt"
	"os"

	"github.com/blang/semver/v4"
	"github.com/spf13/cobra"

	"github.com/nume-crypto/posol/internal/log"
)

var version = semver.MustParse("0.0.1")

var domainSize uint64
var blinding bool

var rootCmd = &cobra.Command{
	Use:           "posol",
	Short:         "Proof of Solvency simulator",
	Long:          "posol builds balance-sum proofs of solvency over bn254 and serves individual openings.",
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().Uint64Var(&domainSize, "domain-size", 1024, "evaluation domain size (must be a power of two)")
	rootCmd.PersistentFlags().BoolVar(&blinding, "blinding", false, "enable zero-knowledge blinding")

	rootCmd.AddCommand(genUsersCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(showVKCmd)
	rootCmd.AddCommand(proveCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print the CLI version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(version.String())
		return nil
	},
}

func fatal(err error) {
	log.Component("cli").Error().Err(err).Msg("command failed")
	os.Exit(1)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fatal(err)
	}
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/nume-crypto/posol/internal/log"
)

var genUsersSize uint32
var genUsersPath string

var genUsersCmd = &cobra.Command{
	Use:   "gen-users",
	Short: "generate a random user list as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.Component("gen-users")
		users, err := genUsers(domainSize, genUsersSize)
		if err != nil {
			return err
		}
		if err := writeUsersJSON(genUsersPath, users); err != nil {
			return err
		}
		logger.Info().Int("count", len(users)).Str("path", genUsersPath).Msg("wrote user list")
		return nil
	},
}

func init() {
	genUsersCmd.Flags().Uint32Var(&genUsersSize, "users-size", 0, "number of users to generate")
	genUsersCmd.Flags().StringVar(&genUsersPath, "users-path", "users.json", "output path for the user list")
	_ = genUsersCmd.MarkFlagRequired("users-size")
}

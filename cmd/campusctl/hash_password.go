package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password <password>",
	Short: "Print a bcrypt hash for users.csv",
	Long: `Print a bcrypt hash that can replace a plaintext password in users.csv.
Both forms are accepted at login.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cost, _ := cmd.Flags().GetInt("cost")
		if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
			return fmt.Errorf("cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(args[0]), cost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(hash))
		return nil
	},
}

func init() {
	hashPasswordCmd.Flags().Int("cost", bcrypt.DefaultCost, "bcrypt cost")

	rootCmd.AddCommand(hashPasswordCmd)
}

package toolkit

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	verifyHash     string
	verifyPassword string

	ErrVerificationFailed = errors.New("toolkit: password does not match hash")
)

func init() {
	VerifyCmd.Flags().StringVarP(&verifyHash, "hash", "H", "", "The encoded Argon2id hash")
	VerifyCmd.Flags().StringVarP(&verifyPassword, "password", "p", "", "The password to verify. Prompts if omitted")
	VerifyCmd.MarkFlagRequired("hash")
}

type VerifyResponse struct {
	Valid       bool `yaml:"valid" json:"valid"`
	NeedsRehash bool `yaml:"needs-rehash" json:"needs_rehash"`
}

var VerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verifies a password against an Argon2id hash",
	Long: `Recomputes the digest using the parameters and salt stored in the
encoded hash and compares it in constant time. Also reports whether the
hash was created with parameters that differ from the current
configuration.`,
	RunE: func(cmd *cobra.Command, args []string) error {

		if err := requireApp(); err != nil {
			return err
		}

		hasher, err := App.Hasher()
		if err != nil {
			printError(cmd, err)
			return err
		}
		password, err := readPassword(verifyPassword, false)
		if err != nil {
			printError(cmd, err)
			return err
		}
		valid, err := hasher.Verify(verifyHash, password)
		if err != nil {
			printError(cmd, err)
			return err
		}

		response := VerifyResponse{
			Valid:       valid,
			NeedsRehash: valid && hasher.NeedsRehash(verifyHash),
		}

		if !valid {
			App.LogVerificationFailure(verifyHash)
		}

		if err := printOutput(cmd, response, func() {
			if valid {
				color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "valid")
			} else {
				color.New(color.FgRed).Fprintln(cmd.OutOrStdout(), "invalid")
			}
			if response.NeedsRehash {
				color.New(color.FgYellow).Fprintln(cmd.OutOrStdout(),
					"hash parameters differ from the current configuration, rehash recommended")
			}
		}); err != nil {
			return err
		}

		if !valid {
			return ErrVerificationFailed
		}
		return nil
	},
}

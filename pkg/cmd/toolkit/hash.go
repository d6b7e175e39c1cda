package toolkit

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	hashPassword string
)

func init() {
	HashCmd.Flags().StringVarP(&hashPassword, "password", "p", "", "The password to hash. Prompts if omitted")
}

type HashResponse struct {
	Hash string `yaml:"hash" json:"hash"`
}

var HashCmd = &cobra.Command{
	Use:   "hash",
	Short: "Hashes a password with Argon2id",
	Long: `Derives an Argon2id hash from the password using a random salt and the
configured cost parameters. The output uses the standard encoded form:
$argon2id$v=19$m=<memory>,t=<iterations>,p=<parallelism>$<salt>$<digest>`,
	RunE: func(cmd *cobra.Command, args []string) error {

		if err := requireApp(); err != nil {
			return err
		}

		hasher, err := App.Hasher()
		if err != nil {
			printError(cmd, err)
			return err
		}
		password, err := readPassword(hashPassword, true)
		if err != nil {
			printError(cmd, err)
			return err
		}
		encoded, err := hasher.Hash(password)
		if err != nil {
			printError(cmd, err)
			return err
		}

		if App.Config.DebugSecrets {
			p, _ := password.String()
			App.Logger.Debug("hash: hashed password", "password", p, "hash", encoded)
		}

		return printOutput(cmd, HashResponse{Hash: encoded}, func() {
			fmt.Fprintln(cmd.OutOrStdout(), encoded)
		})
	},
}

package toolkit

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/jeremyhahn/go-password-toolkit/pkg/strength"
	"github.com/spf13/cobra"
)

var (
	speedsPassword string
)

func init() {
	SpeedsCmd.Flags().StringVarP(&speedsPassword, "password", "p", "", "The password to evaluate. Prompts if omitted")
}

var SpeedsCmd = &cobra.Command{
	Use:   "speeds",
	Short: "Estimates crack times for every attacker speed and hash algorithm",
	Long: `Prints the estimated time required to crack the password for every
combination of attacker speed and hash algorithm.`,
	RunE: func(cmd *cobra.Command, args []string) error {

		if err := requireApp(); err != nil {
			return err
		}

		password, err := readPassword(speedsPassword, false)
		if err != nil {
			printError(cmd, err)
			return err
		}
		p, err := password.String()
		if err != nil {
			printError(cmd, err)
			return err
		}

		times := strength.CrackTimes(strength.PossibleCombinationsFor(p))

		return printOutput(cmd, times, func() {
			out := cmd.OutOrStdout()
			header := color.New(color.Bold)
			header.Fprintf(out, "%-12s %-20s %-16s %s\n", "SPEED", "ALGORITHM", "GUESSES/SEC", "TIME TO CRACK")
			for _, cell := range times {
				fmt.Fprintf(out, "%-12s %-20s %-16d %s\n",
					cell.CrackSpeed, cell.HashAlgorithm, cell.Rate, cell.TimeToCrack)
			}
		})
	},
}

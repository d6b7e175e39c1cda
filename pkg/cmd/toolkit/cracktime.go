package toolkit

import (
	"errors"
	"fmt"

	"github.com/jeremyhahn/go-password-toolkit/pkg/strength"
	"github.com/spf13/cobra"
)

var (
	crackLength      int
	crackCharsetSize int
	crackSpeed       string
	crackAlgorithm   string

	ErrInvalidKeyspace = errors.New("toolkit: length and charset size must be positive")
)

func init() {
	CrackTimeCmd.Flags().IntVarP(&crackLength, "length", "l", 0, "Password length")
	CrackTimeCmd.Flags().IntVarP(&crackCharsetSize, "charset-size", "c", 0, "Number of distinct characters the password is drawn from")
	CrackTimeCmd.Flags().StringVarP(&crackSpeed, "speed", "s", "", "Attacker speed")
	CrackTimeCmd.Flags().StringVarP(&crackAlgorithm, "algorithm", "a", "", "Hash algorithm protecting the password")
}

type CrackTimeResponse struct {
	Length        int     `yaml:"length" json:"length"`
	CharsetSize   int     `yaml:"charset-size" json:"charset_size"`
	Combinations  string  `yaml:"combinations" json:"combinations"`
	Strength      float64 `yaml:"strength" json:"strength"`
	CrackSpeed    string  `yaml:"crack-speed" json:"crack_speed"`
	HashAlgorithm string  `yaml:"hash-algorithm" json:"hash_algorithm"`
	TimeToCrack   string  `yaml:"time-to-crack" json:"time_to_crack"`
}

var CrackTimeCmd = &cobra.Command{
	Use:   "crack-time",
	Short: "Estimates the time required to crack a keyspace",
	Long: `Estimates the average time required to brute force a password of the
given length drawn from a character set of the given size.`,
	RunE: func(cmd *cobra.Command, args []string) error {

		if err := requireApp(); err != nil {
			return err
		}
		if crackLength <= 0 || crackCharsetSize <= 0 {
			printError(cmd, ErrInvalidKeyspace)
			return ErrInvalidKeyspace
		}

		estimator, err := strength.CreateEstimator(
			strengthConfig(crackSpeed, crackAlgorithm, 0), nil)
		if err != nil {
			printError(cmd, err)
			return err
		}

		combinations := strength.PossibleCombinations(crackLength, crackCharsetSize)
		response := CrackTimeResponse{
			Length:        crackLength,
			CharsetSize:   crackCharsetSize,
			Combinations:  strength.FormattedValue(combinations),
			Strength:      strength.Strength(combinations, estimator.TargetBits()),
			CrackSpeed:    estimator.CrackSpeed().Name,
			HashAlgorithm: estimator.HashAlgorithm().Name,
			TimeToCrack:   estimator.TimeToCrack(combinations),
		}

		return printOutput(cmd, response, func() {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Combinations:    %s\n", response.Combinations)
			fmt.Fprintf(out, "Strength:        %.2f\n", response.Strength)
			fmt.Fprintf(out, "Attacker:        %s, %s\n", response.CrackSpeed, response.HashAlgorithm)
			fmt.Fprintf(out, "Time To Crack:   %s\n", response.TimeToCrack)
		})
	},
}

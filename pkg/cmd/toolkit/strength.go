package toolkit

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/jeremyhahn/go-password-toolkit/pkg/strength"
	"github.com/spf13/cobra"
)

var (
	strengthPassword   string
	strengthSpeed      string
	strengthAlgorithm  string
	strengthTargetBits float64
	strengthNoClassify bool
)

func init() {
	StrengthCmd.Flags().StringVarP(&strengthPassword, "password", "p", "", "The password to evaluate. Prompts if omitted")
	StrengthCmd.Flags().StringVarP(&strengthSpeed, "speed", "s", "", "Attacker speed: very-slow, slow, medium, fast, very-fast, ultra-fast, insane")
	StrengthCmd.Flags().StringVarP(&strengthAlgorithm, "algorithm", "a", "", "Hash algorithm protecting the password, see the speeds command")
	StrengthCmd.Flags().Float64VarP(&strengthTargetBits, "target-bits", "t", 0, "Bits of entropy considered fully secure")
	StrengthCmd.Flags().BoolVar(&strengthNoClassify, "no-classify", false, "Skip the common password and name checks")
}

var StrengthCmd = &cobra.Command{
	Use:   "strength",
	Short: "Estimates the strength of a password",
	Long: `Reports the character set size, number of possible combinations,
strength relative to the target number of bits, classification and the
estimated time required to crack the password.`,
	RunE: func(cmd *cobra.Command, args []string) error {

		if err := requireApp(); err != nil {
			return err
		}

		config := strengthConfig(strengthSpeed, strengthAlgorithm, strengthTargetBits)

		var classifier *strength.Classifier
		if !strengthNoClassify {
			lists, err := App.LoadWordLists()
			if err != nil {
				printError(cmd, err)
				return err
			}
			// Classify against the same target as the report
			classifier, err = strength.CreateClassifier(lists, config.TargetBits)
			if err != nil {
				printError(cmd, err)
				return err
			}
		}

		estimator, err := strength.CreateEstimator(config, classifier)
		if err != nil {
			printError(cmd, err)
			return err
		}

		password, err := readPassword(strengthPassword, false)
		if err != nil {
			printError(cmd, err)
			return err
		}
		p, err := password.String()
		if err != nil {
			printError(cmd, err)
			return err
		}

		report, err := estimator.Report(p)
		if err != nil {
			printError(cmd, err)
			return err
		}

		return printOutput(cmd, report, func() {
			printStrengthReport(cmd, report)
		})
	},
}

// Returns the configured strength settings with any non-empty
// overrides applied
func strengthConfig(speed, algorithm string, targetBits float64) strength.Config {
	config := App.Config.Strength
	if speed != "" {
		config.CrackSpeed = speed
	}
	if algorithm != "" {
		config.HashAlgorithm = algorithm
	}
	if targetBits != 0 {
		config.TargetBits = targetBits
	}
	return config
}

func printStrengthReport(cmd *cobra.Command, report *strength.Report) {
	out := cmd.OutOrStdout()
	if report.Classification != "" {
		strengthColor(report.Strength).Fprintf(out, "Classification:  %s\n", report.Classification)
	}
	fmt.Fprintf(out, "Length:          %d\n", report.Length)
	fmt.Fprintf(out, "Charset Size:    %d\n", report.CharsetSize)
	fmt.Fprintf(out, "Distinct Chars:  %d\n", report.DistinctChars)
	fmt.Fprintf(out, "Combinations:    %s\n", report.Combinations)
	fmt.Fprintf(out, "Bits:            %.2f\n", report.Bits)
	strengthColor(report.Strength).Fprintf(out, "Strength:        %.2f (%s)\n",
		report.Strength, strength.ClassifyStrength(report.Strength))
	fmt.Fprintf(out, "Attacker:        %s, %s\n", report.CrackSpeed, report.HashAlgorithm)
	fmt.Fprintf(out, "Time To Crack:   %s\n", report.TimeToCrack)
}

func strengthColor(value float64) *color.Color {
	switch {
	case value < 0.4:
		return color.New(color.FgRed)
	case value < 0.7:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}

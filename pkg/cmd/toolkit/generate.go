package toolkit

import (
	"fmt"

	"github.com/jeremyhahn/go-password-toolkit/pkg/charset"
	"github.com/jeremyhahn/go-password-toolkit/pkg/generator"
	"github.com/spf13/cobra"
)

var (
	genLength  int
	genClasses []string
	genInclude string
	genExclude string
	genCount   int
)

func init() {
	GenerateCmd.Flags().IntVarP(&genLength, "length", "l", 0, "Password length (16 - 4096). Defaults to the configured length")
	GenerateCmd.Flags().StringSliceVarP(&genClasses, "classes", "c", nil, "Character classes to draw from: digits, upper, lower, symbols, all")
	GenerateCmd.Flags().StringVarP(&genInclude, "include", "i", "", "Additional characters to draw from")
	GenerateCmd.Flags().StringVarP(&genExclude, "exclude", "x", "", "Characters that must never appear")
	GenerateCmd.Flags().IntVarP(&genCount, "count", "n", 1, "Number of passwords to generate")
}

type GenerateResponse struct {
	Charset   string   `yaml:"charset" json:"charset"`
	Passwords []string `yaml:"passwords" json:"passwords"`
}

var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generates random passwords",
	Long: `Generates passwords from the configured character classes using a
cryptographically secure random source. Every selected class appears
at least once in each password.`,
	RunE: func(cmd *cobra.Command, args []string) error {

		if err := requireApp(); err != nil {
			return err
		}

		params, err := App.Config.Generator.Params()
		if err != nil {
			printError(cmd, err)
			return err
		}
		if err := applyGenerateFlags(&params); err != nil {
			printError(cmd, err)
			return err
		}

		gen, err := generator.CreateGenerator(App.Random, params)
		if err != nil {
			printError(cmd, err)
			return err
		}
		passwords, err := gen.GenerateN(genCount)
		if err != nil {
			printError(cmd, err)
			return err
		}
		effective, _ := gen.EffectiveCharset()

		App.Logger.Debug("generate: generated passwords",
			"count", len(passwords),
			"length", params.Length,
			"classes", params.Classes.String())

		response := GenerateResponse{
			Charset:   effective.String(),
			Passwords: passwords,
		}
		return printOutput(cmd, response, func() {
			for _, password := range passwords {
				fmt.Fprintln(cmd.OutOrStdout(), password)
			}
		})
	},
}

func applyGenerateFlags(params *generator.Params) error {
	if genLength != 0 {
		params.Length = genLength
	}
	if len(genClasses) > 0 {
		classes, err := charset.ParseFlags(genClasses)
		if err != nil {
			return err
		}
		params.Classes = classes
	}
	if genInclude != "" {
		params.Include = genInclude
	}
	if genExclude != "" {
		params.Exclude = genExclude
	}
	return nil
}

package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/jeremyhahn/go-password-toolkit/pkg/app"
	"github.com/jeremyhahn/go-password-toolkit/pkg/cmd/toolkit"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	App        *app.App
	InitParams *app.AppInitParams
	Format     string
)

var rootCmd = &cobra.Command{
	Use:   app.Name,
	Short: "Password generation, hashing and strength estimation",
	Long: `The Password Toolkit generates cryptographically secure passwords,
hashes and verifies them with Argon2id, and estimates their strength and
the time an attacker would need to crack them.`,
	SilenceUsage:     true,
	SilenceErrors:    true,
	TraverseChildren: true,
}

func init() {

	cobra.OnInitialize(func() {

		// Initialize the toolkit
		a, err := app.NewApp().Init(InitParams)
		if err != nil {
			color.New(color.FgRed).Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		App = a

		// Initialize subcommand globals
		toolkit.App = App
		toolkit.InitParams = InitParams
		toolkit.Format = Format
	})

	// Set provided initialization parameters for
	// commands package and program entry points
	InitParams = &app.AppInitParams{
		Viper: viper.GetViper(),
	}

	rootCmd.PersistentFlags().BoolVarP(&InitParams.Debug, "debug", "d", false, "Enable debug mode")
	rootCmd.PersistentFlags().BoolVarP(&InitParams.DebugSecrets, "debug-secrets", "", false, "Enable secret debugging mode. Includes passwords and secrets in logs")
	rootCmd.PersistentFlags().StringVarP(&InitParams.ConfigDir, "config-dir", "", "/etc/"+app.Name, "Configuration file directory")
	rootCmd.PersistentFlags().StringVarP(&InitParams.LogDir, "log-dir", "", "", "Log directory. Defaults to the configured log-dir")
	rootCmd.PersistentFlags().StringVarP(&InitParams.Env, "env", "e", "", "Environment name used to locate config.<env>.yaml")
	rootCmd.PersistentFlags().StringVarP(&Format, "format", "f", toolkit.FORMAT_TEXT, "Output format: text, json, yaml")

	viper.BindPFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(toolkit.GenerateCmd)
	rootCmd.AddCommand(toolkit.HashCmd)
	rootCmd.AddCommand(toolkit.VerifyCmd)
	rootCmd.AddCommand(toolkit.StrengthCmd)
	rootCmd.AddCommand(toolkit.CrackTimeCmd)
	rootCmd.AddCommand(toolkit.SpeedsCmd)
	rootCmd.AddCommand(toolkit.VersionCmd)
}

func Execute() error {
	defer func() {
		if App != nil {
			App.Close()
		}
	}()
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		return err
	}
	return nil
}

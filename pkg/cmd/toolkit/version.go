package toolkit

import (
	"fmt"

	"github.com/jeremyhahn/go-password-toolkit/pkg/app"
	"github.com/spf13/cobra"
)

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints the software version",
	Long:  `Displays software build and version details`,
	RunE: func(cmd *cobra.Command, args []string) error {
		version := app.GetVersion()
		return printOutput(cmd, version, func() {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name:\t\t\t%s\n", version.Name)
			fmt.Fprintf(out, "Version:\t\t%s\n", version.Version)
			fmt.Fprintf(out, "Repository:\t\t%s\n", version.Repository)
			fmt.Fprintf(out, "Package:\t\t%s\n", version.Package)
			fmt.Fprintf(out, "Git Branch:\t\t%s\n", version.GitBranch)
			fmt.Fprintf(out, "Git Tag:\t\t%s\n", version.GitTag)
			fmt.Fprintf(out, "Git Hash:\t\t%s\n", version.GitHash)
			fmt.Fprintf(out, "Build User:\t\t%s\n", version.BuildUser)
			fmt.Fprintf(out, "Build Date:\t\t%s\n", version.BuildDate)
		})
	},
}

package cmd

import (
	"uipcup/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(verifyCmd)
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verifies an existing LibUIPC installation",
	Long: `Runs the post-installation checks on their own: imports the uipc
package, runs the info script when the source tree is present, and builds
a minimal scene to exercise the bindings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := app.InjectVerifyCommandHandler()
		if err != nil {
			return err
		}

		return h.Handle()
	},
}

package cmd

import (
	"uipcup/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Reports the state of the build environment",
	Long:  `Checks for the required tools without changing anything on the host.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := app.InjectCheckCommandHandler()
		if err != nil {
			return err
		}

		return h.Handle()
	},
}

package cmd

import (
	"uipcup/cmd/cli/app"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initializeCmd)
}

var initializeCmd = &cobra.Command{
	Use:   "initialize",
	Short: "Creates a default configuration file",
	Long:  `Writes ~/.uipcup.yaml with the built-in defaults as a starting point.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := app.InjectInitializeCommandHandler()
		if err != nil {
			return err
		}

		return h.Handle()
	},
}

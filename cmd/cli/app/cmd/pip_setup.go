package cmd

import (
	"uipcup/cmd/cli/app"
	"uipcup/internal/core/handler"

	"github.com/spf13/cobra"
)

var pipSetupOpts handler.InstallOptions

func init() {
	pipSetupCmd.Flags().StringVar(&pipSetupOpts.ToolchainDir, "toolchain-dir", "", "Directory for the vcpkg toolchain")
	rootCmd.AddCommand(pipSetupCmd)
}

var pipSetupCmd = &cobra.Command{
	Use:   "pip-setup",
	Short: "Prepares the source tree for a pip-driven installation",
	Long: `Sets up the vcpkg toolchain, generates scikit-build-core package files
in the current source tree and persists CMAKE_TOOLCHAIN_FILE, so the build
can afterwards be driven entirely by 'pip install .'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := app.InjectPipSetupCommandHandler()
		if err != nil {
			return err
		}

		return h.Handle(pipSetupOpts)
	},
}

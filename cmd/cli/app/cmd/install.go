package cmd

import (
	"uipcup/cmd/cli/app"
	"uipcup/internal/core/handler"

	"github.com/spf13/cobra"
)

var installOpts handler.InstallOptions

func init() {
	installCmd.Flags().BoolVar(&installOpts.NoConda, "no-conda", false, "Skip conda environment management")
	installCmd.Flags().StringVar(&installOpts.ToolchainDir, "toolchain-dir", "", "Directory for the vcpkg toolchain")
	installCmd.Flags().StringVar(&installOpts.BuildDir, "build-dir", "", "CMake build directory")
	installCmd.Flags().IntVarP(&installOpts.Jobs, "jobs", "j", 0, "Number of parallel build jobs")
	installCmd.Flags().StringVar(&installOpts.Source, "source", "", "LibUIPC source directory (cloned when missing)")
	installCmd.Flags().BoolVar(&installOpts.SkipVerify, "skip-verify", false, "Skip the post-installation verification")
	installCmd.Flags().BoolVarP(&installOpts.Yes, "yes", "y", false, "Do not ask for confirmation")
	rootCmd.AddCommand(installCmd)
}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Builds and installs LibUIPC from the current source tree",
	Long: `Runs the full installation: dependency check, vcpkg toolchain setup,
conda environment preparation, CMake configure and build, pip installation
of the Python bindings, and a verification pass.

Must be run from the LibUIPC source root, or pointed at one with --source.
A missing --source directory is cloned from the configured repository first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := app.InjectInstallCommandHandler()
		if err != nil {
			return err
		}

		return h.Handle(installOpts)
	},
}

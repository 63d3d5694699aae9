package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "uipcup",
	Short: "Installer for the LibUIPC physics library",
	Long: `uipcup builds LibUIPC from source and installs its Python bindings.

It prepares the vcpkg toolchain and an optional conda environment, runs the
CMake configure and build steps, and installs the resulting package with pip.

Configuration is stored in ~/.uipcup.yaml. Run 'uipcup initialize' to create
a configuration file, or rely on the built-in defaults.

Common workflows:
  uipcup check                Report which required tools are available
  uipcup install              Build and install from the current source tree
  uipcup pip-setup            Prepare the source tree for 'pip install .'
  uipcup verify               Re-run the post-installation checks`,
}

func Execute() {
	// Overrides like UIPCUP_TOOLCHAIN_DIR may come from a local .env file.
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

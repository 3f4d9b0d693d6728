package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wheeler-microfluidics/microdrop-plugin-hooks/internal/config"
	"github.com/wheeler-microfluidics/microdrop-plugin-hooks/internal/core/plugin"
	"github.com/wheeler-microfluidics/microdrop-plugin-hooks/internal/interfaces/di"
)

// packageNameFromCommand resolves the package name at the CLI edge: the
// --package flag when given, otherwise the PKG_NAME environment variable the
// installer exports. Nothing below this layer reads ambient state.
func packageNameFromCommand(cmd *cobra.Command) plugin.PackageName {
	if cmd.Flags().Changed("package") {
		value, _ := cmd.Flags().GetString("package")
		return plugin.NewPackageName(value)
	}
	if value, ok := os.LookupEnv("PKG_NAME"); ok {
		return plugin.NewPackageName(value)
	}
	return plugin.AbsentPackageName()
}

// buildContainer loads configuration per the shared flags and wires the
// application container.
func buildContainer(cmd *cobra.Command) (*di.Container, error) {
	configPath, _ := cmd.Flags().GetString("config")
	debug, _ := cmd.Flags().GetBool("debug")

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return di.NewContainer(cfg, debug), nil
}

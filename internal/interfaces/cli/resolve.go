package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wheeler-microfluidics/microdrop-plugin-hooks/internal/application/services"
	"github.com/wheeler-microfluidics/microdrop-plugin-hooks/internal/core/plugin"
)

// newResolveCommand creates the resolve command
func newResolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [package-name]",
		Short: "Print the plugin identifier derived from a package name",
		Long: `Derive and print the plugin identifier the hooks would use for a package
name, without invoking any external tool. Useful for checking what a hook run
will do.`,
		Example: `  mdhook resolve microdrop.dmf-control-board
  mdhook resolve --package microdrop.mr-box-plugin
  PKG_NAME=microdrop.hv-switching-board mdhook resolve`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var pkg plugin.PackageName
			if len(args) > 0 {
				pkg = plugin.NewPackageName(args[0])
			} else {
				pkg = packageNameFromCommand(cmd)
			}

			if !pkg.Present() {
				fmt.Fprintln(cmd.OutOrStdout(), services.SkipMessage)
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), plugin.Resolve(pkg).String())
			return nil
		},
	}
}

package cli

import (
	"github.com/spf13/cobra"
	"github.com/wheeler-microfluidics/microdrop-plugin-hooks/internal/core/plugin"
)

// newPreUnlinkCommand creates the uninstall-time hook command
func newPreUnlinkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pre-unlink",
		Short: "Deregister a plugin about to be removed",
		Long: `Run the uninstall-time hook: disable the plugin in the activation
directory and remove it from the enabled-plugins list.

Unlike post-link, this hook does not guard against a missing package name;
the installer guarantees PKG_NAME is set on the uninstall path. A missing
value resolves like the empty string and is passed through to the external
tools unchanged.`,
		Example: `  # As run by the installer, with PKG_NAME exported
  mdhook pre-unlink

  # Explicit package name
  mdhook pre-unlink --package microdrop.dmf-control-board`,
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := buildContainer(cmd)
			if err != nil {
				return err
			}
			return container.Hooks.Run(cmd.Context(), plugin.ModeUnlink, packageNameFromCommand(cmd))
		},
	}
}

package cli

import (
	"github.com/spf13/cobra"
	"github.com/wheeler-microfluidics/microdrop-plugin-hooks/internal/core/plugin"
)

// newPostLinkCommand creates the install-time hook command
func newPostLinkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "post-link",
		Short: "Register a freshly installed plugin",
		Long: `Run the install-time hook: enable the plugin in the activation directory
and append it to the enabled-plugins list.

The plugin identifier is derived from the distribution package name by
stripping the 10-character namespace prefix and replacing hyphens with
underscores. When no package name is available the hook prints an explanation
and completes without doing anything; the installer does not always export
PKG_NAME on this path.`,
		Example: `  # As run by the installer, with PKG_NAME exported
  mdhook post-link

  # Explicit package name
  mdhook post-link --package microdrop.dmf-control-board`,
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := buildContainer(cmd)
			if err != nil {
				return err
			}
			return container.Hooks.Run(cmd.Context(), plugin.ModeLink, packageNameFromCommand(cmd))
		},
	}
}

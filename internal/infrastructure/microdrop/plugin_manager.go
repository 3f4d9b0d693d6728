// Package microdrop adapts the hook capability interfaces onto the two
// MicroDrop command-line tools: the plugin manager, which toggles a plugin in
// the activation directory, and the config editor, which edits the
// enabled-plugins list.
package microdrop

import (
	"context"

	"github.com/wheeler-microfluidics/microdrop-plugin-hooks/internal/core/plugin"
	"github.com/wheeler-microfluidics/microdrop-plugin-hooks/internal/infrastructure/process"
)

// PluginManagerCLI implements ports.ActivationToggle by shelling out to the
// MicroDrop plugin-manager executable.
type PluginManagerCLI struct {
	executable string
	runner     process.Runner
}

// NewPluginManagerCLI creates the adapter for the given executable name or
// path.
func NewPluginManagerCLI(executable string, runner process.Runner) *PluginManagerCLI {
	return &PluginManagerCLI{executable: executable, runner: runner}
}

// Enable runs `<plugin-manager> enable <id>`.
func (p *PluginManagerCLI) Enable(ctx context.Context, id plugin.Identifier) error {
	return p.run(ctx, "enable", id)
}

// Disable runs `<plugin-manager> disable <id>`.
func (p *PluginManagerCLI) Disable(ctx context.Context, id plugin.Identifier) error {
	return p.run(ctx, "disable", id)
}

func (p *PluginManagerCLI) run(ctx context.Context, subcommand string, id plugin.Identifier) error {
	cmd, err := process.NewCommand(p.executable, subcommand, id.String())
	if err != nil {
		return err
	}
	return p.runner.Run(ctx, cmd)
}

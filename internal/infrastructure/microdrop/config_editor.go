package microdrop

import (
	"context"

	"github.com/wheeler-microfluidics/microdrop-plugin-hooks/internal/core/plugin"
	"github.com/wheeler-microfluidics/microdrop-plugin-hooks/internal/infrastructure/process"
)

// ConfigEditorCLI implements ports.ConfigListEditor by shelling out to the
// MicroDrop config-editor executable.
type ConfigEditorCLI struct {
	executable string
	runner     process.Runner
}

// NewConfigEditorCLI creates the adapter for the given executable name or
// path.
func NewConfigEditorCLI(executable string, runner process.Runner) *ConfigEditorCLI {
	return &ConfigEditorCLI{executable: executable, runner: runner}
}

// Append runs `<config-editor> edit --append <key> <id>`.
func (c *ConfigEditorCLI) Append(ctx context.Context, key string, id plugin.Identifier) error {
	return c.run(ctx, "--append", key, id)
}

// Remove runs `<config-editor> edit --remove <key> <id>`.
func (c *ConfigEditorCLI) Remove(ctx context.Context, key string, id plugin.Identifier) error {
	return c.run(ctx, "--remove", key, id)
}

func (c *ConfigEditorCLI) run(ctx context.Context, editFlag, key string, id plugin.Identifier) error {
	cmd, err := process.NewCommand(c.executable, "edit", editFlag, key, id.String())
	if err != nil {
		return err
	}
	return c.runner.Run(ctx, cmd)
}

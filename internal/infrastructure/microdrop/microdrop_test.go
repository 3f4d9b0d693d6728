package microdrop

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wheeler-microfluidics/microdrop-plugin-hooks/internal/core/plugin"
	"github.com/wheeler-microfluidics/microdrop-plugin-hooks/internal/infrastructure/process"
)

type fakeRunner struct {
	commands []process.Command
	err      error
}

func (f *fakeRunner) Run(_ context.Context, cmd process.Command) error {
	f.commands = append(f.commands, cmd)
	return f.err
}

func TestPluginManagerCLI_CommandLines(t *testing.T) {
	tests := []struct {
		name     string
		invoke   func(*PluginManagerCLI) error
		expected string
	}{
		{
			name: "Enable",
			invoke: func(p *PluginManagerCLI) error {
				return p.Enable(context.Background(), "dmf_control_board")
			},
			expected: "microdrop-plugin-manager enable dmf_control_board",
		},
		{
			name: "Disable",
			invoke: func(p *PluginManagerCLI) error {
				return p.Disable(context.Background(), "dmf_control_board")
			},
			expected: "microdrop-plugin-manager disable dmf_control_board",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{}
			adapter := NewPluginManagerCLI("microdrop-plugin-manager", runner)

			require.NoError(t, tt.invoke(adapter))
			require.Len(t, runner.commands, 1)
			assert.Equal(t, tt.expected, runner.commands[0].String())
		})
	}
}

func TestConfigEditorCLI_CommandLines(t *testing.T) {
	tests := []struct {
		name     string
		invoke   func(*ConfigEditorCLI) error
		expected string
	}{
		{
			name: "Append",
			invoke: func(c *ConfigEditorCLI) error {
				return c.Append(context.Background(), "plugins.enabled", "mr_box_plugin")
			},
			expected: "microdrop-config edit --append plugins.enabled mr_box_plugin",
		},
		{
			name: "Remove",
			invoke: func(c *ConfigEditorCLI) error {
				return c.Remove(context.Background(), "plugins.enabled", "mr_box_plugin")
			},
			expected: "microdrop-config edit --remove plugins.enabled mr_box_plugin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{}
			adapter := NewConfigEditorCLI("microdrop-config", runner)

			require.NoError(t, tt.invoke(adapter))
			require.Len(t, runner.commands, 1)
			assert.Equal(t, tt.expected, runner.commands[0].String())
		})
	}
}

func TestAdapters_PropagateRunnerErrorUnwrapped(t *testing.T) {
	failure := errors.New("exec: \"microdrop-plugin-manager\": executable file not found in $PATH")
	runner := &fakeRunner{err: failure}

	err := NewPluginManagerCLI("microdrop-plugin-manager", runner).
		Enable(context.Background(), "mr_box_plugin")
	assert.Same(t, failure, err)

	err = NewConfigEditorCLI("microdrop-config", runner).
		Remove(context.Background(), "plugins.enabled", "mr_box_plugin")
	assert.Same(t, failure, err)
}

// An empty identifier is passed through to the external tools untouched; the
// hooks perform no validation of their own.
func TestAdapters_EmptyIdentifierPassesThrough(t *testing.T) {
	runner := &fakeRunner{}
	adapter := NewPluginManagerCLI("microdrop-plugin-manager", runner)

	require.NoError(t, adapter.Disable(context.Background(), plugin.Identifier("")))
	require.Len(t, runner.commands, 1)
	assert.Equal(t, []string{"disable", ""}, runner.commands[0].Args())
}

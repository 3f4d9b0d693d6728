// Package ports defines the capability interfaces the hook service depends
// on. Each has a subprocess-backed adapter in internal/infrastructure and a
// fake for tests.
package ports

import (
	"context"

	"github.com/wheeler-microfluidics/microdrop-plugin-hooks/internal/core/plugin"
)

// ActivationToggle enables or disables a plugin in the host application's
// activation directory. Backed by the plugin-manager CLI.
type ActivationToggle interface {
	Enable(ctx context.Context, id plugin.Identifier) error
	Disable(ctx context.Context, id plugin.Identifier) error
}

// ConfigListEditor edits a list-valued key in the host application's
// configuration. Backed by the config-editor CLI.
type ConfigListEditor interface {
	Append(ctx context.Context, key string, id plugin.Identifier) error
	Remove(ctx context.Context, key string, id plugin.Identifier) error
}

// StatusWriter records the human-readable hook status messages. The first
// message of an invocation replaces whatever a previous invocation left
// behind; later messages append.
type StatusWriter interface {
	// Truncate creates or empties the status file and writes msg as its
	// first line.
	Truncate(msg string) error
	// Append adds msg as a further line.
	Append(msg string) error
}

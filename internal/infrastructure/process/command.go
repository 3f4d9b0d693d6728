// Package process runs the external command-line tools the hooks delegate
// to. Execution is synchronous: each command runs to completion before
// control returns, with no timeout applied.
package process

import (
	"context"
	"fmt"
	"strings"
)

// Command is a value object describing one external tool invocation.
type Command struct {
	executable string
	args       []string
}

// NewCommand creates a new Command value object.
func NewCommand(executable string, args ...string) (Command, error) {
	if executable == "" {
		return Command{}, fmt.Errorf("executable cannot be empty")
	}
	return Command{
		executable: executable,
		args:       append([]string(nil), args...),
	}, nil
}

// Executable returns the command executable.
func (c Command) Executable() string {
	return c.executable
}

// Args returns a copy of the command arguments.
func (c Command) Args() []string {
	return append([]string(nil), c.args...)
}

// String returns the full command line for logging.
func (c Command) String() string {
	if len(c.args) == 0 {
		return c.executable
	}
	return fmt.Sprintf("%s %s", c.executable, strings.Join(c.args, " "))
}

// Runner executes a command and waits for it to exit. Implementations must
// surface the tool's own diagnostics and return its failure without
// translation.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

package process

import (
	"context"
	"os"
	"os/exec"

	"github.com/sirupsen/logrus"
)

// OSRunner executes commands via os/exec. The child inherits this process's
// stdout and stderr, so whatever the tool prints is the only diagnostic a
// failure carries.
type OSRunner struct {
	logger *logrus.Logger
}

// NewOSRunner creates a Runner backed by os/exec.
func NewOSRunner(logger *logrus.Logger) *OSRunner {
	return &OSRunner{logger: logger}
}

// Run starts the command and waits for it to exit. The error from the exec
// layer is returned as-is: a non-zero exit or a missing executable is the
// invocation's own failure, not something this layer interprets.
func (r *OSRunner) Run(ctx context.Context, cmd Command) error {
	r.logger.WithField("command", cmd.String()).Debug("running external tool")

	execCmd := exec.CommandContext(ctx, cmd.Executable(), cmd.Args()...)
	execCmd.Stdout = os.Stdout
	execCmd.Stderr = os.Stderr

	return execCmd.Run()
}

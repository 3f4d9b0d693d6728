// Package di assembles the hook service and its infrastructure from loaded
// configuration.
package di

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/wheeler-microfluidics/microdrop-plugin-hooks/internal/application/services"
	"github.com/wheeler-microfluidics/microdrop-plugin-hooks/internal/config"
	"github.com/wheeler-microfluidics/microdrop-plugin-hooks/internal/infrastructure/microdrop"
	"github.com/wheeler-microfluidics/microdrop-plugin-hooks/internal/infrastructure/process"
	"github.com/wheeler-microfluidics/microdrop-plugin-hooks/internal/infrastructure/status"
)

// Container holds the wired application dependencies for one invocation.
type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	Hooks  *services.HookService
	Status *status.FileWriter
}

// NewContainer wires the subprocess-backed adapters and the hook service from
// cfg. debug raises the log level regardless of the config value.
func NewContainer(cfg *config.Config, debug bool) *Container {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if debug || cfg.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	runner := process.NewOSRunner(logger)
	statusWriter := status.NewFileWriter(cfg.StatusFile)

	hooks := services.NewHookService(
		microdrop.NewPluginManagerCLI(cfg.PluginManagerExec, runner),
		microdrop.NewConfigEditorCLI(cfg.ConfigEditorExec, runner),
		statusWriter,
		cfg.EnabledListKey,
		os.Stdout,
		logger,
	)

	return &Container{
		Config: cfg,
		Logger: logger,
		Hooks:  hooks,
		Status: statusWriter,
	}
}

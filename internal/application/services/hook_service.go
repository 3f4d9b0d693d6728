package services

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/wheeler-microfluidics/microdrop-plugin-hooks/internal/application/ports"
	"github.com/wheeler-microfluidics/microdrop-plugin-hooks/internal/core/plugin"
)

// SkipMessage is printed by the link hook when the installer did not supply a
// package name. The invocation then completes normally without any external
// calls.
const SkipMessage = "PKG_NAME environment value not set; skipping plugin registration."

// HookService derives the plugin identifier for a hook invocation and issues
// the two external calls the selected mode requires, recording a status
// message after each.
type HookService struct {
	toggle ports.ActivationToggle
	editor ports.ConfigListEditor
	status ports.StatusWriter

	enabledListKey string
	out            io.Writer
	logger         *logrus.Logger
}

// NewHookService wires a hook service. out receives the link-mode skip
// message; operational messages go to the status writer.
func NewHookService(
	toggle ports.ActivationToggle,
	editor ports.ConfigListEditor,
	status ports.StatusWriter,
	enabledListKey string,
	out io.Writer,
	logger *logrus.Logger,
) *HookService {
	return &HookService{
		toggle:         toggle,
		editor:         editor,
		status:         status,
		enabledListKey: enabledListKey,
		out:            out,
		logger:         logger,
	}
}

// Run executes one hook invocation.
//
// Only the link hook guards against an absent package name; the unlink hook
// historically assumes the installer always supplies it and resolves whatever
// it gets, absent included. That asymmetry is kept.
//
// The two external calls run strictly in sequence. A failing call aborts the
// sequence and its error is returned as-is: no retry, no added context, no
// interpretation of the tool's exit status beyond the failure itself.
func (s *HookService) Run(ctx context.Context, mode plugin.Mode, pkg plugin.PackageName) error {
	if mode == plugin.ModeLink && !pkg.Present() {
		s.logger.Debug("no package name provided, skipping link hook")
		fmt.Fprintln(s.out, SkipMessage)
		return nil
	}

	id := plugin.Resolve(pkg)
	s.logger.WithFields(logrus.Fields{
		"package": pkg.Value(),
		"plugin":  id.String(),
		"mode":    mode.String(),
	}).Debug("resolved plugin identifier")

	switch mode {
	case plugin.ModeLink:
		return s.link(ctx, id)
	case plugin.ModeUnlink:
		return s.unlink(ctx, id)
	default:
		return fmt.Errorf("unknown hook mode %d", mode)
	}
}

func (s *HookService) link(ctx context.Context, id plugin.Identifier) error {
	if err := s.toggle.Enable(ctx, id); err != nil {
		return err
	}
	if err := s.record(s.status.Truncate, fmt.Sprintf("Linked %s into activated plugins directory.", id)); err != nil {
		return err
	}

	if err := s.editor.Append(ctx, s.enabledListKey, id); err != nil {
		return err
	}
	return s.record(s.status.Append, fmt.Sprintf("Configured to load %s by default.", id))
}

func (s *HookService) unlink(ctx context.Context, id plugin.Identifier) error {
	if err := s.toggle.Disable(ctx, id); err != nil {
		return err
	}
	if err := s.record(s.status.Truncate, fmt.Sprintf("Unlinked %s from activated plugins directory.", id)); err != nil {
		return err
	}

	if err := s.editor.Remove(ctx, s.enabledListKey, id); err != nil {
		return err
	}
	return s.record(s.status.Append, fmt.Sprintf("Disable loading of %s in MicroDrop.", id))
}

func (s *HookService) record(write func(string) error, msg string) error {
	s.logger.Info(msg)
	if err := write(msg); err != nil {
		return fmt.Errorf("failed to record status message: %w", err)
	}
	return nil
}

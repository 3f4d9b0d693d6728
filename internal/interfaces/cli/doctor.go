package cli

import (
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	doctorTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("86"))

	doctorOKStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46"))

	doctorFailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	doctorDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// newDoctorCommand creates the doctor command
func newDoctorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check hook configuration and external tools",
		Long: `Check that the hooks can run: load the configuration and look up the
plugin-manager and config-editor executables on PATH.

This command will:
- Load and display the effective configuration
- Locate the plugin-manager executable
- Locate the config-editor executable
- Show where status messages will be written`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(cmd)
		},
	}
}

func runDoctor(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	container, err := buildContainer(cmd)
	if err != nil {
		return err
	}
	cfg := container.Config

	fmt.Fprintln(out, doctorTitleStyle.Render("mdhook doctor"))
	fmt.Fprintln(out, "")

	healthy := true
	for _, tool := range []struct {
		role string
		exe  string
	}{
		{role: "plugin manager", exe: cfg.PluginManagerExec},
		{role: "config editor", exe: cfg.ConfigEditorExec},
	} {
		fmt.Fprintf(out, "Checking %s (%s)... ", tool.role, tool.exe)
		resolved, err := lookupExecutable(tool.exe)
		if err != nil {
			healthy = false
			fmt.Fprintln(out, doctorFailStyle.Render("not found"))
			continue
		}
		fmt.Fprintln(out, doctorOKStyle.Render("ok"))
		fmt.Fprintln(out, doctorDimStyle.Render("  "+resolved))
	}

	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Configuration Summary:")
	fmt.Fprintln(out, doctorDimStyle.Render("─────────────────────"))
	fmt.Fprintf(out, "Enabled-plugins key: %s\n", cfg.EnabledListKey)
	fmt.Fprintf(out, "Status file: %s\n", container.Status.Path())
	fmt.Fprintf(out, "Debug: %t\n", cfg.Debug)

	fmt.Fprintln(out, "")
	if !healthy {
		return fmt.Errorf("one or more external tools are missing from PATH")
	}
	fmt.Fprintln(out, doctorOKStyle.Render("Hooks are ready to run."))
	return nil
}

// lookupExecutable resolves a tool on PATH, accepting explicit paths as-is.
func lookupExecutable(exe string) (string, error) {
	if filepath.IsAbs(exe) || filepath.Dir(exe) != "." {
		if _, err := exec.LookPath(exe); err != nil {
			return "", err
		}
		return exe, nil
	}
	return exec.LookPath(exe)
}

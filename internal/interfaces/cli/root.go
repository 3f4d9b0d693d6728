// Package cli wires the cobra command surface of mdhook: the two lifecycle
// hooks (post-link, pre-unlink) plus the resolve and doctor helper commands.
package cli

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var (
	Version   = "dev"     // Overridden by ldflags
	BuildTime = "unknown" // Overridden by ldflags
)

// NewRootCommand builds the base command with the shared persistent flags.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mdhook",
		Short: "MicroDrop plugin registration hooks",
		Long: `mdhook implements the package-manager lifecycle hooks that register a
MicroDrop plugin with the host application's plugin-activation system.

The installer runs 'mdhook post-link' after installing a plugin package and
'mdhook pre-unlink' before removing it. Each hook derives the plugin
identifier from the distribution package name and delegates to the MicroDrop
plugin-manager and config-editor command-line tools.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}}\nBuild time: %s\nGo version: %s\nPlatform: %s/%s\n",
		BuildTime, goVersion(), runtime.GOOS, runtime.GOARCH))

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("config", "", "Config file path (default is mdhook.json)")
	rootCmd.PersistentFlags().String("package", "", "Distribution package name (default is the PKG_NAME environment variable)")

	rootCmd.AddCommand(newPostLinkCommand())
	rootCmd.AddCommand(newPreUnlinkCommand())
	rootCmd.AddCommand(newResolveCommand())
	rootCmd.AddCommand(newDoctorCommand())

	return rootCmd
}

// goVersion returns the Go version used to build the binary
func goVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.GoVersion
	}
	return "unknown"
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Package cli implements the altair-config command line: resolving the
// client configuration, printing it, serving it for inspection and reading
// it back from a running server.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// BuildInfo carries the linker-injected build metadata.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

func (b BuildInfo) withDefaults() BuildInfo {
	if b.Version == "" {
		b.Version = "N/A"
	}
	if b.Date == "" {
		b.Date = "N/A"
	}
	if b.Commit == "" {
		b.Commit = "N/A"
	}
	return b
}

func Execute(info BuildInfo) {
	cmd := newRootCmd(info)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(info BuildInfo) *cobra.Command {
	info = info.withDefaults()

	cmd := &cobra.Command{
		Use:          "altair-config",
		Short:        "Resolve, print and publish the Altair client configuration",
		SilenceUsage: true,
		Version:      info.Version,
	}
	cmd.SetVersionTemplate(fmt.Sprintf(
		"Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		info.Version, info.Date, info.Commit,
	))

	cmd.AddCommand(
		printCmd(),
		serveCmd(info),
		fetchCmd(),
	)
	return cmd
}

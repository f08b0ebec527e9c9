// Package cli implements the kindgraph command-line interface.
//
// This package provides commands for loading graph documents from TOML
// files, inspecting them, and running the library's algorithms against
// them. The CLI is built using cobra and supports verbose logging via
// the charmbracelet/log library.
//
// # Commands
//
//   - run: execute an algorithm (bfs, dfs, dijkstra, bellman-ford,
//     floyd-warshall, components, mst) against a graph document
//   - info: print counts, kind, and per-vertex degrees
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// appName is the application name used for display.
const appName = "kindgraph"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "kindgraph builds and analyzes graphs of every kind",
		Long:         `kindgraph is a CLI over the kindgraph library: load a graph document (simple, multi, pseudo, or hyper) from a TOML file and run traversal, shortest-path, connectivity, and spanning-tree algorithms against it.`,
		SilenceUsage: true,
	}

	root.AddCommand(c.runCommand())
	root.AddCommand(c.infoCommand())

	return root
}

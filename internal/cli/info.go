package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kindgraph/kindgraph/graph"
)

// infoCommand creates the info command, which prints a summary of a
// graph document.
func (c *CLI) infoCommand() *cobra.Command {
	var graphPath string

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print counts, kind, and per-vertex degrees of a graph document",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.load(graphPath)
			if err != nil {
				return err
			}

			return printInfo(cmd, g)
		},
	}

	cmd.Flags().StringVarP(&graphPath, "graph", "g", "", "path to the TOML graph document (required)")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}

func printInfo(cmd *cobra.Command, g graph.Graph) error {
	cmd.Printf("kind: %s\n", g.Kind())
	cmd.Printf("directed: %t\n", g.Directed())
	cmd.Printf("representation: %s\n", g.Representation())
	cmd.Printf("vertices: %d\n", g.VertexCount())
	cmd.Printf("edges: %d\n", g.EdgeCount())
	for _, id := range g.Vertices() {
		deg, err := g.Degree(id)
		if err != nil {
			return err
		}
		cmd.Printf("  %s degree=%d\n", id, deg)
	}

	return printDense(cmd, g)
}

// printDense appends the weight matrix for matrix-backed graphs.
func printDense(cmd *cobra.Command, g graph.Graph) error {
	sg, ok := g.(*graph.SimpleGraph)
	if !ok {
		return nil
	}
	cells, ids, err := sg.Dense()
	if err != nil {
		// Non-matrix stores have no dense view to print.
		return nil
	}
	cmd.Printf("matrix: %s\n", strings.Join(ids, " "))
	for i, row := range cells {
		parts := make([]string, len(row))
		for j, w := range row {
			parts[j] = strconv.FormatFloat(w, 'g', -1, 64)
		}
		cmd.Printf("  %s: %s\n", ids[i], strings.Join(parts, " "))
	}

	return nil
}

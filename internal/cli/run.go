package cli

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kindgraph/kindgraph/bfs"
	"github.com/kindgraph/kindgraph/dfs"
	"github.com/kindgraph/kindgraph/graph"
	"github.com/kindgraph/kindgraph/mst"
	"github.com/kindgraph/kindgraph/shortestpath"
)

// runOpts holds the command-line flags for the run command.
type runOpts struct {
	graphPath string // TOML graph document
	source    string // start vertex for traversals and shortest paths
	target    string // optional destination for dijkstra
	method    string // mst method: kruskal or prim
}

// algorithms lists the accepted run arguments.
var algorithms = []string{"bfs", "dfs", "dijkstra", "bellman-ford", "floyd-warshall", "components", "mst"}

// runCommand creates the run command, which loads a graph document and
// executes one algorithm against it.
func (c *CLI) runCommand() *cobra.Command {
	opts := runOpts{}

	cmd := &cobra.Command{
		Use:       "run <algorithm>",
		Short:     "Run an algorithm against a graph document",
		Long:      fmt.Sprintf("Run one of: %s.", strings.Join(algorithms, ", ")),
		Args:      cobra.ExactArgs(1),
		ValidArgs: algorithms,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAlgorithm(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.graphPath, "graph", "g", "", "path to the TOML graph document (required)")
	cmd.Flags().StringVarP(&opts.source, "source", "s", "", "start vertex")
	cmd.Flags().StringVarP(&opts.target, "target", "t", "", "destination vertex (dijkstra)")
	cmd.Flags().StringVarP(&opts.method, "method", "m", mst.MethodKruskal, "mst method: kruskal or prim")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}

func (c *CLI) runAlgorithm(cmd *cobra.Command, algo string, opts runOpts) error {
	g, err := c.load(opts.graphPath)
	if err != nil {
		return err
	}
	p := newProgress(c.Logger)

	switch algo {
	case "bfs":
		err = c.runBFS(cmd, g, opts)
	case "dfs":
		err = c.runDFS(cmd, g, opts)
	case "dijkstra":
		err = c.runDijkstra(cmd, g, opts)
	case "bellman-ford":
		err = c.runBellmanFord(cmd, g, opts)
	case "floyd-warshall":
		err = c.runFloydWarshall(cmd, g)
	case "components":
		err = c.runComponents(cmd, g)
	case "mst":
		err = c.runMST(cmd, g, opts)
	default:
		return fmt.Errorf("cli: unknown algorithm %q (want one of %s)", algo, strings.Join(algorithms, ", "))
	}
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Ran %s", algo))

	return nil
}

// load decodes and builds the graph document at path.
func (c *CLI) load(path string) (graph.Graph, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	g, err := doc.Build()
	if err != nil {
		return nil, err
	}
	c.Logger.Debugf("loaded %s graph: %d vertices, %d edges", g.Kind(), g.VertexCount(), g.EdgeCount())

	return g, nil
}

func (c *CLI) runBFS(cmd *cobra.Command, g graph.Graph, opts runOpts) error {
	if opts.source == "" {
		return fmt.Errorf("cli: bfs requires --source")
	}
	res, err := bfs.BFS(g, opts.source)
	if err != nil {
		return err
	}
	for _, id := range res.Order {
		cmd.Printf("%s depth=%d\n", id, res.Depth[id])
	}

	return nil
}

func (c *CLI) runDFS(cmd *cobra.Command, g graph.Graph, opts runOpts) error {
	if opts.source == "" {
		return fmt.Errorf("cli: dfs requires --source")
	}
	res, err := dfs.DFS(g, opts.source)
	if err != nil {
		return err
	}
	for _, id := range res.Order {
		cmd.Printf("%s depth=%d\n", id, res.Depth[id])
	}

	return nil
}

func (c *CLI) runDijkstra(cmd *cobra.Command, g graph.Graph, opts runOpts) error {
	if opts.source == "" {
		return fmt.Errorf("cli: dijkstra requires --source")
	}
	var sp []shortestpath.Option
	if opts.target != "" {
		sp = append(sp, shortestpath.WithTarget(opts.target))
	}
	dist, prev, err := shortestpath.Dijkstra(g, opts.source, sp...)
	if err != nil {
		return err
	}
	if opts.target != "" {
		path := shortestpath.ReconstructPath(prev, opts.source, opts.target)
		if path == nil {
			cmd.Printf("%s unreachable from %s\n", opts.target, opts.source)

			return nil
		}
		cmd.Printf("%s dist=%g\n", strings.Join(path, " -> "), dist[opts.target])

		return nil
	}
	printDistances(cmd, dist)

	return nil
}

func (c *CLI) runBellmanFord(cmd *cobra.Command, g graph.Graph, opts runOpts) error {
	if opts.source == "" {
		return fmt.Errorf("cli: bellman-ford requires --source")
	}
	dist, negCycle, err := shortestpath.BellmanFord(g, opts.source)
	if err != nil {
		return err
	}
	if negCycle {
		cmd.Println("negative cycle detected")

		return nil
	}
	printDistances(cmd, dist)

	return nil
}

func (c *CLI) runFloydWarshall(cmd *cobra.Command, g graph.Graph) error {
	dist, err := shortestpath.FloydWarshall(g)
	if err != nil {
		return err
	}
	for _, u := range g.Vertices() {
		printDistancesFrom(cmd, u, dist[u])
	}

	return nil
}

func (c *CLI) runComponents(cmd *cobra.Command, g graph.Graph) error {
	comps, err := bfs.ConnectedComponents(g)
	if err != nil {
		return err
	}
	for i, comp := range comps {
		cmd.Printf("component %d: %s\n", i+1, strings.Join(comp, " "))
	}

	return nil
}

func (c *CLI) runMST(cmd *cobra.Command, g graph.Graph, opts runOpts) error {
	mopts := []mst.Option{mst.WithMethod(opts.method)}
	if opts.source != "" {
		mopts = append(mopts, mst.WithRoot(opts.source))
	}
	tree, total, err := mst.Compute(g, mopts...)
	if err != nil {
		return err
	}
	for _, e := range tree {
		cmd.Printf("%s - %s weight=%g\n", e.Source, e.Target, e.Weight)
	}
	cmd.Printf("total=%g\n", total)

	return nil
}

// printDistances writes vertex distances in sorted vertex order.
func printDistances(cmd *cobra.Command, dist map[string]float64) {
	ids := make([]string, 0, len(dist))
	for id := range dist {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if math.IsInf(dist[id], 1) {
			cmd.Printf("%s unreachable\n", id)
			continue
		}
		cmd.Printf("%s dist=%g\n", id, dist[id])
	}
}

func printDistancesFrom(cmd *cobra.Command, source string, row map[string]float64) {
	ids := make([]string, 0, len(row))
	for id := range row {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if math.IsInf(row[id], 1) {
			continue
		}
		cmd.Printf("%s -> %s dist=%g\n", source, id, row[id])
	}
}

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/wayfind/core"
	"github.com/katalvlaran/wayfind/graphfile"
	"github.com/katalvlaran/wayfind/search"
	"github.com/katalvlaran/wayfind/viz"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "wayfind",
		Short: "Wayfind: graph search over text-described maps",
		Long: `Wayfind loads a weighted undirected graph from a text description file,
one edge per line:

    ('A', 'B', 3, [0, 0], [4, 5])

and searches for a path between two nodes using one of four strategies:
BREADTH, DEPTH, BEST (greedy best-first), or A*.`,
		Example: `  wayfind --filename map.txt --start A --goal F --search A*
  wayfind --filename map.txt --start A --goal F --search BREADTH --plot --verbose`,
		RunE:          runSearch,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}

	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.wayfind.yaml)")

	rootCmd.Flags().String("filename", "graph.txt", "graph description file")
	rootCmd.Flags().String("start", "", "start node label")
	rootCmd.Flags().String("goal", "", "goal node label")
	rootCmd.Flags().String("search", "BREADTH", "search strategy (BREADTH, DEPTH, BEST, A*)")
	rootCmd.Flags().Bool("plot", false, "render the graph and found path to a PNG")
	rootCmd.Flags().Bool("verbose", false, "log every expansion and frontier snapshot")
	rootCmd.Flags().Bool("strict", false, "abort on malformed description lines instead of skipping")

	viper.BindPFlag("filename", rootCmd.Flags().Lookup("filename"))
	viper.BindPFlag("start", rootCmd.Flags().Lookup("start"))
	viper.BindPFlag("goal", rootCmd.Flags().Lookup("goal"))
	viper.BindPFlag("search", rootCmd.Flags().Lookup("search"))
	viper.BindPFlag("plot", rootCmd.Flags().Lookup("plot"))
	viper.BindPFlag("verbose", rootCmd.Flags().Lookup("verbose"))
	viper.BindPFlag("strict", rootCmd.Flags().Lookup("strict"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".wayfind" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".wayfind")
	}

	viper.SetEnvPrefix("wayfind")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	verbose := viper.GetBool("verbose")
	logger := newLogger(verbose)
	slog.SetDefault(logger)

	alg, err := search.ParseAlgorithm(viper.GetString("search"))
	if err != nil {
		return err
	}

	filename := viper.GetString("filename")
	loadOpts := []graphfile.Option{graphfile.WithLogger(logger)}
	if viper.GetBool("strict") {
		loadOpts = append(loadOpts, graphfile.WithStrict())
	}
	g, err := graphfile.Load(filename, loadOpts...)
	if err != nil {
		return err
	}
	logger.Debug("graph loaded",
		slog.String("file", filename),
		slog.Int("nodes", g.NodeCount()),
		slog.Int("edges", g.EdgeCount()))

	opts := []search.Option{search.WithContext(cmd.Context())}
	if verbose {
		opts = append(opts, traceOptions(logger)...)
	}

	res, err := search.Search(g, alg, viper.GetString("start"), viper.GetString("goal"), opts...)
	if err != nil {
		return err
	}

	if !res.Found() {
		fmt.Println("No path found.")
	} else {
		fmt.Printf("%s path: %s\n", alg, strings.Join(res.Path, " -> "))
		fmt.Printf("Total cost: %d\n", res.Cost)
	}

	if viper.GetBool("plot") {
		out, err := renderPlot(g, res, filename)
		if err != nil {
			return err
		}
		fmt.Println("Plot saved to", out)
	}

	return nil
}

// newLogger builds the CLI logger: debug-level text on stderr when verbose,
// warnings only otherwise.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// traceOptions wires the search hooks to the logger, printing each expansion,
// each frontier admission, and the frontier state after every expansion.
func traceOptions(logger *slog.Logger) []search.Option {
	return []search.Option{
		search.WithOnExpand(func(id string) {
			logger.Debug("expand", slog.String("node", id))
		}),
		search.WithOnEnqueue(func(id string) {
			logger.Debug("enqueue", slog.String("node", id))
		}),
		search.WithOnFrontier(func(snap search.Snapshot) {
			logger.Debug("frontier", slog.String("state", formatSnapshot(snap)))
		}),
	}
}

// formatSnapshot renders a frontier snapshot in pop order. Best-First shows
// label;h per entry, A* shows label;g;h;f, and the unordered strategies show
// bare labels.
func formatSnapshot(snap search.Snapshot) string {
	parts := make([]string, 0, len(snap.Entries))
	for _, e := range snap.Entries {
		switch snap.Algorithm {
		case search.Best:
			parts = append(parts, fmt.Sprintf("%s;%g", e.ID, e.Priority))
		case search.AStar:
			parts = append(parts, fmt.Sprintf("%s;%d;%g;%g", e.ID, e.GCost, e.HCost, e.Priority))
		default:
			parts = append(parts, e.ID)
		}
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// renderPlot draws the graph with the found path highlighted and writes
// <strategy>_<file>.png into the working directory. The A* asterisk is
// spelled out so the name stays shell-friendly.
func renderPlot(g *core.Graph, res *search.Result, filename string) (string, error) {
	r, err := viz.NewRenderer(g, viz.WithTitle(res.Algorithm.String()+" search"))
	if err != nil {
		return "", err
	}
	r.MarkPath(res.Path)
	if len(res.Path) > 0 {
		r.MarkStart(res.Path[0])
		r.MarkGoal(res.Path[len(res.Path)-1])
	}

	out := plotFilename(res.Algorithm, filename)
	if err := r.SavePNG(out); err != nil {
		return "", err
	}

	return out, nil
}

// plotFilename derives the output image name from the strategy and the
// description file, e.g. breadth_map.png or astar_map.png.
func plotFilename(alg search.Algorithm, filename string) string {
	tag := strings.ToLower(strings.ReplaceAll(alg.String(), "A*", "ASTAR"))
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	return fmt.Sprintf("%s_%s.png", tag, base)
}

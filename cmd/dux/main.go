// Command dux scans a directory tree, classifies what it finds against a
// library of cache/build-artifact/temp-file patterns, and reports disk
// usage: summary totals, per-category insights, the largest nodes, or an
// interactive tree browser.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/prenomnom/dux/internal/config"
	"github.com/prenomnom/dux/internal/fsadapter"
	"github.com/prenomnom/dux/internal/insights"
	"github.com/prenomnom/dux/internal/model"
	"github.com/prenomnom/dux/internal/reporter"
	"github.com/prenomnom/dux/internal/scanner"
	"github.com/prenomnom/dux/internal/tui"
)

var (
	verbose   bool
	workers   int
	maxDepth  int
	domains   []string
	topN      int
	kindFlag  string
	categories []string
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "dux",
		Short:   "📊 dux - Parallel disk usage analyzer",
		Long:    `dux scans a directory tree in parallel and reports where disk space goes: caches, build artifacts, temp files, and the largest individual files and directories.`,
		Version: "1.0.0",
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "w", 4, "Number of parallel scan workers")
	rootCmd.PersistentFlags().IntVar(&maxDepth, "max-depth", -1, "Maximum recursion depth (-1 = unlimited)")
	rootCmd.PersistentFlags().StringSliceVarP(&domains, "domain", "d", nil, "Restrict pattern rules to these domains (comma-separated, empty = all)")

	rootCmd.AddCommand(
		newScanCmd(),
		newInsightsCmd(),
		newTopCmd(),
		newTUICmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan [path]",
		Short: "Scan a directory and print summary statistics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rep := reporter.NewReporter(verbose)
			rep.PrintHeader()

			snapshot, err := runScan(cmd.Context(), rep, pathArg(args))
			if err != nil {
				return err
			}
			rep.PrintScanSummary(snapshot)
			return nil
		},
	}
}

func newInsightsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insights [path]",
		Short: "Scan and report cache/build-artifact/temp-file insights",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rep := reporter.NewReporter(verbose)
			rep.PrintHeader()

			snapshot, err := runScan(cmd.Context(), rep, pathArg(args))
			if err != nil {
				return err
			}

			cfg := buildAppConfig()
			bundle := insights.Generate(snapshot.Root, insightsConfigFrom(cfg))
			if len(categories) > 0 {
				bundle.Insights = insights.Filter(bundle, parseCategories(categories))
			}
			rep.PrintInsightBundle(bundle)
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&categories, "category", "c", nil, "Restrict insights to these categories (temp,cache,build_artifact)")
	return cmd
}

func newTopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "top [path]",
		Short: "Scan and print the largest files or directories",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rep := reporter.NewReporter(verbose)
			rep.PrintHeader()

			snapshot, err := runScan(cmd.Context(), rep, pathArg(args))
			if err != nil {
				return err
			}

			filter := insights.KindFilter{}
			switch strings.ToLower(kindFlag) {
			case "file":
				filter = insights.KindFilter{Kind: model.File, Apply: true}
			case "dir", "directory":
				filter = insights.KindFilter{Kind: model.Directory, Apply: true}
			}

			top := insights.TopN(snapshot.Root, topN, filter)
			rep.PrintTopNodes(top)
			return nil
		},
	}
	cmd.Flags().IntVarP(&topN, "limit", "n", 20, "Number of entries to show")
	cmd.Flags().StringVar(&kindFlag, "kind", "", "Restrict to \"file\" or \"dir\" (default: either)")
	return cmd
}

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui [path]",
		Short: "Launch the interactive tree browser",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rep := reporter.NewReporter(verbose)

			snapshot, err := runScan(cmd.Context(), rep, pathArg(args))
			if err != nil {
				return err
			}

			cfg := buildAppConfig()
			bundle := insights.Generate(snapshot.Root, insightsConfigFrom(cfg))
			return tui.Run(snapshot.Root, bundle)
		},
	}
}

// runScan expands the depth/worker flags into a scanner.Options, wires a
// Ctrl+C-triggered cancellation, and reports progress when verbose.
func runScan(ctx context.Context, rep *reporter.Reporter, target string) (*model.ScanSnapshot, error) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	opts := scanner.Options{Workers: workers}
	if maxDepth >= 0 {
		d := maxDepth
		opts.MaxDepth = &d
	}
	if verbose {
		opts.Progress = func(currentPath string, files, directories int64) {
			rep.PrintProgress(currentPath, files, directories)
		}
	}

	start := time.Now()
	snapshot, err := scanner.Scan(ctx, fsadapter.New(), target, opts)
	if err != nil {
		rep.PrintError(err.Error())
		return nil, err
	}
	if verbose {
		fmt.Println()
		rep.PrintInfo(fmt.Sprintf("Scan completed in %v", time.Since(start).Round(time.Millisecond)))
	}
	return snapshot, nil
}

// pathArg resolves the scan root: an explicit argument wins; otherwise the
// first existing well-known project directory (~/Projects, ~/Code, ...) is
// used, falling back to the current directory if none exist.
func pathArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	fs := fsadapter.New()
	if roots := scanner.DefaultRoots(home, fs.Exists); len(roots) > 0 {
		return roots[0]
	}
	return "."
}

func buildAppConfig() *config.AppConfig {
	cfg := config.NewDefaultConfig()
	cfg.ScanWorkers = workers
	cfg.Verbose = verbose
	for _, d := range domains {
		cfg.Domains = append(cfg.Domains, parseDomain(d))
	}
	return cfg
}

func parseDomain(s string) config.Domain {
	switch strings.ToLower(s) {
	case "frontend":
		return config.DomainFrontend
	case "backend":
		return config.DomainBackend
	case "mobile":
		return config.DomainMobile
	case "devops":
		return config.DomainDevOps
	case "dataml", "data/ml":
		return config.DomainDataML
	default:
		return config.DomainSystem
	}
}

func parseCategories(names []string) []model.Category {
	var out []model.Category
	for _, n := range names {
		switch strings.ToLower(n) {
		case "temp":
			out = append(out, model.Temp)
		case "cache":
			out = append(out, model.Cache)
		case "build_artifact", "build", "buildartifact":
			out = append(out, model.BuildArtifact)
		}
	}
	return out
}

// insightsConfigFrom partitions an AppConfig's flat rule list by category
// into the per-category slices the insight engine expects.
func insightsConfigFrom(cfg *config.AppConfig) insights.Config {
	ic := insights.Config{
		AdditionalTempPaths:    cfg.AdditionalTempPaths,
		AdditionalCachePaths:   cfg.AdditionalCachePaths,
		MaxInsightsPerCategory: cfg.EffectiveMaxInsightsPerCategory(),
	}
	for _, r := range cfg.Rules() {
		switch r.Category {
		case model.Temp:
			ic.TempPatterns = append(ic.TempPatterns, r)
		case model.Cache:
			ic.CachePatterns = append(ic.CachePatterns, r)
		case model.BuildArtifact:
			ic.BuildArtifactPatterns = append(ic.BuildArtifactPatterns, r)
		}
	}
	return ic
}

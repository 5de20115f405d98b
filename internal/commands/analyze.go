package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/wren/internal/output"
	"github.com/simonhull/firebird-suite/wren/pkg/analyzer"
	"github.com/simonhull/firebird-suite/wren/pkg/config"
	"github.com/simonhull/firebird-suite/wren/pkg/report"
)

var (
	format  string
	outPath string
	workers int
	watch   bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [path]",
	Short: "Analyze component sources and report their reactive properties",
	Long: `Finds custom element classes under path (default: the current directory)
and extracts the configuration of every reactive property.

A summary is always printed. A report is written to --out, or to stdout
when --format is given without --out.

Example:
  wren analyze ./src
  wren analyze --format markdown --out docs/components.md
  wren analyze --watch --out dist/custom-elements.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&format, "format", "f", "", "Report format: json, yaml, markdown or html")
	analyzeCmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the report to this file")
	analyzeCmd.Flags().IntVarP(&workers, "workers", "w", 0, "Parallel parse workers (0: one per CPU)")
	analyzeCmd.Flags().BoolVar(&watch, "watch", false, "Re-analyze when sources change")

	RootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	projectPath := "."
	if len(args) > 0 {
		projectPath = args[0]
	}

	cfg, err := loadConfig(projectPath)
	if err != nil {
		return err
	}
	toStdout := applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	a, err := analyzer.FromConfig(cfg)
	if err != nil {
		return err
	}
	a = a.WithLogger(log)

	// The report owns stdout when it is written there.
	if toStdout {
		prev := output.SetWriter(os.Stderr)
		defer output.SetWriter(prev)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if watch {
		output.Info(fmt.Sprintf("Watching %s (Ctrl+C to stop)", projectPath))
		return a.Watch(ctx, projectPath, analyzer.WatchOptions{Workers: cfg.Analysis.Workers},
			func(proj *analyzer.Project, changed []string) {
				for _, path := range changed {
					output.Verbose("changed: " + path)
				}
				printSummary(proj)
				if err := emit(cmd, proj, cfg, toStdout); err != nil {
					output.Error(err.Error())
				}
			})
	}

	var proj *analyzer.Project
	err = output.RunWithSpinner(ctx, os.Stderr, "Analyzing "+projectPath, func(ctx context.Context) error {
		var err error
		proj, err = a.AnalyzeParallel(ctx, projectPath, cfg.Analysis.Workers)
		return err
	})
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	printSummary(proj)
	if hits, misses := a.Cache().Stats(); hits+misses > 0 {
		output.Verbose(fmt.Sprintf("cache: %d hits, %d misses", hits, misses))
	}
	return emit(cmd, proj, cfg, toStdout)
}

// applyFlags overlays command-line flags on cfg and reports whether the
// report goes to stdout.
func applyFlags(cmd *cobra.Command, cfg *config.Config) bool {
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = format
	}
	if flags.Changed("out") {
		cfg.Output.Path = outPath
	}
	if flags.Changed("workers") {
		cfg.Analysis.Workers = workers
	}
	return cfg.Output.Path == "" && flags.Changed("format")
}

func emit(cmd *cobra.Command, proj *analyzer.Project, cfg *config.Config, toStdout bool) error {
	m := report.Build(proj)
	switch {
	case cfg.Output.Path != "":
		if err := report.WriteFile(cfg.Output.Path, m, cfg.Output.Format); err != nil {
			return err
		}
		output.Success("Report written to " + cfg.Output.Path)
	case toStdout:
		return report.Write(cmd.OutOrStdout(), m, cfg.Output.Format)
	}
	return nil
}

func printSummary(proj *analyzer.Project) {
	comps := proj.Components()
	props := 0
	for _, c := range comps {
		props += len(c.Properties)
	}

	output.Success(fmt.Sprintf("Analyzed %d files: %d components, %d properties", proj.Files, len(comps), props))

	width := output.Width(os.Stderr)
	for _, c := range comps {
		label := c.Name
		if c.TagName != "" {
			label = fmt.Sprintf("<%s> %s", c.TagName, c.Name)
		}
		output.Step(truncate(fmt.Sprintf("%s  %d properties", label, len(c.Properties)), width-4))
		for _, p := range c.Properties {
			output.Verbose(fmt.Sprintf("  %s.%s attribute=%s reflect=%t", c.Name, p.Name, attrLabel(p), p.Config.Reflect))
		}
	}

	for _, s := range proj.Skipped {
		output.Warn(fmt.Sprintf("skipped %s: %v", s.Path, s.Err))
	}
	for _, m := range proj.Modules {
		if m.HasErrors {
			output.Warn(m.Path + " has syntax errors; results may be incomplete")
		}
	}
}

func attrLabel(p *analyzer.Property) string {
	if !p.HasAttribute {
		return "none"
	}
	return p.Attribute
}

func truncate(s string, max int) string {
	r := []rune(s)
	if max < 4 || len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

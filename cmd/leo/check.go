package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"leo/internal/diagfmt"
	"leo/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [dir]",
	Short: "Parse every Leo file in a directory and report diagnostics",
	Long: `Check parses all *.leo files under a directory. Without an argument it
locates the enclosing leo.toml project and checks its source directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "parallel workers (0 = number of CPUs)")
	checkCmd.Flags().Bool("ui", false, "interactive progress display")
	checkCmd.Flags().Bool("no-cache", false, "bypass the on-disk result cache")
}

func runCheck(cmd *cobra.Command, args []string) error {
	jobs, _ := cmd.Flags().GetInt("jobs")
	withUI, _ := cmd.Flags().GetBool("ui")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	dir, err := resolveCheckDir(args)
	if err != nil {
		return err
	}

	var cache *driver.DiskCache
	if !noCache {
		// Cache failures degrade to a full re-parse, never to an error.
		cache, _ = driver.OpenDiskCache("leo")
	}

	var result *driver.CheckResult
	if withUI && isTerminal(os.Stdout) {
		result, err = runCheckWithUI(cmd.Context(), dir, maxDiagnostics(cmd), jobs, cache)
	} else {
		result, err = driver.CheckDir(cmd.Context(), dir, maxDiagnostics(cmd), jobs, nil, cache)
	}
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	opts := diagfmt.PrettyOpts{Color: useColor(cmd, os.Stderr)}
	for _, report := range result.Reports {
		if report.Bag.Len() == 0 {
			continue
		}
		if err := diagfmt.Pretty(os.Stderr, report.Bag, report.FileSet, opts); err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr)
	}

	if !quiet {
		clean := len(result.Reports) - result.Broken
		fmt.Printf("checked %d files: %d clean, %d broken\n", len(result.Reports), clean, result.Broken)
	}
	if result.HasErrors() {
		os.Exit(1)
	}
	return nil
}

// resolveCheckDir picks the directory to check: the argument when given,
// otherwise the enclosing leo.toml project's source directory.
func resolveCheckDir(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	manifest, ok, err := loadProjectManifest(".")
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%s", noLeoTomlMessage)
	}
	return manifest.SourceDir(), nil
}

func runCheckWithUI(ctx context.Context, dir string, maxDiag, jobs int, cache *driver.DiskCache) (*driver.CheckResult, error) {
	files, err := driver.ListLeoFiles(dir)
	if err != nil {
		return nil, err
	}

	sink := driver.NewChannelSink(len(files) * 2)

	type checkOutcome struct {
		result *driver.CheckResult
		err    error
	}
	outcome := make(chan checkOutcome, 1)
	go func() {
		res, err := driver.CheckDir(ctx, dir, maxDiag, jobs, sink, cache)
		sink.Close()
		outcome <- checkOutcome{res, err}
	}()

	if err := runProgressUI(fmt.Sprintf("checking %s", dir), files, sink.Events()); err != nil {
		return nil, err
	}
	out := <-outcome
	return out.result, out.err
}

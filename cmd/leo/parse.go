package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"leo/internal/diagfmt"
	"leo/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.leo",
	Short: "Parse a Leo source file and report diagnostics",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "diagnostic format (pretty|json)")
	parseCmd.Flags().Bool("dump-ast", false, "print the parsed AST to stdout")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	dumpAST, err := cmd.Flags().GetBool("dump-ast")
	if err != nil {
		return fmt.Errorf("failed to get dump-ast flag: %w", err)
	}

	result, err := driver.Parse(args[0], maxDiagnostics(cmd))
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	if result.Bag.Len() > 0 {
		switch format {
		case "pretty":
			opts := diagfmt.PrettyOpts{Color: useColor(cmd, os.Stderr)}
			if err := diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts); err != nil {
				return err
			}
		case "json":
			opts := diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true}
			if err := diagfmt.JSON(os.Stdout, result.Bag, result.FileSet, opts); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
	}

	if dumpAST {
		if err := diagfmt.DumpAST(os.Stdout, result.Builder, result.FileID); err != nil {
			return err
		}
	}

	if result.Bag.HasErrors() {
		os.Exit(1)
	}
	return nil
}

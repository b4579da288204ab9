package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/joshuapare/metapatch/meta/est"
	"github.com/joshuapare/metapatch/meta/importer"
	"github.com/joshuapare/metapatch/meta/manip"
	"github.com/joshuapare/metapatch/meta/printer"
	"github.com/joshuapare/metapatch/meta/ttmeta"
	"github.com/joshuapare/metapatch/pkg/types"
)

var (
	estApplyType   string
	estApplyOutput string
)

func init() {
	rootCmd.AddCommand(newEstCmd())
}

func newEstCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "est",
		Short: "Inspect and patch EST skeleton tables",
	}
	cmd.AddCommand(newEstDumpCmd(), newEstApplyCmd())
	return cmd
}

func newEstDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <table>",
		Short: "Print the entries of an EST table file",
		Long: `The dump command validates an EST table file and prints its
entries in key order.

Example:
  metactl est dump est_head.bin
  metactl est dump est_head.bin --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEstDump(args)
		},
	}
}

func runEstDump(args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	t, err := est.New(data)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	return printer.New(os.Stdout, printerOptions()).PrintEst(filepath.Base(args[0]), t)
}

func newEstApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply <table> <files...>",
		Short: "Apply the skeleton overrides of metadata files to an EST table",
		Long: `The apply command decodes the given metadata files, applies their
skeleton overrides for one table type to the table file, and writes the
patched table. Overrides for other table types are counted as skipped.

Example:
  metactl est apply est_head.bin ./mod --type head -o est_head.patched.bin`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEstApply(cmd.Context(), args)
		},
	}
	cmd.Flags().StringVarP(&estApplyType, "type", "t", "", "Table type: face, hair, head or body")
	cmd.Flags().StringVarP(&estApplyOutput, "output", "o", "", "Output file")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func runEstApply(ctx context.Context, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	typ, err := parseEstType(estApplyType)
	if err != nil {
		return err
	}

	b, err := loadBaseline(map[string]string{typ.String(): args[0]})
	if err != nil {
		return err
	}
	defer b.Close()

	snap, err := b.EstSnapshot(typ)
	if err != nil {
		return err
	}
	table, err := est.New(snap)
	if err != nil {
		return err
	}

	files, err := collectFiles(args[1:])
	if err != nil {
		return err
	}
	opts := importer.Options{Parse: ttmeta.DefaultOptions()}
	opts.Parse.Defaults = b
	rep, err := importer.Import(ctx, files, opts)
	if err != nil {
		return err
	}

	stats, err := rep.Set.ApplyEst(map[types.EstType]*est.Table{typ: table})
	if err != nil {
		return err
	}
	if err := os.WriteFile(estApplyOutput, table.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", estApplyOutput, err)
	}

	if jsonOut {
		return printJSON(applyResult{Table: typ.String(), Output: estApplyOutput, Entries: table.Count(), Stats: stats, Invalid: rep.Invalid})
	}
	printInfo("Wrote %s: %d entries\n", estApplyOutput, table.Count())
	printInfo("  added: %d, changed: %d, removed: %d, unchanged: %d, skipped: %d\n",
		stats.Added, stats.Changed, stats.Removed, stats.Unchanged, stats.Skipped)
	if rep.Invalid > 0 {
		printError("%d invalid file(s) ignored\n", rep.Invalid)
	}
	return nil
}

type applyResult struct {
	Table   string           `json:"table"`
	Output  string           `json:"output"`
	Entries int              `json:"entries"`
	Stats   manip.ApplyStats `json:"stats"`
	Invalid int              `json:"invalid"`
}

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/metapatch/meta/importer"
	"github.com/joshuapare/metapatch/meta/printer"
	"github.com/joshuapare/metapatch/meta/ttmeta"
)

var (
	parseKeepDefault bool
	parseMerged      bool
	parseEstDefaults map[string]string
	parseJobs        int
)

func init() {
	rootCmd.AddCommand(newParseCmd())
}

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <files...>",
		Short: "Decode .meta and .rgsp files",
		Long: `The parse command decodes TexTools metadata files and prints the
overrides they carry. Directories are searched for .meta and .rgsp files.

Example:
  metactl parse e0001_top.meta
  metactl parse ./mod --merged --json
  metactl parse ./mod --est body=est_body.bin --keep-default`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd.Context(), args)
		},
	}

	cmd.Flags().BoolVar(&parseKeepDefault, "keep-default", false, "Keep entries equal to the defaults")
	cmd.Flags().BoolVar(&parseMerged, "merged", false, "Print the merged set instead of each file")
	cmd.Flags().StringToStringVar(&parseEstDefaults, "est", nil, "Default EST table files, e.g. head=est_head.bin")
	cmd.Flags().IntVarP(&parseJobs, "jobs", "j", 0, "Files decoded concurrently (default: number of CPUs)")
	return cmd
}

func runParse(ctx context.Context, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	b, err := loadBaseline(parseEstDefaults)
	if err != nil {
		return err
	}
	defer b.Close()

	files, err := collectFiles(args)
	if err != nil {
		return err
	}
	printVerbose("Decoding %d file(s)\n", len(files))

	opts := importer.Options{Parse: ttmeta.DefaultOptions(), Concurrency: parseJobs}
	opts.Parse.KeepDefault = parseKeepDefault
	opts.Parse.Defaults = b

	rep, err := importer.Import(ctx, files, opts)
	if err != nil {
		return err
	}

	p := printer.New(os.Stdout, printerOptions())
	if parseMerged {
		if err := p.PrintSet(rep.Set); err != nil {
			return err
		}
	} else {
		for _, r := range rep.Results {
			if err := p.PrintMeta(r.Meta); err != nil {
				return err
			}
		}
	}

	if !jsonOut {
		printInfo("\n%d file(s), %d invalid, %d skipped, %d manipulation(s)\n",
			len(rep.Results), rep.Invalid, len(rep.Skipped), rep.Set.Len())
	}
	for _, name := range rep.Skipped {
		printVerbose("Skipped unsupported file: %s\n", name)
	}
	if rep.Invalid > 0 {
		return fmt.Errorf("%d invalid file(s)", rep.Invalid)
	}
	return nil
}

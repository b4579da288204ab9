package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joshuapare/metapatch/meta/baseline"
	"github.com/joshuapare/metapatch/meta/importer"
	"github.com/joshuapare/metapatch/meta/printer"
	"github.com/joshuapare/metapatch/pkg/types"
)

// collectFiles reads every argument; directories contribute their
// supported files in lexical order.
func collectFiles(args []string) ([]importer.File, error) {
	var files []importer.File
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			data, err := os.ReadFile(arg)
			if err != nil {
				return nil, err
			}
			files = append(files, importer.File{Name: arg, Data: data})
			continue
		}
		err = filepath.WalkDir(arg, func(p string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() || !importer.Supported(p) {
				return err
			}
			data, err := os.ReadFile(p)
			if err != nil {
				return err
			}
			files = append(files, importer.File{Name: p, Data: data})
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

// parseEstType accepts the table names used on the command line.
func parseEstType(s string) (types.EstType, error) {
	for _, t := range types.EstTypes {
		if strings.EqualFold(s, t.String()) {
			return t, nil
		}
	}
	return types.EstInvalid, fmt.Errorf("unknown est table %q (want face, hair, head or body)", s)
}

// loadBaseline maps the given default tables, keyed by table name.
func loadBaseline(tables map[string]string) (*baseline.Baseline, error) {
	b := baseline.New(nil, nil)
	for name, path := range tables {
		t, err := parseEstType(name)
		if err != nil {
			b.Close()
			return nil, err
		}
		printVerbose("Mapping %s defaults: %s\n", t, path)
		if err := b.MapEst(t, path); err != nil {
			b.Close()
			return nil, fmt.Errorf("load %s defaults: %w", t, err)
		}
	}
	return b, nil
}

func printerOptions() printer.Options {
	opts := printer.DefaultOptions()
	if jsonOut {
		opts.Format = printer.FormatJSON
	}
	return opts
}

// Package importer decodes every metadata file of a mod and folds them
// into one manipulation set.
//
// Files are decoded concurrently but merged in input order, so a later
// file overrides an earlier one exactly as if they were decoded one by
// one. Invalid files contribute nothing.
package importer

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/joshuapare/metapatch/internal/logger"
	"github.com/joshuapare/metapatch/meta/manip"
	"github.com/joshuapare/metapatch/meta/ttmeta"
)

// Extensions of the files Import understands.
const (
	ExtMeta = ".meta"
	ExtRgsp = ".rgsp"
)

// Supported reports whether name has an extension Import decodes.
func Supported(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ExtMeta, ExtRgsp:
		return true
	}
	return false
}

// File is one input.
type File struct {
	Name string
	Data []byte
}

// Options configures an import.
type Options struct {
	// Parse is passed to the decoders.
	Parse ttmeta.Options

	// Concurrency bounds the files decoded at once. Default: GOMAXPROCS.
	Concurrency int

	// Logger receives progress. Default: logger.L.
	Logger *slog.Logger
}

// Result is the outcome for one file.
type Result struct {
	Name string
	Meta *ttmeta.Meta
}

// Report is the outcome of an import.
type Report struct {
	Set     *manip.Set
	Results []Result // in input order
	Invalid int
	Skipped []string // unsupported extensions
}

// Import decodes files and merges them. The only error is a cancelled ctx.
func Import(ctx context.Context, files []File, opts Options) (*Report, error) {
	return run(ctx, len(files), func(i int) (string, []byte, error) {
		return files[i].Name, files[i].Data, nil
	}, opts)
}

// ImportFS decodes every supported file below the root of fsys, in
// lexical path order.
func ImportFS(ctx context.Context, fsys fs.FS, opts Options) (*Report, error) {
	var names []string
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			names = append(names, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("importer: walk: %w", err)
	}
	return run(ctx, len(names), func(i int) (string, []byte, error) {
		if !Supported(names[i]) {
			return names[i], nil, nil
		}
		data, err := fs.ReadFile(fsys, names[i])
		if err != nil {
			return names[i], nil, fmt.Errorf("importer: read %s: %w", names[i], err)
		}
		return names[i], data, nil
	}, opts)
}

func run(ctx context.Context, n int, load func(int) (string, []byte, error), opts Options) (*Report, error) {
	log := logger.Or(opts.Logger)
	if opts.Parse.Logger == nil {
		opts.Parse.Logger = log
	}
	limit := opts.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i := range n {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			name, data, err := load(i)
			if err != nil {
				return err
			}
			results[i] = Result{Name: name, Meta: decode(name, data, opts.Parse)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rep := &Report{Set: manip.NewSet(), Results: make([]Result, 0, n)}
	for _, r := range results {
		switch {
		case r.Meta == nil:
			rep.Skipped = append(rep.Skipped, r.Name)
			continue
		case !r.Meta.Valid():
			rep.Invalid++
		default:
			rep.Set.Merge(r.Meta.Manipulations)
		}
		rep.Results = append(rep.Results, r)
	}
	log.Info("imported metadata", "files", len(rep.Results), "invalid", rep.Invalid,
		"skipped", len(rep.Skipped), "manipulations", rep.Set.Len())
	return rep, nil
}

// decode picks the decoder by extension; nil means unsupported.
func decode(name string, data []byte, opts ttmeta.Options) *ttmeta.Meta {
	switch strings.ToLower(path.Ext(name)) {
	case ExtMeta:
		return ttmeta.Parse(data, opts)
	case ExtRgsp:
		return ttmeta.ParseRGSP(name, data, opts)
	}
	return nil
}

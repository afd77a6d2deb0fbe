// Package driver orchestrates formatting runs over files and directories.
package driver

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"kakapo/internal/format"
	"kakapo/internal/parser"
	"kakapo/internal/source"
)

// SourceExt is the file extension formatted by kakapo.
const SourceExt = ".m"

// FormatOptions configures code formatting.
type FormatOptions struct {
	Check   bool
	Stdout  bool
	Options format.Options

	// Cache, when non-nil, skips files whose content is already known
	// to be formatted under the same options.
	Cache *FormatCache

	// Events, when non-nil, receives per-file progress notifications.
	Events chan<- Event
}

// FormatResult captures the result of formatting a single file.
type FormatResult struct {
	Path      string
	Changed   bool
	Err       error
	Formatted []byte
}

// FormatPaths formats provided files or directories (recursively collecting .m files).
// A parse error in one file is recorded in its result and the run continues.
// When opts.Check is true, files are not modified; Changed indicates whether
// formatting would update the file contents. When opts.Stdout is true, formatted
// content is returned in the results without touching files on disk.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files, err := CollectSourceFiles(ctx, paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("fmt: no source files found")
	}

	emit := func(ev Event) {
		if opts.Events != nil {
			opts.Events <- ev
		}
	}
	for _, path := range files {
		emit(Event{File: path, Status: StatusQueued})
	}

	results := make([]FormatResult, 0, len(files))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result := FormatResult{Path: path}
		emit(Event{File: path, Stage: StageParse, Status: StatusWorking})
		formatted, changed, err := formatSingleFile(path, opts)
		if err != nil {
			result.Err = err
			results = append(results, result)
			emit(Event{File: path, Status: StatusError})
			continue
		}

		if opts.Check || opts.Stdout {
			result.Changed = changed
			if opts.Stdout {
				result.Formatted = formatted
			}
			results = append(results, result)
			emit(Event{File: path, Status: StatusDone})
			continue
		}

		if changed {
			emit(Event{File: path, Stage: StageWrite, Status: StatusWorking})
			mode := os.FileMode(0o644)
			if info, statErr := os.Stat(path); statErr == nil {
				mode = info.Mode()
			}
			if err := os.WriteFile(path, formatted, mode.Perm()); err != nil {
				result.Err = err
				results = append(results, result)
				emit(Event{File: path, Status: StatusError})
				continue
			}
			result.Changed = true
			opts.Cache.MarkFormatted(formatted, opts.Options)
		}
		results = append(results, result)
		emit(Event{File: path, Status: StatusDone})
	}

	return results, nil
}

func formatSingleFile(path string, opts FormatOptions) (formatted []byte, changed bool, err error) {
	sf, err := source.Load(path)
	if err != nil {
		return nil, false, err
	}
	// Loading already normalized CRLF and BOM; if it did, the file on
	// disk differs from the tree text no matter what the passes do.
	loadChanged := sf.Flags&(source.FileHadBOM|source.FileNormalizedCRLF) != 0

	if !loadChanged && opts.Cache.IsFormatted(sf.Content, opts.Options) {
		return sf.Content, false, nil
	}

	tree, err := parser.Parse(sf)
	if err != nil {
		return nil, false, err
	}

	formatted = []byte(format.Format(tree, opts.Options).Text())
	changed = loadChanged || !bytes.Equal(sf.Content, formatted)
	if !changed {
		opts.Cache.MarkFormatted(sf.Content, opts.Options)
	}
	return formatted, changed, nil
}

// CollectSourceFiles expands paths into the sorted, deduplicated list of
// files a run would touch. Directories are walked recursively for .m files.
func CollectSourceFiles(ctx context.Context, paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				if d.IsDir() {
					return nil
				}
				if filepath.Ext(path) == SourceExt {
					addFile(path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
			continue
		}

		addFile(p)
	}

	sort.Strings(files)
	return files, nil
}

package cmd

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/pseudomuto/prettify/pkg/format"
	"golang.org/x/sync/errgroup"
)

// stdinPath is the path argument that reads from standard input.
const stdinPath = "-"

type (
	// transform renders text in the given language.
	transform func(lang format.Language, text string) (string, error)

	// runOptions describes how the results of a transform are reported.
	runOptions struct {
		Write       bool
		List        bool
		Diff        bool
		Lang        format.Language
		Extensions  map[string]format.Language
		Exclude     []string
		Concurrency int
	}

	result struct {
		path     string
		mode     fs.FileMode
		original string
		rendered string
	}
)

func (r *result) changed() bool {
	return r.original != r.rendered
}

// processPath applies fn to a single file, every supported file below a
// directory, or standard input when path is "-".
func processPath(ctx context.Context, path string, opts runOptions, fn transform, in io.Reader, out io.Writer) error {
	if path == stdinPath {
		return processStdin(opts, fn, in, out)
	}

	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "failed to access path: %s", path)
	}

	files := []string{path}
	if info.IsDir() {
		if files, err = collectFiles(path, opts); err != nil {
			return err
		}
	}

	results, err := processFiles(ctx, files, opts, fn)
	if err != nil {
		return err
	}

	return report(results, opts, out)
}

func processStdin(opts runOptions, fn transform, in io.Reader, out io.Writer) error {
	if opts.Lang == "" {
		return errors.New("--lang is required when reading from stdin")
	}
	if opts.Write || opts.List {
		return errors.New("--write and --list cannot be used with stdin")
	}

	content, err := io.ReadAll(in)
	if err != nil {
		return errors.Wrap(err, "failed to read stdin")
	}

	rendered, err := fn(opts.Lang, strings.TrimSpace(string(content)))
	if err != nil {
		return errors.Wrap(err, "failed to process stdin")
	}

	return report([]*result{{path: "<stdin>", original: string(content), rendered: rendered + "\n"}}, opts, out)
}

// collectFiles recursively walks dir and returns every file with a known
// language in lexicographical order. A forced language only keeps the files
// whose extension maps to it. Entries matching an exclude pattern are skipped,
// directories with everything below them.
func collectFiles(dir string, opts runOptions) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if path != dir && excluded(dir, path, opts.Exclude) {
			slog.Debug("skipping excluded path", "path", path)
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		if lang, ok := format.DetectLanguage(path, opts.Extensions); ok && (opts.Lang == "" || lang == opts.Lang) {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to walk directory: %s", dir)
	}

	if len(files) == 0 {
		return nil, errors.Errorf("no supported files found in directory: %s", dir)
	}

	sort.Strings(files)
	return files, nil
}

// excluded reports whether path, relative to root, matches any of patterns.
// Patterns are validated before the walk starts.
func excluded(root, path string, patterns []string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}

	rel = filepath.ToSlash(rel)
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}

	return false
}

// languageFor returns the forced language, or detects it from the extension of
// path.
func languageFor(path string, opts runOptions) (format.Language, bool) {
	if opts.Lang != "" {
		return opts.Lang, true
	}

	return format.DetectLanguage(path, opts.Extensions)
}

// processFiles runs fn over files concurrently. Results keep the order of files.
func processFiles(ctx context.Context, files []string, opts runOptions, fn transform) ([]*result, error) {
	results := make([]*result, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Concurrency, 1))

	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res, err := processFile(path, opts, fn)
			if err != nil {
				return err
			}

			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func processFile(path string, opts runOptions, fn transform) (*result, error) {
	lang, ok := languageFor(path, opts)
	if !ok {
		return nil, errors.Errorf("cannot detect the language of %s, use --lang", path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to access path: %s", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read file: %s", path)
	}

	res := &result{path: path, mode: info.Mode().Perm(), original: string(content)}

	text := strings.TrimSpace(res.original)
	if text != "" {
		rendered, err := fn(lang, text)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to process file: %s", path)
		}
		res.rendered = rendered + "\n"
	}

	slog.Debug("processed file", "path", path, "lang", lang, "changed", res.changed())
	return res, nil
}

// report writes results back, lists changed files, prints diffs, or prints the
// rendered content, depending on opts.
func report(results []*result, opts runOptions, out io.Writer) error {
	listed := color.New(color.FgYellow)

	for _, res := range results {
		if opts.Write && res.changed() {
			if err := os.WriteFile(res.path, []byte(res.rendered), res.mode); err != nil {
				return errors.Wrapf(err, "failed to write formatted content to file: %s", res.path)
			}
		}

		if opts.List && res.changed() {
			if _, err := listed.Fprintln(out, res.path); err != nil {
				return errors.Wrap(err, "failed to write formatted content to output")
			}
		}

		if opts.Diff && res.changed() {
			if err := writeDiff(out, res); err != nil {
				return err
			}
		}

		if opts.Write || opts.List || opts.Diff {
			continue
		}

		if _, err := fmt.Fprint(out, res.rendered); err != nil {
			return errors.Wrap(err, "failed to write formatted content to output")
		}
	}

	return nil
}

func writeDiff(out io.Writer, res *result) error {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(res.original),
		B:        difflib.SplitLines(res.rendered),
		FromFile: res.path,
		ToFile:   res.path + " (formatted)",
		Context:  3,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to diff file: %s", res.path)
	}

	_, err = io.WriteString(out, diff)
	return err
}

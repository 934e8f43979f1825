package main

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sourcegraph/conc/pool"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/t14raptor/go-fast-eiod/analysis"
	"github.com/t14raptor/go-fast-eiod/ast"
	"github.com/t14raptor/go-fast-eiod/config"
	"github.com/t14raptor/go-fast-eiod/parser"
	"github.com/t14raptor/go-fast-eiod/report"
	"github.com/t14raptor/go-fast-eiod/shift"
)

var sourceExts = []string{".js", ".mjs", ".cjs"}

func analyzeCmd() *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Aliases:   []string{"a"},
		Usage:     "Analyze files or directories",
		ArgsUsage: "[paths...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, json, markdown",
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"j"},
				Usage:   "Files analyzed concurrently (0 = number of CPUs)",
			},
			&cli.BoolFlag{
				Name:  "shift",
				Usage: "Read Shift-format JSON trees instead of JavaScript source",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
		},
		Action: runAnalyze,
	}
}

func runAnalyze(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	if c.IsSet("format") {
		cfg.Output.Format = c.String("format")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.Bool("no-color") {
		cfg.Output.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	paths := c.Args().Slice()
	if len(paths) == 0 {
		paths = []string{"."}
	}
	files, err := collectFiles(paths, cfg, c.Bool("shift"))
	if err != nil {
		return err
	}

	log := logger(c)
	log.Debug("analyzing", zap.Int("files", len(files)), zap.Int("workers", cfg.Workers))

	a := &fileAnalyzer{
		cfg:      cfg,
		analyzer: analysis.New(append(cfg.AnalyzerOptions(), analysis.WithLogger(log))...),
		shift:    c.Bool("shift"),
		log:      log,
	}
	results := a.analyzeFiles(files)

	r := &report.Report{Results: results, Colored: cfg.Output.Color && !color.NoColor}
	if err := r.Render(c.App.Writer, report.ParseFormat(cfg.Output.Format)); err != nil {
		return err
	}
	if report.Summarize(results).Failed > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

// collectFiles expands directories into the analyzable files below them.
// Files named explicitly are kept whatever their extension.
func collectFiles(paths []string, cfg *config.Config, shiftInput bool) ([]string, error) {
	var files []string
	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, errors.Wrapf(err, "stat %s", root)
		}
		if !info.IsDir() {
			files = append(files, root)
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && cfg.ShouldExclude(path+string(filepath.Separator)) {
					return filepath.SkipDir
				}
				return nil
			}
			if analyzable(path, shiftInput) && !cfg.ShouldExclude(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "walk %s", root)
		}
	}
	return files, nil
}

func analyzable(path string, shiftInput bool) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if shiftInput {
		return ext == ".json"
	}
	for _, e := range sourceExts {
		if ext == e {
			return true
		}
	}
	return false
}

type fileAnalyzer struct {
	cfg      *config.Config
	analyzer *analysis.Analyzer
	shift    bool
	log      *zap.Logger
}

// analyzeFiles analyzes every file on a bounded pool. Results keep the
// order of files.
func (a *fileAnalyzer) analyzeFiles(files []string) []report.Result {
	workers := a.cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	perFile := make([][]report.Result, len(files))
	p := pool.New().WithMaxGoroutines(workers)
	for i, path := range files {
		i, path := i, path
		p.Go(func() {
			perFile[i] = a.analyzeFile(path)
		})
	}
	p.Wait()

	var results []report.Result
	for _, rs := range perFile {
		results = append(results, rs...)
	}
	return results
}

func (a *fileAnalyzer) analyzeFile(path string) []report.Result {
	src, program, err := load(path, a.shift)
	if err != nil {
		a.log.Debug("load failed", zap.String("path", path), zap.Error(err))
		return []report.Result{{Path: path, Body: report.ProgramBody, Err: err}}
	}

	value, err := a.analyzer.Analyze(program.Body)
	results := []report.Result{{Path: path, Body: report.ProgramBody, Line: 1, Value: value, Err: err}}
	if !a.cfg.Analysis.FunctionBodies {
		return results
	}

	for _, body := range analysis.FunctionBodies(program) {
		if len(body.List) == 0 {
			continue
		}
		value, err := a.analyzer.Analyze(body.List)
		results = append(results, report.Result{
			Path:  path,
			Body:  body.Name,
			Line:  lineOf(src, body.Idx),
			Value: value,
			Err:   err,
		})
	}
	return results
}

// load reads path and lowers it to a program, from JavaScript source or
// from a Shift JSON tree.
func load(path string, shiftInput bool) ([]byte, *ast.Program, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}
	var program *ast.Program
	if shiftInput {
		program, err = shift.Decode(src)
	} else {
		program, err = parser.ParseFile(string(src))
	}
	if err != nil {
		return nil, nil, err
	}
	return src, program, nil
}

// lineOf returns the 1-based line of idx in src, or 0 when idx carries no
// position or lies outside src.
func lineOf(src []byte, idx ast.Idx) int {
	offset := int(idx) - 1
	if offset < 0 || offset > len(src) {
		return 0
	}
	return bytes.Count(src[:offset], []byte("\n")) + 1
}

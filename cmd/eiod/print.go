package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/t14raptor/go-fast-eiod/analysis"
	"github.com/t14raptor/go-fast-eiod/generator"
	"github.com/t14raptor/go-fast-eiod/parser"
)

const sampleSource = `foo: {
    for (let i = 0; i < 2; ++i) {
        break foo;
    }
    42;
}`

func printCmd() *cli.Command {
	return &cli.Command{
		Name:      "print",
		Usage:     "Print the statement tree of a file as JavaScript",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "shift",
				Usage: "Read a Shift-format JSON tree instead of JavaScript source",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("print takes exactly one file")
			}
			_, program, err := load(c.Args().First(), c.Bool("shift"))
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(c.App.Writer, generator.Generate(program))
			return err
		},
	}
}

func sampleCmd() *cli.Command {
	return &cli.Command{
		Name:  "sample",
		Usage: "Analyze the built-in labeled-block program",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "show",
				Usage: "Print the program before the result",
			},
		},
		Action: func(c *cli.Context) error {
			program, err := parser.ParseFile(sampleSource)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			a := analysis.New(append(cfg.AnalyzerOptions(), analysis.WithLogger(logger(c)))...)
			value, err := a.Analyze(program.Body)
			if err != nil {
				return err
			}
			if c.Bool("show") {
				fmt.Fprint(c.App.Writer, generator.Generate(program))
			}
			_, err = fmt.Fprintln(c.App.Writer, value)
			return err
		},
	}
}

// Command eiod reports whether JavaScript statement lists end in an
// iteration or declaration statement.
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/t14raptor/go-fast-eiod/config"
)

var version = "dev"

func newApp() *cli.App {
	return &cli.App{
		Name:     "eiod",
		Usage:    "Evaluate EndsInIterationOrDeclaration over JavaScript programs",
		Version:  version,
		Metadata: make(map[string]interface{}),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (TOML, YAML, or JSON)",
				EnvVars: []string{"EIOD_CONFIG"},
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Trace the analysis at debug level",
			},
		},
		Before: func(c *cli.Context) error {
			var (
				log *zap.Logger
				err error
			)
			if c.Bool("verbose") {
				log, err = zap.NewDevelopment()
			} else {
				log, err = zap.NewProduction()
			}
			if err != nil {
				return errors.Wrap(err, "create logger")
			}
			c.App.Metadata["logger"] = log
			return nil
		},
		After: func(c *cli.Context) error {
			if log, ok := c.App.Metadata["logger"].(*zap.Logger); ok {
				_ = log.Sync()
			}
			return nil
		},
		Commands: []*cli.Command{
			analyzeCmd(),
			printCmd(),
			sampleCmd(),
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func logger(c *cli.Context) *zap.Logger {
	if log, ok := c.App.Metadata["logger"].(*zap.Logger); ok {
		return log
	}
	return zap.NewNop()
}

// loadConfig reads --config when given, otherwise the first eiod config
// file in the working directory.
func loadConfig(c *cli.Context) (*config.Config, error) {
	if path := c.String("config"); path != "" {
		return config.Load(path)
	}
	return config.LoadOrDefault()
}

package main

import (
	"log"
	"os"

	"github.com/nvnieuwk/svvcf/svvcf_api"
	cli "github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	app := &cli.App{
		Name:            "svvcf",
		Usage:           "A tool to write scored diploid structural variant candidates as VCF",
		HideHelpCommand: true,
		Version:         "0.1.0dev",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:     "nodate",
				Aliases:  []string{"nd"},
				Usage:    "Don't add the current date to the output VCF header",
				Category: "Optional",
			},
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Usage:    "The location to the output VCF file, defaults to stdout. Paths ending in .gz are BGZF compressed",
				Category: "Optional",
			},
			&cli.BoolFlag{
				Name:     "rna",
				Usage:    "Write the RNA fusion fields and filters",
				Category: "Optional",
			},
			&cli.BoolFlag{
				Name:     "max-depth-filter",
				Aliases:  []string{"md"},
				Usage:    "Declare the maximum depth filter in the output header",
				Category: "Optional",
			},
			&cli.BoolFlag{
				Name:     "verbose",
				Aliases:  []string{"v"},
				Usage:    "Log every written candidate",
				Category: "Optional",
			},
			&cli.StringFlag{
				Name:     "config",
				Aliases:  []string{"c"},
				Usage:    "Configuration file (YAML) with the filter labels, thresholds and sample names",
				Required: true,
				Category: "Required",
			},
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Usage:    "The scored candidates (YAML documents, optionally BGZF compressed)",
				Required: true,
				Category: "Required",
			},
		},
		Action: func(Cctx *cli.Context) error {
			logger, err := newLogger(Cctx.Bool("verbose"))
			if err != nil {
				return cli.Exit("Failed to create the logger: "+err.Error(), 1)
			}
			defer logger.Sync()

			config, err := svvcf_api.ReadConfig(Cctx.String("config"))
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			logger.Debug("loaded config",
				zap.Strings("samples", config.Samples),
				zap.Any("filters", config.Filters),
				zap.Any("alignment", config.Alignment),
			)

			params := svvcf_api.ExecuteParams{
				Input:  Cctx.String("input"),
				Output: Cctx.String("output"),
				NoDate: Cctx.Bool("nodate"),
				Options: svvcf_api.WriterOptions{
					IsRNA:            Cctx.Bool("rna"),
					IsMaxDepthFilter: Cctx.Bool("max-depth-filter"),
				},
			}
			if err := svvcf_api.Execute(Cctx.Context, logger, config, params); err != nil {
				return cli.Exit(err.Error(), 1)
			}
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.New(os.Stderr, "", 0).Fatal(err)
	}
}

// Create the stderr logger, verbose lowers the level to debug
func newLogger(verbose bool) (*zap.Logger, error) {
	logConf := zap.NewDevelopmentConfig()
	logConf.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	if verbose {
		logConf.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return logConf.Build()
}

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func prefixFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "prefix",
		Aliases: []string{"p"},
		Usage:   "Prefix attached before '_' (empty for none)",
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "minid",
		Usage: "Generate and inspect compact 26-character identifiers",
		Commands: []*cli.Command{
			{
				Name:  "new",
				Usage: "Generate new identifiers",
				Flags: []cli.Flag{
					prefixFlag(),
					&cli.IntFlag{
						Name:    "count",
						Aliases: []string{"n"},
						Usage:   "Number of identifiers to generate",
						Value:   1,
					},
				},
				Action: newCommand,
			},
			{
				Name:      "encode",
				Usage:     "Encode a UUID",
				ArgsUsage: "<uuid>",
				Flags:     []cli.Flag{prefixFlag()},
				Action:    encodeCommand,
			},
			{
				Name:      "decode",
				Usage:     "Decode an identifier back to its UUID",
				ArgsUsage: "<id>",
				Flags: []cli.Flag{
					prefixFlag(),
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output as JSON",
					},
				},
				Action: decodeCommand,
			},
			{
				Name:   "schema",
				Usage:  "Print the JSON Schema for identifier strings",
				Flags:  []cli.Flag{prefixFlag()},
				Action: schemaCommand,
			},
			{
				Name:      "validate",
				Usage:     "Validate a JSON value against the identifier schema",
				ArgsUsage: "<json>",
				Flags:     []cli.Flag{prefixFlag()},
				Action:    validateCommand,
			},
		},
	}
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Errorf("failed to set up logger: %w", err))
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)
	sugar := logger.Sugar()

	if err := newApp().Run(os.Args); err != nil {
		sugar.Fatalf("minid: %v", err)
	}
}

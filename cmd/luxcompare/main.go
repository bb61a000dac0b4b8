// luxcompare serves the price comparison API and runs one-off comparisons.
//
// Usage:
//
//	luxcompare serve
//	luxcompare compare --brand Chanel "Classic Flap Bag Medium"
//	luxcompare identify https://www.chanel.com/ja_JP/...
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:    "luxcompare",
		Usage:   "compare luxury goods prices across the US, Hong Kong, Japan and France",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a config file (yaml, json or toml)",
				EnvVars: []string{"LUXCOMPARE_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			serveCommand(),
			compareCommand(),
			identifyCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/dave-wwg/load-secrets-action/clicommand"
	"github.com/dave-wwg/load-secrets-action/version"
)

func main() {
	app := cli.NewApp()
	app.Name = "load-secrets-action"
	app.Version = version.Version()
	app.Usage = "Load 1Password secrets into a CI pipeline"
	app.Commands = []cli.Command{
		clicommand.RunCommand,
		clicommand.UnsetCommand,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

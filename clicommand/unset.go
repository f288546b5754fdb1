package clicommand

import (
	"context"
	"os"

	"github.com/sethvargo/go-githubactions"
	"github.com/urfave/cli"

	"github.com/dave-wwg/load-secrets-action/env"
	"github.com/dave-wwg/load-secrets-action/logger"
	"github.com/dave-wwg/load-secrets-action/pipeline"
	"github.com/dave-wwg/load-secrets-action/secrets"
)

const unsetHelpDescription = `Usage:

    load-secrets-action unset [options...]

Description:

Clears the environment variables exported by a previous run. The names are
read from ` + secrets.EnvManagedVariables + ` and each one is exported again
with an empty value.

Example:

    $ load-secrets-action unset`

type UnsetConfig struct {
	GlobalConfig
}

var UnsetCommand = cli.Command{
	Name:        "unset",
	Usage:       "Unset the secrets exported by a previous run",
	Description: unsetHelpDescription,
	Flags:       flatten(globalFlags),
	Action: newAction(func(ctx context.Context, c *cli.Context, l logger.Logger, cfg *UnsetConfig) error {
		environment := env.FromSlice(os.Environ())
		sink := pipeline.NewGitHubSink(githubactions.New(), environment)

		loader := &secrets.Loader{
			Env:    environment,
			Sink:   sink,
			Logger: l,
		}
		loader.UnsetPrevious()

		return nil
	}),
}

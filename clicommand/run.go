package clicommand

import (
	"context"
	"fmt"
	"os"

	"github.com/sethvargo/go-githubactions"
	"github.com/urfave/cli"

	"github.com/dave-wwg/load-secrets-action/env"
	"github.com/dave-wwg/load-secrets-action/logger"
	"github.com/dave-wwg/load-secrets-action/op"
	"github.com/dave-wwg/load-secrets-action/pipeline"
	"github.com/dave-wwg/load-secrets-action/process"
	"github.com/dave-wwg/load-secrets-action/secrets"
)

const runHelpDescription = `Usage:

    load-secrets-action run [options...]

Description:

Loads 1Password secrets into the current pipeline run. Environment variables
holding op:// secret references are resolved and re-exported (or set as step
outputs) under the same names, masked from log output. If OP_VAULT_ITEM
references a whole vault item, every field of that item is published instead.

Authentication uses either Connect credentials (OP_CONNECT_HOST and
OP_CONNECT_TOKEN) or a service account token (OP_SERVICE_ACCOUNT_TOKEN).

Example:

    $ OP_SERVICE_ACCOUNT_TOKEN=ops_... load-secrets-action run --export-env`

type RunConfig struct {
	GlobalConfig

	ExportEnv     bool `cli:"export-env"`
	UnsetPrevious bool `cli:"unset-previous"`
}

var RunCommand = cli.Command{
	Name:        "run",
	Usage:       "Load secrets into the pipeline environment or step outputs",
	Description: runHelpDescription,
	Flags: flatten(globalFlags, []cli.Flag{
		cli.BoolTFlag{
			Name:   "export-env",
			Usage:  "Export resolved secrets as environment variables rather than step outputs",
			EnvVar: "INPUT_EXPORT_ENV",
		},
		cli.BoolFlag{
			Name:   "unset-previous",
			Usage:  "Unset the variables exported by a previous load before loading",
			EnvVar: "INPUT_UNSET_PREVIOUS",
		},
	}),
	Action: newAction(func(ctx context.Context, c *cli.Context, l logger.Logger, cfg *RunConfig) error {
		environment := env.FromSlice(os.Environ())
		sink := pipeline.NewGitHubSink(githubactions.New(), environment)
		executor := &process.ShellExecutor{Env: environment, Logger: l}

		return run(ctx, cfg, l, environment, sink, executor, func(method op.Method) (op.Reader, error) {
			return newReader(ctx, environment, method)
		})
	}),
}

func run(
	ctx context.Context,
	cfg *RunConfig,
	l logger.Logger,
	environment *env.Environment,
	sink pipeline.Sink,
	executor process.Executor,
	readerFor func(op.Method) (op.Reader, error),
) error {
	loader := &secrets.Loader{
		Env:      environment,
		Sink:     sink,
		Executor: executor,
		Logger:   l,
	}

	if cfg.UnsetPrevious {
		loader.UnsetPrevious()
	}

	method, err := op.ValidateAuth(environment, sink)
	if err != nil {
		return err
	}

	reader, err := readerFor(method)
	if err != nil {
		return err
	}
	loader.Reader = reader

	return loader.LoadSecrets(ctx, cfg.ExportEnv)
}

// newReader picks the secret reference reader matching the validated
// credential set.
func newReader(ctx context.Context, environment *env.Environment, method op.Method) (op.Reader, error) {
	switch method {
	case op.MethodConnect:
		host, _ := environment.Get(op.EnvConnectHost)
		token, _ := environment.Get(op.EnvConnectToken)
		return op.NewConnectReader(host, token), nil

	case op.MethodServiceAccount:
		token, _ := environment.Get(op.EnvServiceAccountToken)
		return op.NewServiceAccountReader(ctx, token)

	default:
		return nil, fmt.Errorf("no reader for auth method %q", method)
	}
}

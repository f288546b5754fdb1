package clicommand

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/oleiade/reflections"
	"github.com/urfave/cli"

	"github.com/dave-wwg/load-secrets-action/cliconfig"
	"github.com/dave-wwg/load-secrets-action/logger"
)

var ConfigFlag = cli.StringFlag{
	Name:   "config",
	Value:  "",
	Usage:  "Path to a configuration file",
	EnvVar: "OP_LOAD_SECRETS_CONFIG",
}

var DebugFlag = cli.BoolFlag{
	Name:   "debug",
	Usage:  "Enable debug mode",
	EnvVar: "RUNNER_DEBUG",
}

var NoColorFlag = cli.BoolFlag{
	Name:   "no-color",
	Usage:  "Don't show colors in logging",
	EnvVar: "NO_COLOR",
}

type GlobalConfig struct {
	Config  string `cli:"config"`
	Debug   bool   `cli:"debug"`
	NoColor bool   `cli:"no-color"`
}

var globalFlags = []cli.Flag{
	ConfigFlag,
	DebugFlag,
	NoColorFlag,
}

func DefaultConfigFilePaths() (paths []string) {
	paths = []string{
		"$HOME/.op/load-secrets-action.cfg",
	}

	// Also check to see if there's a load-secrets-action.cfg in the folder
	// that the binary is running in.
	pathToBinary, err := filepath.Abs(filepath.Dir(os.Args[0]))
	if err == nil {
		pathToRelativeConfig := filepath.Join(pathToBinary, "load-secrets-action.cfg")
		paths = append([]string{pathToRelativeConfig}, paths...)
	}

	return paths
}

// CreateLogger builds the logger for a command from the global options on its
// config struct.
func CreateLogger(cfg any) logger.Logger {
	l := logger.NewTextLogger()

	if debug, err := reflections.GetField(cfg, "Debug"); debug == true && err == nil {
		l.SetLevel(logger.DEBUG)
	}

	if noColor, err := reflections.GetField(cfg, "NoColor"); noColor == true && err == nil {
		l.Colors = false
	}

	return l
}

type commandAction[T any] func(ctx context.Context, c *cli.Context, l logger.Logger, cfg *T) error

// newAction wraps a command implementation with config loading and logger
// creation, so each command's Action stays a one-liner.
func newAction[T any](action commandAction[T]) func(*cli.Context) error {
	return func(c *cli.Context) error {
		ctx := context.Background()
		cfg := new(T)

		loader := cliconfig.Loader{
			CLI:                    c,
			Config:                 cfg,
			DefaultConfigFilePaths: DefaultConfigFilePaths(),
		}
		warnings, err := loader.Load()
		if err != nil {
			fmt.Fprintf(c.App.ErrWriter, "%s\n", err)
			return err
		}

		l := CreateLogger(cfg)

		// Now that we have a logger, log out the warnings that loading config
		// generated
		for _, warning := range warnings {
			l.Warn("%s", warning)
		}

		return action(ctx, c, l, cfg)
	}
}

func flatten(flagSets ...[]cli.Flag) []cli.Flag {
	length := 0
	for _, flagSet := range flagSets {
		length += len(flagSet)
	}

	flat := make([]cli.Flag, 0, length)
	for _, flagSet := range flagSets {
		flat = append(flat, flagSet...)
	}

	return flat
}

// Package secrets orchestrates one pass of secret loading: resolve the
// secret references held in environment variables (or the fields of a whole
// vault item), publish the values into the pipeline, and record what was
// published so a later invocation can unset it again.
package secrets

import (
	"context"
	"fmt"
	"strings"

	"github.com/dave-wwg/load-secrets-action/env"
	"github.com/dave-wwg/load-secrets-action/logger"
	"github.com/dave-wwg/load-secrets-action/op"
	"github.com/dave-wwg/load-secrets-action/pipeline"
	"github.com/dave-wwg/load-secrets-action/process"
)

const (
	// EnvVaultItem names a whole vault item to load instead of scanning
	// individual secret-reference variables.
	EnvVaultItem = "OP_VAULT_ITEM"

	// EnvManagedVariables records which variable names the previous load
	// pass exported, comma-joined, for UnsetPrevious. It is overwritten by
	// each load pass and left stale after an unset pass.
	EnvManagedVariables = "OP_MANAGED_VARIABLES"
)

// Loader drives a load or unset pass. Everything it touches is injected: the
// environment store, the pipeline sink, the secret reference reader and the
// process executor.
type Loader struct {
	Env      *env.Environment
	Sink     pipeline.Sink
	Reader   op.Reader
	Executor process.Executor
	Logger   logger.Logger
}

// LoadSecrets performs one load pass. With a vault item configured it
// delegates entirely to ExtractVaultItem; otherwise it asks the op CLI for
// the managed secret variable names and resolves each one in turn.
func (l *Loader) LoadSecrets(ctx context.Context, exportEnv bool) error {
	op.SetClientInfo(l.Env)

	if ref, ok := l.Env.Get(EnvVaultItem); ok && ref != "" {
		_, err := l.ExtractVaultItem(ctx, ref, exportEnv)
		return err
	}

	out, err := l.Executor.RunAndCapture(ctx, "op env ls")
	if err != nil {
		return fmt.Errorf("listing managed environment variables: %w", err)
	}

	names := splitLines(out)
	if len(names) == 0 {
		return nil
	}

	for _, name := range names {
		l.ExtractSecret(ctx, name, exportEnv)
	}

	if exportEnv {
		// The full attempted list is recorded, even if individual names
		// resolved to nothing.
		l.Sink.ExportVariable(EnvManagedVariables, strings.Join(names, ","))
	}

	return nil
}

// ExtractSecret resolves the secret reference held in the named environment
// variable and publishes the value under the same name, masked. A missing
// variable or an empty resolution is a no-op.
func (l *Loader) ExtractSecret(ctx context.Context, name string, exportEnv bool) {
	l.Sink.Info("Populating variable: %s", name)

	ref, ok := l.Env.Get(name)
	if !ok || ref == "" {
		return
	}

	value, err := l.Reader.Read(ctx, ref)
	if err != nil {
		l.Logger.Debug("Could not resolve %s: %v", name, err)
		return
	}
	if value == "" {
		return
	}

	l.publish(name, value, exportEnv)
}

// ExtractVaultItem loads every field of the referenced vault item except the
// reserved notes field, publishing each one like ExtractSecret does. It
// returns the published field names in encounter order. A malformed item
// reference is fatal.
func (l *Loader) ExtractVaultItem(ctx context.Context, ref string, exportEnv bool) ([]string, error) {
	if err := op.ValidateItemReference(ref); err != nil {
		return nil, err
	}

	out, err := l.Executor.RunAndCapture(ctx, fmt.Sprintf("op item get %s --reveal", ref))
	if err != nil {
		return nil, fmt.Errorf("getting vault item: %w", err)
	}

	var published []string
	for _, f := range op.ParseItemFields(out) {
		if f.Name == op.FieldNotes {
			continue
		}

		l.Sink.Info("Populating variable: %s", f.Name)
		l.publish(f.Name, f.Value, exportEnv)
		published = append(published, f.Name)
	}

	if len(published) > 0 && exportEnv {
		l.Sink.ExportVariable(EnvManagedVariables, strings.Join(published, ","))
	}

	return published, nil
}

// UnsetPrevious clears every variable recorded by the previous load pass.
// Each one is exported with an empty value rather than removed; the tracking
// variable itself is left in place until the next load pass overwrites it.
func (l *Loader) UnsetPrevious() {
	managed, _ := l.Env.Get(EnvManagedVariables)
	if managed == "" {
		return
	}

	l.Sink.Info("Unsetting previous values ...")
	for _, name := range strings.Split(managed, ",") {
		l.Sink.Info("Unsetting %s", name)
		l.Sink.ExportVariable(name, "")
	}
}

func (l *Loader) publish(name, value string, exportEnv bool) {
	if exportEnv {
		l.Sink.ExportVariable(name, value)
	} else {
		l.Sink.SetOutput(name, value)
	}
	l.Sink.AddMask(value)
}

// splitLines splits command output into lines, accepting both LF and CRLF
// endings and dropping trailing blank lines.
func splitLines(out string) []string {
	out = strings.ReplaceAll(out, "\r\n", "\n")
	out = strings.TrimRight(out, "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

// Package cliconfig loads command configuration structs from urfave/cli
// flags, environment variables and optional key=value config files.
//
// It is intended for internal use by load-secrets-action only.
package cliconfig

import (
	"fmt"
	"os"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/oleiade/reflections"
	"github.com/urfave/cli"
)

type Loader struct {
	// The context that is passed when using a urfave/cli action
	CLI *cli.Context

	// The struct that the config values will be loaded into
	Config any

	// A slice of paths to files that should be used as config files
	DefaultConfigFilePaths []string

	// The file that was used when loading this configuration
	File *File
}

// Matches "arg:index" (a specific non-flag arg).
var argCLINameRE = regexp.MustCompile(`arg:(\d+)`)

// Load populates the config struct from the CLI context and any config file
// that is present, then validates it. It returns any warnings generated
// along the way.
func (l *Loader) Load() (warnings []string, err error) {
	// Try and find a config file, either passed in the command line using
	// --config, or in one of the default configuration file paths.
	if path := l.CLI.String("config"); path != "" {
		file := File{Path: path}

		// Because this file was passed in manually, we should throw an error
		// if it doesn't exist.
		if !file.Exists() {
			return warnings, fmt.Errorf("a configuration file could not be found at: %q", path)
		}
		l.File = &file
	} else {
		for _, path := range l.DefaultConfigFilePaths {
			file := File{Path: path}
			if file.Exists() {
				l.File = &file
				break
			}
		}
	}

	if l.File != nil {
		if err := l.File.Load(); err != nil {
			return warnings, fmt.Errorf("loading config file: %w", err)
		}
	}

	fields, _ := reflections.FieldsDeep(l.Config)

	for _, fieldName := range fields {
		cliName, _ := reflections.GetFieldTag(l.Config, fieldName, "cli")
		if cliName != "" {
			if err := l.setFieldValueFromCLI(fieldName, cliName); err != nil {
				return warnings, fmt.Errorf("setting config field %s: %w", fieldName, err)
			}
		}

		normalization, _ := reflections.GetFieldTag(l.Config, fieldName, "normalize")
		if normalization != "" {
			if err := l.normalizeField(fieldName, normalization); err != nil {
				return warnings, fmt.Errorf("normalizing config field %s: %w", fieldName, err)
			}
		}

		validationRules, _ := reflections.GetFieldTag(l.Config, fieldName, "validate")
		if validationRules != "" {
			label, _ := reflections.GetFieldTag(l.Config, fieldName, "label")
			if label == "" {
				if cliName != "" {
					label = cliName
				} else {
					label = fieldName
				}
			}

			if err := l.validateField(fieldName, label, validationRules); err != nil {
				return warnings, err
			}
		}
	}

	return warnings, nil
}

func (l Loader) setFieldValueFromCLI(fieldName, cliName string) error {
	fieldKind, err := reflections.GetFieldKind(l.Config, fieldName)
	if err != nil {
		return fmt.Errorf("getting the kind of struct field %q: %w", fieldName, err)
	}

	var value any

	// See if the cli option is using the arg format (arg:1)
	if argMatch := argCLINameRE.FindStringSubmatch(cliName); len(argMatch) > 0 {
		argIndex, err := strconv.Atoi(argMatch[1])
		if err != nil {
			return fmt.Errorf("converting string to int: %w", err)
		}

		// Only set the value if the args are long enough for the position to
		// exist.
		if len(l.CLI.Args()) > argIndex {
			value = l.CLI.Args()[argIndex]
		}
	} else {
		// Start by defaulting the value to whatever was provided by the
		// configuration file.
		if l.File != nil {
			if configFileValue, ok := l.File.Config[cliName]; ok {
				switch fieldKind {
				case reflect.String:
					value = configFileValue
				case reflect.Slice:
					value = strings.Split(configFileValue, ",")
				case reflect.Bool:
					value, _ = strconv.ParseBool(configFileValue)
				case reflect.Int:
					value, _ = strconv.Atoi(configFileValue)
				default:
					return fmt.Errorf("unable to convert string to type %s", fieldKind)
				}
			}
		}

		// If a value hasn't been found in a config file, but there _is_ one
		// provided by the CLI context, then use that.
		if value == nil || l.cliValueIsSet(cliName) {
			switch fieldKind {
			case reflect.String:
				value = l.CLI.String(cliName)
			case reflect.Slice:
				value = l.CLI.StringSlice(cliName)
			case reflect.Bool:
				if l.flagIsBoolT(cliName) {
					value = l.CLI.BoolT(cliName)
				} else {
					value = l.CLI.Bool(cliName)
				}
			case reflect.Int:
				value = l.CLI.Int(cliName)
			default:
				return fmt.Errorf("unable to handle type: %s", fieldKind)
			}
		}
	}

	if value != nil {
		if err := reflections.SetField(l.Config, fieldName, value); err != nil {
			return fmt.Errorf("setting value field %q to %q: %w", fieldName, value, err)
		}
	}

	return nil
}

func (l Loader) Errorf(format string, v ...any) error {
	suffix := fmt.Sprintf(" See: `%s %s --help`", l.CLI.App.Name, l.CLI.Command.Name)

	return fmt.Errorf(format+suffix, v...)
}

func (l Loader) cliValueIsSet(cliName string) bool {
	if l.CLI.IsSet(cliName) {
		return true
	}

	// cli.Context#IsSet only checks to see if the command was set via the
	// cli, not via the environment. So here we do some hacks to find out the
	// name of the EnvVar, and return true if it was set.
	for _, flag := range l.CLI.Command.Flags {
		name, _ := reflections.GetField(flag, "Name")
		envVar, _ := reflections.GetField(flag, "EnvVar")
		if name == cliName && envVar != "" {
			if envVarStr, ok := envVar.(string); ok {
				return os.Getenv(strings.TrimSpace(envVarStr)) != ""
			}
		}
	}

	return false
}

// flagIsBoolT reports whether the named flag is a cli.BoolTFlag, which
// defaults to true and must be read with BoolT.
func (l Loader) flagIsBoolT(cliName string) bool {
	for _, flag := range l.CLI.Command.Flags {
		if f, ok := flag.(cli.BoolTFlag); ok && f.Name == cliName {
			return true
		}
	}
	return false
}

func (l Loader) fieldValueIsEmpty(fieldName string) bool {
	// We need to use the field kind to determine the type of empty test.
	value, _ := reflections.GetField(l.Config, fieldName)
	fieldKind, _ := reflections.GetFieldKind(l.Config, fieldName)

	switch fieldKind {
	case reflect.String:
		return value == ""
	case reflect.Slice:
		return reflect.ValueOf(value).Len() == 0
	case reflect.Bool:
		return value == false
	case reflect.Int:
		return value == 0
	default:
		panic(fmt.Sprintf("Can't determine empty-ness for field type %s", fieldKind))
	}
}

func (l Loader) validateField(fieldName, label, validationRules string) error {
	for _, rule := range strings.Split(validationRules, ",") {
		switch rule {
		case "required":
			if l.fieldValueIsEmpty(fieldName) {
				return l.Errorf("Missing %s.", label)
			}

		default:
			return fmt.Errorf("unknown config validation rule %q", rule)
		}
	}

	return nil
}

func (l Loader) normalizeField(fieldName, normalization string) error {
	if normalization != "list" {
		return fmt.Errorf("unknown normalization %q", normalization)
	}

	value, _ := reflections.GetField(l.Config, fieldName)
	fieldKind, _ := reflections.GetFieldKind(l.Config, fieldName)

	if fieldKind != reflect.Slice {
		return fmt.Errorf("list normalization only works on slice fields")
	}

	valueAsSlice, ok := value.([]string)
	if !ok {
		return nil
	}

	normalizedSlice := []string{}
	for _, value := range valueAsSlice {
		// Split values with commas into fields
		for _, normalized := range strings.Split(value, ",") {
			normalized = strings.TrimSpace(normalized)
			if normalized == "" {
				continue
			}
			normalizedSlice = append(normalizedSlice, normalized)
		}
	}

	return reflections.SetField(l.Config, fieldName, normalizedSlice)
}

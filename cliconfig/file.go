package cliconfig

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type File struct {
	// The path to the file
	Path string

	// A map of key/values that was loaded from the file
	Config map[string]string
}

func (f *File) Load() error {
	f.Config = map[string]string{}

	absolutePath, err := f.AbsolutePath()
	if err != nil {
		return fmt.Errorf("getting absolute path for %s: %w", f.Path, err)
	}

	file, err := os.Open(absolutePath)
	if err != nil {
		return fmt.Errorf("opening file %s: %w", f.Path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return fmt.Errorf("parsing config line %d: no `=` found in %q", lineNum, line)
		}

		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		// Pull quotes off the edges
		if strings.Count(value, `"`) == 2 || strings.Count(value, "'") == 2 {
			value = strings.Trim(value, `"'`)
		}

		f.Config[key] = value
	}

	return scanner.Err()
}

func (f File) AbsolutePath() (string, error) {
	path := f.Path

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[2:])
	}

	return filepath.Abs(os.ExpandEnv(path))
}

func (f File) Exists() bool {
	// If getting the absolute path fails, we can just assume it doesn't
	// exist...probably...
	absolutePath, err := f.AbsolutePath()
	if err != nil {
		return false
	}

	_, err = os.Stat(absolutePath)
	return err == nil
}

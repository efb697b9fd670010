package config

import (
	// standard
	"errors"
	"fmt"
	"io"
	"os"
	"time"
	// external
	"gopkg.in/yaml.v3"
)

// fileOptions mirrors the options which may be given in a -config file.
// Unset keys are nil.
type fileOptions struct {
	Terms    *int64   `yaml:"terms"`
	Threads  *int     `yaml:"threads"`
	Pause    *string  `yaml:"pause"`
	Output   *string  `yaml:"output"`
	Interval *float64 `yaml:"interval"`
	Lock     *bool    `yaml:"lock"`
	Columns  *int     `yaml:"columns"`
	Debug    *bool    `yaml:"debug"`
}

// applyFile loads the YAML file at path into opts. Options present in
// explicit were given on the command line and keep their value.
func applyFile(opts *Options, path string, explicit map[string]bool) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("Can't open %q: %w", path, err)
	}
	defer file.Close()

	var fo fileOptions
	dec := yaml.NewDecoder(file)
	dec.KnownFields(true)
	if err := dec.Decode(&fo); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%s: %w", path, err)
	}

	if fo.Terms != nil && !explicit["n"] {
		opts.Terms = *fo.Terms
	}
	if fo.Threads != nil && !explicit["threads"] {
		opts.Threads = *fo.Threads
	}
	if fo.Pause != nil && !explicit["pause"] {
		d, err := time.ParseDuration(*fo.Pause)
		if err != nil {
			return fmt.Errorf("%s: pause: %w", path, err)
		}
		opts.Pause = d
	}
	if fo.Output != nil && !explicit["o"] {
		opts.OutputFilePath = *fo.Output
	}
	if fo.Interval != nil && !explicit["interval"] {
		opts.Interval = *fo.Interval
	}
	if fo.Lock != nil && !explicit["lock"] {
		opts.LockOnUpdate = *fo.Lock
	}
	if fo.Columns != nil && !explicit["columns"] {
		opts.Columns = *fo.Columns
	}
	if fo.Debug != nil && !explicit["debug"] {
		opts.Debug = *fo.Debug
	}
	return nil
}

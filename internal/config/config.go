// Package config collects command line flags and environment variables into
// a validated Config.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/vegasq/flatcat/output"
	"github.com/vegasq/flatcat/reader"
)

// EnvPrefix prefixes every environment variable that backs a flag.
const EnvPrefix = "FLATCAT_"

// DefaultInput is read when no file argument is given.
const DefaultInput = "data"

// AutoWidth asks the table formatter to size cells from the terminal.
const AutoWidth = -1

// Validation errors.
var (
	ErrNegativeLimit   = errors.New("--limit must be non-negative")
	ErrSchemaWithWhere = errors.New("--schema and --where cannot be used together")
	ErrTooManyArgs     = errors.New("expected at most one input argument (flags must come before the file argument)")
	ErrInvalidWidth    = errors.New("--max-width must be -1 (auto), 0 (unlimited) or positive")
)

// Config is the resolved configuration of one run.
type Config struct {
	Input        string
	InputFormat  reader.Format
	OutputFormat string
	Where        string
	Limit        int
	Schema       bool
	SkipInvalid  bool
	Safe         bool
	MaxWidth     int
	LogLevel     string
	LogFormat    string
}

// Default returns the configuration used when no flag is set.
func Default() Config {
	return Config{
		Input:        DefaultInput,
		InputFormat:  reader.FormatAuto,
		OutputFormat: output.FormatQuoted,
		MaxWidth:     AutoWidth,
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

func env(name string) string {
	return EnvPrefix + name
}

// Flags returns the command line flags understood by FromContext.
func Flags() []cli.Flag {
	d := Default()
	return []cli.Flag{
		cli.StringFlag{
			Name:   "format, f",
			Value:  d.OutputFormat,
			Usage:  "output format: " + strings.Join(output.Formats, ", "),
			EnvVar: env("FORMAT"),
		},
		cli.StringFlag{
			Name:   "input-format, i",
			Value:  string(d.InputFormat),
			Usage:  "input format: auto, json, jsonl, parquet",
			EnvVar: env("INPUT_FORMAT"),
		},
		cli.StringFlag{
			Name:   "where, w",
			Usage:  "keep records matching an expression (e.g. \"user.age > 30 AND tags.0 = 'go'\")",
			EnvVar: env("WHERE"),
		},
		cli.IntFlag{
			Name:   "limit, n",
			Usage:  "keep the first N records after filtering (0 = unlimited)",
			EnvVar: env("LIMIT"),
		},
		cli.BoolFlag{
			Name:   "schema",
			Usage:  "describe the columns instead of printing data",
			EnvVar: env("SCHEMA"),
		},
		cli.BoolFlag{
			Name:   "skip-invalid",
			Usage:  "skip records that are not objects or arrays instead of failing",
			EnvVar: env("SKIP_INVALID"),
		},
		cli.BoolFlag{
			Name:   "safe",
			Usage:  "guard csv cells against spreadsheet formula injection",
			EnvVar: env("SAFE"),
		},
		cli.IntFlag{
			Name:   "max-width",
			Value:  d.MaxWidth,
			Usage:  "truncate table cells to this width (-1 = fit terminal, 0 = unlimited)",
			EnvVar: env("MAX_WIDTH"),
		},
		cli.StringFlag{
			Name:   "log-level",
			Value:  d.LogLevel,
			Usage:  "log level: debug, info, warn, error",
			EnvVar: env("LOG_LEVEL"),
		},
		cli.StringFlag{
			Name:   "log-format",
			Value:  d.LogFormat,
			Usage:  "log format: text, json",
			EnvVar: env("LOG_FORMAT"),
		},
		cli.BoolFlag{
			Name:   "debug, d",
			Usage:  "shortcut for --log-level debug",
			EnvVar: env("DEBUG"),
		},
	}
}

// FromContext builds a Config from parsed flags and validates it.
func FromContext(c *cli.Context) (Config, error) {
	cfg := Default()

	if c.NArg() > 1 {
		return cfg, ErrTooManyArgs
	}
	if c.NArg() == 1 {
		cfg.Input = c.Args().First()
	}

	inputFormat, err := reader.ParseFormat(c.String("input-format"))
	if err != nil {
		return cfg, err
	}
	cfg.InputFormat = inputFormat

	cfg.OutputFormat = strings.ToLower(c.String("format"))
	cfg.Where = c.String("where")
	cfg.Limit = c.Int("limit")
	cfg.Schema = c.Bool("schema")
	cfg.SkipInvalid = c.Bool("skip-invalid")
	cfg.Safe = c.Bool("safe")
	cfg.MaxWidth = c.Int("max-width")
	cfg.LogLevel = c.String("log-level")
	cfg.LogFormat = c.String("log-format")
	if c.Bool("debug") {
		cfg.LogLevel = "debug"
	}

	return cfg, cfg.Validate()
}

// Validate checks flag values and flag combinations.
func (c Config) Validate() error {
	if c.Limit < 0 {
		return fmt.Errorf("%w, got %d", ErrNegativeLimit, c.Limit)
	}
	if c.Schema && c.Where != "" {
		return ErrSchemaWithWhere
	}
	if c.MaxWidth < AutoWidth {
		return fmt.Errorf("%w, got %d", ErrInvalidWidth, c.MaxWidth)
	}
	if !isOutputFormat(c.OutputFormat) {
		return fmt.Errorf("unsupported format '%s' (supported formats: %s)", c.OutputFormat, strings.Join(output.Formats, ", "))
	}
	if _, err := reader.ParseFormat(string(c.InputFormat)); err != nil {
		return err
	}
	if c.Input == "" {
		return errors.New("input path must not be empty")
	}
	return nil
}

func isOutputFormat(name string) bool {
	for _, f := range output.Formats {
		if f == name {
			return true
		}
	}
	return false
}

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/vegasq/flatcat/internal/config"
	"github.com/vegasq/flatcat/internal/logging"
	"github.com/vegasq/flatcat/internal/pipeline"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	stdout := bufio.NewWriter(os.Stdout)
	err := newApp(stdout).Run(os.Args)
	if flushErr := stdout.Flush(); err == nil && flushErr != nil {
		err = fmt.Errorf("error writing output: %w", flushErr)
	}
	if err != nil {
		reportError(err)
		os.Exit(1)
	}
}

func newApp(stdout io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "flatcat"
	app.Usage = "flatten an array of JSON records into a CSV table"
	app.UsageText = "flatcat [options] [file|glob|-]\n\n" +
		"   IMPORTANT: All flags must come BEFORE the file argument.\n\n" +
		"   Examples:\n" +
		"     flatcat                                  # reads ./data\n" +
		"     flatcat records.json\n" +
		"     flatcat -f csv --safe records.jsonl.gz\n" +
		"     flatcat --where \"user.age > 30\" 'logs/*.json'\n" +
		"     flatcat -f table --schema events.parquet\n" +
		"     cat records.json | flatcat -"
	app.Version = version
	app.Flags = config.Flags()
	app.Action = func(c *cli.Context) error {
		cfg, err := config.FromContext(c)
		if err != nil {
			return err
		}
		logging.Init(os.Stderr, logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)
		log.WithFields(log.Fields{
			"input":  cfg.Input,
			"format": cfg.OutputFormat,
		}).Debug("starting conversion")

		return pipeline.New(cfg, stdout, log.StandardLogger()).Run()
	}
	return app
}

func reportError(err error) {
	log.Errorf("Error: %v", err)
	if errors.Is(err, fs.ErrNotExist) {
		log.Error("Please check the file path and try again.")
	}
}

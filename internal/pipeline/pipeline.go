// Package pipeline runs one conversion: load, flatten, filter, collect
// columns and write.
package pipeline

import (
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/vegasq/flatcat/flatten"
	"github.com/vegasq/flatcat/internal/config"
	"github.com/vegasq/flatcat/internal/query"
	"github.com/vegasq/flatcat/internal/termsize"
	"github.com/vegasq/flatcat/output"
	"github.com/vegasq/flatcat/reader"
	"github.com/vegasq/flatcat/schema"
)

// minCellWidth bounds terminal-derived cell truncation from below.
const minCellWidth = 8

// cellPadding is the border and padding tablewriter adds per column.
const cellPadding = 3

// Pipeline connects the reader, flattener, filter and formatter of one run.
type Pipeline struct {
	cfg config.Config
	out io.Writer
	log log.FieldLogger

	// termWidth reports the width of the terminal behind out.
	termWidth func() (int, bool)
}

// New creates a Pipeline writing to out. Diagnostics go to logger.
func New(cfg config.Config, out io.Writer, logger log.FieldLogger) *Pipeline {
	return &Pipeline{
		cfg: cfg,
		out: out,
		log: logger,
		termWidth: func() (int, bool) {
			return termsize.Width(os.Stdout.Fd())
		},
	}
}

// Run converts the configured input and writes the result.
func (p *Pipeline) Run() error {
	var filter query.Expression
	if p.cfg.Where != "" {
		expr, err := query.Parse(p.cfg.Where)
		if err != nil {
			return fmt.Errorf("invalid --where expression: %w", err)
		}
		filter = expr
	}

	values, err := reader.ReadMultipleFiles(p.cfg.Input, p.cfg.InputFormat)
	if err != nil {
		return err
	}
	p.log.WithFields(log.Fields{
		"input":   p.cfg.Input,
		"records": len(values),
	}).Debug("loaded records")

	records, err := p.flattenAll(values)
	if err != nil {
		return err
	}

	if filter != nil {
		records = query.Apply(records, filter)
		p.log.WithField("records", len(records)).Debug("applied filter")
	}

	if p.cfg.Limit > 0 && len(records) > p.cfg.Limit {
		records = records[:p.cfg.Limit]
	}

	table := p.table(records)
	p.log.WithField("columns", len(table.Columns)).Debug("collected columns")

	formatter, err := output.New(p.cfg.OutputFormat, p.out, output.Options{
		Safe:     p.cfg.Safe,
		MaxWidth: p.cellWidth(len(table.Columns)),
	})
	if err != nil {
		return err
	}

	if err := formatter.Format(table); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}
	return nil
}

// flattenAll flattens every value. Invalid records stop the run unless
// SkipInvalid is set, in which case they are logged and dropped.
func (p *Pipeline) flattenAll(values []flatten.Value) ([]flatten.Record, error) {
	records := make([]flatten.Record, 0, len(values))
	skipped := 0
	for i, v := range values {
		rec, err := flatten.Flatten(v)
		if err != nil {
			err = flatten.AtIndex(err, i)
			if p.cfg.SkipInvalid && errors.Is(err, flatten.ErrInvalidInput) {
				p.log.WithField("record", i).Warn(err.Error())
				skipped++
				continue
			}
			return nil, err
		}
		records = append(records, rec)
	}

	if skipped > 0 {
		p.log.WithField("skipped", skipped).Info("skipped invalid records")
	}
	return records, nil
}

func (p *Pipeline) table(records []flatten.Record) *schema.Table {
	if p.cfg.Schema {
		return schema.DescribeTable(schema.Describe(records))
	}
	return schema.NewTable(records)
}

// cellWidth resolves the table cell width. AutoWidth fits columns to the
// terminal and disables truncation when stdout is not one.
func (p *Pipeline) cellWidth(columns int) int {
	if p.cfg.MaxWidth != config.AutoWidth {
		return p.cfg.MaxWidth
	}
	if p.cfg.OutputFormat != output.FormatTable || columns == 0 {
		return 0
	}

	width, ok := p.termWidth()
	if !ok {
		return 0
	}
	w := width/columns - cellPadding
	if w < minCellWidth {
		w = minCellWidth
	}
	return w
}

package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"bmm-generator/internal/convert"
)

// Check converts a batch in memory and reports load, translation and
// reference diagnostics.
type Check struct {
	BatchOptions `embed:""`

	out io.Writer
}

// Run is called by Kong when the check command is executed.
func (c *Check) Run(logger *slog.Logger) error {
	f, err := c.load()
	if err != nil {
		return err
	}

	batch, err := c.run(f, logger)
	if batch == nil {
		return err
	}

	diags := batch.Diagnostics
	diags.Merge(convert.CheckReferences(batch))

	out := c.out
	if out == nil {
		out = os.Stdout
	}

	for _, r := range batch.Results {
		status := "ok"
		if !r.OK() {
			status = "failed"
		}

		_, _ = fmt.Fprintf(out, "%-8s %s\n", status, r.Source.Name)
	}

	for _, d := range diags.All() {
		_, _ = fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
	}

	_, _ = fmt.Fprintln(out, diags.Summary())

	if err != nil {
		return err
	}

	return diags.Error()
}

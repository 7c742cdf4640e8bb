package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"bmm-generator/internal/config"
)

// ConfigCommand groups batch file subcommands.
type ConfigCommand struct {
	Init ConfigInit `cmd:"" help:"Write an example batch file"`
}

// ConfigInit scaffolds a batch file.
type ConfigInit struct {
	Format string `help:"Batch file syntax" enum:"yaml,toml" default:"yaml"`
	Output string `help:"Destination file path (defaults to batch.<format> in the current directory)" type:"path"`
	Force  bool   `help:"Overwrite if the file already exists"`
}

// Run writes config.Template in the requested syntax.
func (c *ConfigInit) Run() error {
	syntax := config.Syntax(c.Format)

	dest := c.Output
	if dest == "" {
		dest = "batch." + c.Format
	}

	if !c.Force {
		if _, err := os.Stat(dest); err == nil {
			return errors.New("destination exists; use --force to overwrite")
		}
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", dest, err)
	}

	data, err := config.Marshal(config.Template(), syntax)
	if err != nil {
		return fmt.Errorf("marshaling batch file: %w", err)
	}

	return os.WriteFile(dest, data, 0o644)
}

// Package cmd holds the kong command tree of bmm-generator.
package cmd

// CLI is the root command.
type CLI struct {
	Config string `help:"Flags file (JSON, YAML or TOML) supplying defaults for command-line flags" type:"path" env:"BMMGEN_CONFIG"`

	Log LogOptions `embed:"" prefix:"log."`

	Convert   Convert       `cmd:"" help:"Convert the models listed in a batch file into BMM schema files"`
	Check     Check         `cmd:"" help:"Convert a batch without writing files and report diagnostics"`
	ConfigCmd ConfigCommand `cmd:"" name:"config" help:"Batch file helpers"`
}

// LogOptions configures logging.
type LogOptions struct {
	Level string `help:"Log level" default:"info" enum:"trace,debug,info,warn,error" env:"BMMGEN_LOG_LEVEL"`
	File  string `help:"Also write logs to this file" env:"BMMGEN_LOG_FILE"`
}

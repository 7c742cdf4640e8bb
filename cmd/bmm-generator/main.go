// Package main provides the CLI entrypoint for bmm-generator.
//
// bmm-generator converts UML class models into BMM schema files:
//   - Loads an ordered batch of models, later ones referencing earlier ones
//   - Translates each model into one schema that includes its predecessors
//   - Writes the schemas in ODIN (or YAML) syntax
package main

import (
	"os"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
	"github.com/joho/godotenv"

	"bmm-generator/internal/cmd"
	"bmm-generator/internal/log"
)

func main() {
	// A missing .env is fine; variables may come from the environment.
	_ = godotenv.Load()

	userFlags := cmd.FindUserFlagsFile(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := cmd.FlagsCandidatePaths(userFlags)

	var cli cmd.CLI
	ctx := kong.Parse(&cli,
		kong.Name("bmm-generator"),
		kong.Description("Convert UML class models into BMM schemas"),
		kong.UsageOnError(),
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logger, closeFiles, err := log.SetupLogger(cli.Log.Level, cli.Log.File)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() {
		for _, c := range closeFiles {
			_ = c.Close()
		}
	}()

	ctx.Bind(logger)

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

package cmd

import (
	"os"
	"path/filepath"
	"strings"
)

// FlagsFileName is the base name of flags files looked up in the working directory.
const FlagsFileName = ".bmm-generator"

// FlagsCandidatePaths builds candidate flags file paths per format. A
// user-supplied path comes first and is routed to the loader matching its
// extension; the working directory candidates follow.
func FlagsCandidatePaths(userPath string) (jsonPaths, yamlPaths, tomlPaths []string) {
	if userPath != "" {
		switch strings.ToLower(filepath.Ext(userPath)) {
		case ".yaml", ".yml":
			yamlPaths = append(yamlPaths, userPath)
		case ".toml":
			tomlPaths = append(tomlPaths, userPath)
		default:
			jsonPaths = append(jsonPaths, userPath)
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		return jsonPaths, yamlPaths, tomlPaths
	}

	base := filepath.Join(wd, FlagsFileName)
	jsonPaths = append(jsonPaths, base+".json")
	yamlPaths = append(yamlPaths, base+".yaml", base+".yml")
	tomlPaths = append(tomlPaths, base+".toml")

	return jsonPaths, yamlPaths, tomlPaths
}

// FindUserFlagsFile returns the --config value from args, falling back to
// BMMGEN_CONFIG. Flags files must be known before kong parses the arguments.
func FindUserFlagsFile(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}

		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}

	return os.Getenv("BMMGEN_CONFIG")
}

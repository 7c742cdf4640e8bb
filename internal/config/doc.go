// Package config loads batch configuration files.
//
// A configuration lists the models to convert, in dependency order, and
// where to write the schemas. YAML and TOML are accepted:
//
//	output_dir: ./bmm
//	format: odin
//	lifecycle_state: dstu
//	sources:
//	  - name: FOUNDATION
//	    path: ./models/foundation.yaml
//	  - name: CORE
//	    path: ./models/core.yaml
//
// Relative paths are resolved against the configuration file's directory.
package config

// Package config loads, validates and persists the settings of a Mapper run.
//
// Sources, lowest to highest precedence: built-in defaults, a config file
// (toml, yaml or json by extension), environment variables prefixed MAPPER_
// with dots replaced by underscores (MAPPER_COVER_OVERLAP=0.25).
//
// A validated Config converts to mapper options with Options.
package config

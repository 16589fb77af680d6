// Package config holds the generator's run configuration: where the CLDR
// document comes from, where the generated table goes, and how it is
// rendered. Every field has a default so a bare invocation regenerates the
// standard table; an optional YAML file and command-line flags override it.
package config

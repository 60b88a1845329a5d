// Package config loads soundgen's TOML configuration.
//
// Values come from built-in defaults, then the configuration file, then
// command-line flags applied by the caller. Recipes declared in the file
// are merged over the built-in sound library by name.
package config

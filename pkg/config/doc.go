// Package config loads dotprov's configuration.
//
// Layers are applied in order, later layers winning:
//
//  1. the embedded defaults (embedded/defaults.toml)
//  2. the user file, $DOTPROV_CONFIG or $XDG_CONFIG_HOME/dotprov/config.toml
//  3. DOTPROV_<SECTION>_<KEY> environment variables
//  4. overrides passed by the caller, usually command line flags
//
// A missing user file is not an error.
package config

// Package paths provides centralized path handling for dotprov.
//
// It handles:
//
//   - Home directory lookup and tilde expansion of declared destinations
//   - Abbreviation of the home directory to ~ in reported descriptions
//   - XDG locations for the user configuration file and the log file
//   - Small predicates over path names (hidden names, containment)
//
// # Environment Variables
//
//   - HOME: the user's home directory (read through adrg/xdg)
//   - XDG_CONFIG_HOME: base for $XDG_CONFIG_HOME/dotprov/config.toml
//   - XDG_STATE_HOME: base for $XDG_STATE_HOME/dotprov/dotprov.log
//   - DOTPROV_CONFIG: explicit configuration file, overrides the XDG location
package paths

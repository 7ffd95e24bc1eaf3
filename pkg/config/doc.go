// Package config loads inreplace settings from layered sources.
//
// Layers, later ones win:
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user config, $XDG_CONFIG_HOME/inreplace/config.toml or config.yaml
//  3. the project config, .inreplace.toml or .inreplace.yaml in the working
//     directory, or the file named by LoadOptions.ConfigFile
//  4. INREPLACE_* environment variables, INREPLACE_REGEX_TIMEOUT setting
//     regex.timeout
package config

// Package config loads linkverify settings.
//
// Values come from struct-tag defaults, then an optional TOML file, then
// LINKVERIFY_* environment variables (a .env file in the working directory is
// honoured). Command-line flags are applied last by the caller.
package config

// SPDX-License-Identifier: MPL-2.0

// Package config loads and validates venvkit configuration.
//
// Configuration lives in a CUE file (config.cue) under the platform config
// directory; the file is validated against an embedded schema and merged
// into Viper on top of the built-in defaults. The core packages consume the
// resulting Config value; they never read config files themselves.
package config

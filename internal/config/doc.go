// Package config provides configuration structures and utilities for creditroll.
// It holds the credentials for each data source, the project settings read
// from the YAML configuration file, and the runtime options set by CLI flags.
package config

// Package pkgconfig provides a small abstraction for reading configuration values.
//
// The application reads config values through the Config interface so the
// modules never care whether a value came from the YAML file, an environment
// variable, or a built-in default.
package pkgconfig

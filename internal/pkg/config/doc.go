// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from a YAML file (path taken from CONFIG_PATH), may be
// overridden through JAXWS_* environment variables and are validated before
// any component is wired. Each settings block owns a Validate method so the
// bootstrap code can fail fast with a precise message.
package config

// Package config provides functionality for loading and managing application configuration.
//
// Settings are merged from a YAML file, an optional .env file and process
// environment variables, in that order. Every settings struct validates
// itself, and the selected environment profile (development, production,
// testing) is applied before the configuration is handed to the application.
package config

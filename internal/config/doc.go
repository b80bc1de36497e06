// Package config assembles the server and CLI configuration.
//
// Layers are merged with mergo, each overriding the non-zero fields of the
// one before: built-in defaults, environment variables, command-line flags
// and finally the JSON file named by CONFIG or -c. Use GetStructuredConfig
// in the server and GetClientConfig in the CLI.
package config

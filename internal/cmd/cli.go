// Package cmd defines the kong command structs for the nodeforge CLI.
package cmd

// CLI is the root command structure parsed by kong. Values may come from
// flags, environment variables, or layered JSON/YAML/TOML config files.
type CLI struct {
	Log struct {
		Level string `help:"Log level" default:"info" enum:"trace,debug,info,warn,error" env:"NODEFORGE_LOG_LEVEL"`
		File  string `help:"Write logs to this file instead of stdout/stderr" env:"NODEFORGE_LOG_FILE"`
	} `embed:"" prefix:"log."`
	Config string `help:"Path to a configuration file" env:"NODEFORGE_CONFIG"`

	Generate  Generate      `cmd:"" help:"Generate an OPC UA node set from a meta-model document"`
	Check     Check         `cmd:"" help:"Load and validate a meta-model document without generating"`
	ConfigCmd ConfigCommand `cmd:"" name:"config" help:"Configuration utilities"`
}

// Package main is the entry point for the jaxws-example-cli application.
// It registers the sub-commands calling the published SOAP endpoints and the
// configuration check, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/MGTheTrain/jaxws-example/cmd/jaxws-example-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "jaxws-example-cli",
		Short: "Client for the jaxws-example SOAP endpoints",
		Long: `jaxws-example-cli calls the SOAP endpoints published by jaxws-example-rest-api.
It covers the simple, javafirst (HTTP Basic auth), wsdlfirst and hibernate endpoints
and can validate a configuration file before the application is started.`,
		SilenceUsage: true,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	commands.InitClientFlags(rootCmd)

	if err := commands.InitEchoCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize echo commands: %w", err)
	}

	if err := commands.InitPeopleCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize people commands: %w", err)
	}

	commands.InitCheckCommand(rootCmd)
	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}

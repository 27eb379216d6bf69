// Package main is the entry point for the forgekit-cli application.
// It initializes the root command and registers the project generation and
// version sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "forgekit/cmd/forgekit-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "forgekit-cli",
		Short: "Project scaffolding CLI tool",
		Long: `forgekit-cli generates ready-to-run web service projects.
A generated project ships with a Gin router, a GORM-backed user model,
JWT login, environment-based configuration and a Makefile, so a new
service goes from nothing to 'make run' in one command.`,
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
	// Register project generation commands
	if err := commands.InitProjectCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize project commands: %w", err)
	}

	// Register version commands
	if err := commands.InitVersionCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize version commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}

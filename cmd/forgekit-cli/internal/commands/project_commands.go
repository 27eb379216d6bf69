package commands

import (
	"fmt"

	"forgekit/internal/domain/scaffold"
	"forgekit/internal/infrastructure/workspace"
	"forgekit/internal/pkg/logger"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ProjectCommandHandler encapsulates logic for generating project workspaces via CLI.
type ProjectCommandHandler struct {
	initializer scaffold.ProjectInitializer
	logger      logger.Logger
}

// NewProjectCommandHandler initializes and returns a ProjectCommandHandler instance with
// configured logger and project initializer.
func NewProjectCommandHandler() (*ProjectCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	initializer, err := workspace.NewProjectInitializer(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create project initializer: %w", err)
	}

	return &ProjectCommandHandler{
		initializer: initializer,
		logger:      loggerInstance,
	}, nil
}

// GenerateProjectCmd generates a new project workspace in a selected directory
func (commandHandler *ProjectCommandHandler) GenerateProjectCmd(cmd *cobra.Command, args []string) {
	targetDir, err := cmd.Flags().GetString("dir")
	if err != nil {
		commandHandler.logger.Error("invalid dir flag ", err)
		return
	}

	spec := scaffold.NewProjectSpec(args[0], targetDir)

	if modulePath, err := cmd.Flags().GetString("module"); err == nil && modulePath != "" {
		spec.ModulePath = modulePath
	}
	if database, err := cmd.Flags().GetString("database"); err == nil && database != "" {
		spec.Database = database
	}
	if port, err := cmd.Flags().GetInt("port"); err == nil && port != 0 {
		spec.Port = port
	}
	if force, err := cmd.Flags().GetBool("force"); err == nil {
		spec.Force = force
	}

	fmt.Printf("🚀 Generating project: %s\n\n", color.New(color.Bold, color.FgHiCyan).Sprint(spec.Name))

	report, err := commandHandler.initializer.Initialize(cmd.Context(), spec)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Printf("📁 Created %d files in %s\n", len(report.Created), report.Root)
	if len(report.Skipped) > 0 {
		fmt.Printf("⏭️  Skipped %d existing files (re-run with --force to overwrite)\n", len(report.Skipped))
	}

	fmt.Printf("\n✅ Project %s created successfully!\n", color.New(color.Bold, color.FgHiGreen).Sprint(spec.Name))
	fmt.Println("\n📖 Next steps:")
	fmt.Println("   cd", spec.Name)
	fmt.Println("   cp .env.example .env")
	fmt.Println("   go mod tidy")
	fmt.Println("   make run")
}

// InitProjectCommands registers project generation commands
func InitProjectCommands(rootCmd *cobra.Command) error {
	handler, err := NewProjectCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create project command handler %w", err)
	}

	var newProjectCmd = &cobra.Command{
		Use:   "new [name]",
		Short: "Generate a new project workspace",
		Args:  cobra.ExactArgs(1),
		Run:   handler.GenerateProjectCmd,
	}
	newProjectCmd.Flags().StringP("module", "", "", "Module path of the generated project (defaults to the project name)")
	newProjectCmd.Flags().StringP("dir", "", ".", "Directory to create the project in")
	newProjectCmd.Flags().StringP("database", "", scaffold.DatabaseSqlite, "Database backend (sqlite or postgres)")
	newProjectCmd.Flags().IntP("port", "", scaffold.DefaultPort, "Port the generated service listens on")
	newProjectCmd.Flags().BoolP("force", "", false, "Overwrite existing files in the project directory")
	rootCmd.AddCommand(newProjectCmd)

	return nil
}

package scaffold

import (
	"context"
)

// ProjectInitializer defines methods for generating project workspaces.
type ProjectInitializer interface {
	// Initialize materializes the project described by spec on disk.
	// Existing files are skipped unless the spec forces overwriting.
	// It returns a Report of created and skipped files and any error
	// encountered during generation.
	Initialize(ctx context.Context, spec *ProjectSpec) (*Report, error)
}

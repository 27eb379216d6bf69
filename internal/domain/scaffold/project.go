package scaffold

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Database backends a generated project can be wired to
const (
	DatabaseSqlite   = "sqlite"
	DatabasePostgres = "postgres"
)

// DefaultPort is the port a generated service listens on out of the box.
const DefaultPort = 8080

// Project names become directory names and default module paths, so they
// are restricted to filesystem and import-path safe characters.
var projectNamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9._-]*$`)

// ProjectSpec describes a project workspace to generate.
type ProjectSpec struct {
	Name       string `validate:"required,min=1,max=100"`
	ModulePath string `validate:"required,max=200"`
	TargetDir  string `validate:"required"`
	Database   string `validate:"required,oneof=sqlite postgres"`
	Port       int    `validate:"required,min=1,max=65535"`
	Force      bool
}

// NewProjectSpec builds a spec for a project created under targetDir. The
// module path defaults to the project name, the database to SQLite and the
// port to DefaultPort.
func NewProjectSpec(name string, targetDir string) *ProjectSpec {
	return &ProjectSpec{
		Name:       name,
		ModulePath: name,
		TargetDir:  targetDir,
		Database:   DatabaseSqlite,
		Port:       DefaultPort,
	}
}

// Validate for validating ProjectSpec struct
func (p *ProjectSpec) Validate() error {
	validate := validator.New()

	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("validation failed for ProjectSpec: %w", err)
	}

	if !projectNamePattern.MatchString(p.Name) {
		return fmt.Errorf("project name %q must start with a letter and may only contain letters, digits, '.', '_' and '-'", p.Name)
	}

	return nil
}

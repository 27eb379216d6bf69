package workspace

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"forgekit/internal/domain/scaffold"
	"forgekit/internal/pkg/logger"
)

const templateRoot = "templates"

// Driver pins written into generated go.mod files.
const (
	sqliteDriverVersion   = "v1.5.6"
	postgresDriverVersion = "v1.5.9"
)

type projectInitializer struct {
	logger logger.Logger
}

// NewProjectInitializer creates a ProjectInitializer that materializes new
// projects on disk from the embedded template tree.
func NewProjectInitializer(logger logger.Logger) (scaffold.ProjectInitializer, error) {
	return &projectInitializer{logger: logger}, nil
}

// Initialize renders every template into TargetDir/Name and reports which
// files were created. Existing files are left in place and reported as
// skipped unless Force is set, so re-running over a project fills in
// missing files without clobbering local edits.
func (g *projectInitializer) Initialize(ctx context.Context, spec *scaffold.ProjectSpec) (*scaffold.Report, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	root := filepath.Join(filepath.Clean(spec.TargetDir), spec.Name)

	vars, err := templateVars(spec)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare template variables: %w", err)
	}
	report := &scaffold.Report{Root: root}

	err = fs.WalkDir(templatesFS, templateRoot, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel := strings.TrimSuffix(strings.TrimPrefix(path, templateRoot+"/"), ".tmpl")
		dst := filepath.Join(root, rel)

		if !spec.Force {
			if _, statErr := os.Stat(dst); statErr == nil {
				report.RecordSkipped(rel)
				return nil
			}
		}

		raw, err := fs.ReadFile(templatesFS, path)
		if err != nil {
			return err
		}

		rendered, err := RenderString(string(raw), vars)
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", rel, err)
		}

		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(dst, []byte(rendered), 0o644); err != nil {
			return err
		}

		report.RecordCreated(rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate project: %w", err)
	}

	if err := ensureGitignore(root, spec.Name); err != nil {
		return nil, fmt.Errorf("failed to update .gitignore: %w", err)
	}

	g.logger.Info("Generated project ", spec.Name, " in ", root)
	return report, nil
}

func templateVars(spec *scaffold.ProjectSpec) (map[string]string, error) {
	secret, err := newSecretKey()
	if err != nil {
		return nil, err
	}

	vars := map[string]string{
		"PROJECT_NAME": spec.Name,
		"MODULE_PATH":  spec.ModulePath,
		"PORT":         strconv.Itoa(spec.Port),
		"SECRET_KEY":   secret,
	}

	switch spec.Database {
	case scaffold.DatabasePostgres:
		vars["DB_DRIVER_IMPORT"] = "gorm.io/driver/postgres"
		vars["DB_DRIVER_REQUIRE"] = "gorm.io/driver/postgres " + postgresDriverVersion
		vars["DB_OPEN_EXPR"] = "postgres.Open(dsn)"
		vars["DB_DEFAULT_DSN"] = "host=localhost user=postgres password=postgres dbname=" + spec.Name + " port=5432 sslmode=disable"
	default:
		vars["DB_DRIVER_IMPORT"] = "gorm.io/driver/sqlite"
		vars["DB_DRIVER_REQUIRE"] = "gorm.io/driver/sqlite " + sqliteDriverVersion
		vars["DB_OPEN_EXPR"] = "sqlite.Open(dsn)"
		vars["DB_DEFAULT_DSN"] = "app.db"
	}

	return vars, nil
}

// newSecretKey generates a fresh signing secret for the project's
// environment file, so no two generated projects share one.
func newSecretKey() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate secret key: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// gitignoreEntries are merged into the generated project's .gitignore,
// preserving whatever the user already keeps there on --force re-runs.
var gitignoreEntries = []string{
	".env",
	"*.db",
	"/bin/",
	"/logs/",
}

func ensureGitignore(root, projectName string) error {
	path := filepath.Join(root, ".gitignore")

	existing := ""
	if raw, err := os.ReadFile(path); err == nil {
		existing = string(raw)
	} else if !os.IsNotExist(err) {
		return err
	}

	present := make(map[string]bool)
	for _, line := range strings.Split(existing, "\n") {
		present[strings.TrimSpace(line)] = true
	}

	missing := make([]string, 0, len(gitignoreEntries))
	for _, entry := range gitignoreEntries {
		if !present[entry] {
			missing = append(missing, entry)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteString("\n")
	}
	if existing == "" {
		out.WriteString("# " + projectName + "\n")
	}
	for _, entry := range missing {
		out.WriteString(entry + "\n")
	}

	return os.WriteFile(path, []byte(out.String()), 0o644)
}

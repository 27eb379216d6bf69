package workspace

import "embed"

// Template tree for generated projects. Every file keeps a .tmpl suffix so
// the embedded sources never read as buildable Go files or module roots.
//
//go:embed all:templates
var templatesFS embed.FS

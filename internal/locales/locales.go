// Package locales embeds the bundled translation files.
package locales

import "embed"

// FS holds one YAML file per language at its root.
//
//go:embed *.yaml
var FS embed.FS

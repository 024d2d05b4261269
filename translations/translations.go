// Package translations embeds the UI message catalogs.
package translations

import "embed"

// FS holds one YAML catalog per supported language at its root.
//
//go:embed *.yaml
var FS embed.FS

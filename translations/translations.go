// Package translations embeds the catalogs shipped with the binaries. They
// are used when no TRANSLATIONS_DIR is configured.
package translations

import "embed"

//go:embed *.ts
var FS embed.FS

package appfs

import "embed"

// FS embeds non-Go assets shipped with the binary (database migrations).
//go:embed migrations
var FS embed.FS

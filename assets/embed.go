// Package assets embeds the default word lists:
//   - roots.txt:      candidate root words.
//   - dictionary.txt: English words recognized by the default dictionary.
package assets

import "embed"

//go:embed roots.txt dictionary.txt
var FS embed.FS

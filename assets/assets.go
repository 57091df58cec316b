// Package assets embeds the default textures and level images.
package assets

import "embed"

//go:embed textures/*.png levels/*.png
var FS embed.FS

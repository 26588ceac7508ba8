// Package web embeds the static landing page.
package web

import "embed"

//go:embed index.html style.css
var Files embed.FS

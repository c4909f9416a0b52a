// Package web carries the server-rendered admin views, embedded so the
// binary stays self-contained.
package web

import "embed"

//go:embed templates/admin/*.html
var Templates embed.FS

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package web holds the default static site served at the application root
// when no STATIC_DIR is configured.
package web

import (
	"embed"
	"io/fs"
)

//go:embed index.html css js
var content embed.FS

// FS returns the embedded site rooted at its top directory.
func FS() fs.FS {
	return content
}

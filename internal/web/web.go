// Package web holds the embedded static landing page.
package web

import _ "embed"

//go:embed index.html
var IndexHTML []byte

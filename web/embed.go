// Package web содержит статические ресурсы страницы (JS/CSS),
// встраиваемые в бинарник
package web

import "embed"

//go:embed static
var Static embed.FS

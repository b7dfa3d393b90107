package template

import "embed"

//go:embed drivers/*.tmpl
var driverTemplates embed.FS

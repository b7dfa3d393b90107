// Package template renders the embedded files parka seeds into the
// configuration tree during install.
package template

import (
	"bytes"
	"fmt"
	"text/template"
)

// SampleDriverData contains data for rendering the sample driver
type SampleDriverData struct {
	Domain string
	Port   string
}

// RenderSampleDriver renders the sample driver file seeded into the
// Drivers directory on first install.
func RenderSampleDriver(domain, port string) (string, error) {
	content, err := driverTemplates.ReadFile("drivers/sample.conf.tmpl")
	if err != nil {
		return "", fmt.Errorf("sample driver template not found: %w", err)
	}

	tmpl, err := template.New("sample").Parse(string(content))
	if err != nil {
		return "", fmt.Errorf("failed to parse sample driver template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, SampleDriverData{Domain: domain, Port: port}); err != nil {
		return "", fmt.Errorf("failed to render sample driver template: %w", err)
	}

	return buf.String(), nil
}

package output

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

func init() {
	// Disable color for tests
	color.NoColor = true
}

// captureStdout captures stdout during function execution
func captureStdout(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	// Also set color output to the same writer
	color.Output = w

	f()

	w.Close()
	os.Stdout = old
	color.Output = os.Stdout

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func TestJSON(t *testing.T) {
	data := map[string]interface{}{
		"domain": "test",
		"port":   "80",
	}

	out := captureStdout(func() {
		_ = JSON(data)
	})

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("JSON output is invalid: %v", err)
	}
	if result["domain"] != "test" {
		t.Errorf("expected domain test, got %v", result["domain"])
	}
	if result["port"] != "80" {
		t.Errorf("expected port 80, got %v", result["port"])
	}
}

func TestYAML(t *testing.T) {
	data := map[string]interface{}{
		"domain": "test",
		"paths":  []string{"/home/dev/sites"},
	}

	out := captureStdout(func() {
		_ = YAML(data)
	})

	var result map[string]interface{}
	if err := yaml.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("YAML output is invalid: %v", err)
	}
	if result["domain"] != "test" {
		t.Errorf("expected domain test, got %v", result["domain"])
	}
}

func TestTable(t *testing.T) {
	out := captureStdout(func() {
		Table(
			[]string{"PATH", "EXISTS"},
			[][]string{
				{"/home/dev/sites", "yes"},
				{"/srv/projects", "no"},
			},
		)
	})

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines (header, separator, 2 rows), got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "PATH") {
		t.Errorf("missing header: %s", lines[0])
	}
	if !strings.Contains(lines[2], "/home/dev/sites") {
		t.Errorf("missing first row: %s", lines[2])
	}
}

func TestTableEmptyHeaders(t *testing.T) {
	out := captureStdout(func() {
		Table(nil, [][]string{{"ignored"}})
	})
	if out != "" {
		t.Errorf("expected no output for empty headers, got %q", out)
	}
}

func TestMessages(t *testing.T) {
	tests := []struct {
		name   string
		fn     func(string, ...interface{})
		prefix string
	}{
		{"Success", Success, "✓"},
		{"Error", Error, "✗"},
		{"Warn", Warn, "!"},
		{"Info", Info, "→"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := captureStdout(func() {
				tt.fn("message %d", 1)
			})
			if !strings.HasPrefix(out, tt.prefix) {
				t.Errorf("expected prefix %q, got %q", tt.prefix, out)
			}
			if !strings.Contains(out, "message 1") {
				t.Errorf("missing formatted message: %q", out)
			}
		})
	}
}

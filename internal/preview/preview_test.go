package preview

import (
	"strings"
	"testing"
)

func TestRenderBasicMarkdown(t *testing.T) {
	r := NewRenderer()

	out, err := r.Render("# About the Curators\n\nWritten by the *special collections* team.")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, "<h1") || !strings.Contains(out, "About the Curators") {
		t.Errorf("missing heading in output: %s", out)
	}
	if !strings.Contains(out, "<em>special collections</em>") {
		t.Errorf("missing emphasis in output: %s", out)
	}
}

func TestRenderGFMTable(t *testing.T) {
	r := NewRenderer()

	out, err := r.Render("| Year | Event |\n|------|-------|\n| 1893 | Crash |")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, "<table>") {
		t.Errorf("expected table output, got: %s", out)
	}
}

func TestRenderPassesRawHTMLThrough(t *testing.T) {
	r := NewRenderer()

	out, err := r.Render(`<iframe src="https://player.example.com/v/123"></iframe>`)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, "<iframe") {
		t.Errorf("embed snippet should pass through, got: %s", out)
	}
}

func TestRenderEmptyInput(t *testing.T) {
	r := NewRenderer()

	out, err := r.Render("")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.TrimSpace(out) != "" {
		t.Errorf("empty input should render empty, got %q", out)
	}
}

package console

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
)

func TestPrinter(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name  string
		print func(p *Printer)
		want  string
	}{
		{"ok", func(p *Printer) { p.OK("Generated: %s (%d bytes)", "a.jpg", 10) }, "  [OK] Generated: a.jpg (10 bytes)\n"},
		{"warn", func(p *Printer) { p.Warn("No image returned for %s", "a.jpg") }, "  [WARN] No image returned for a.jpg\n"},
		{"error", func(p *Printer) { p.Error("Attempt %d/%d: %s", 1, 3, "boom") }, "  [ERROR] Attempt 1/3: boom\n"},
		{"rate", func(p *Printer) { p.Rate("Rate limited, waiting %s...", "1m0s") }, "  [RATE] Rate limited, waiting 1m0s...\n"},
		{"printf", func(p *Printer) { p.Printf("[%d/%d] Generating %s...", 1, 2, "a") }, "[1/2] Generating a...\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.print(New(&buf))
			if buf.String() != tt.want {
				t.Errorf("got %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

package pipeline

import (
	"context"
	"strings"
	"testing"
)

func TestToHTMLBasicConversion(t *testing.T) {
	c := NewGoldmarkConverter()

	got, err := c.ToHTML(context.Background(), "# Title\n\nSome paragraph.")
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}

	checks := []string{
		"<!DOCTYPE html>",
		"<h1>Title</h1>",
		"<p>Some paragraph.</p>",
		"</body>",
	}
	for _, want := range checks {
		if !strings.Contains(got, want) {
			t.Errorf("ToHTML() output missing %q:\n%s", want, got)
		}
	}
}

// TestToHTMLPreservesMathDollars confirms dollar-delimited math flows through
// goldmark as plain text for the math filter to pick up.
func TestToHTMLPreservesMathDollars(t *testing.T) {
	c := NewGoldmarkConverter()

	got, err := c.ToHTML(context.Background(), "Formula $x^2$ and block\n\n$$y$$")
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}
	if !strings.Contains(got, "$x^2$") {
		t.Errorf("inline dollars not preserved:\n%s", got)
	}
	if !strings.Contains(got, "$$y$$") {
		t.Errorf("display dollars not preserved:\n%s", got)
	}
}

func TestToHTMLTable(t *testing.T) {
	c := NewGoldmarkConverter()

	md := "| a | b |\n|---|---|\n| 1 | 2 |"
	got, err := c.ToHTML(context.Background(), md)
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}
	if !strings.Contains(got, "<table>") {
		t.Errorf("GFM table not rendered:\n%s", got)
	}
}

func TestToHTMLCancelledContext(t *testing.T) {
	c := NewGoldmarkConverter()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.ToHTML(ctx, "# Title"); err == nil {
		t.Error("ToHTML() with cancelled context should return error")
	}
}

package main

import "testing"

func TestParseFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		f, args, err := parseFlags([]string{"katexify"})
		if err != nil {
			t.Fatalf("parseFlags() error = %v", err)
		}
		if len(args) != 0 {
			t.Errorf("positional args = %v, want none", args)
		}
		if f.output != "" || f.format != "" || f.assets || f.deferScripts {
			t.Errorf("unexpected defaults: %+v", f)
		}
	})

	t.Run("all flags with positional args", func(t *testing.T) {
		f, args, err := parseFlags([]string{
			"katexify",
			"-o", "out",
			"-c", "site",
			"--format", "markdown",
			"--assets",
			"--base-url", "https://cdn.example.com/katex",
			"--defer",
			"-t", "500ms",
			"-v",
			"a.md", "b.html",
		})
		if err != nil {
			t.Fatalf("parseFlags() error = %v", err)
		}
		if f.output != "out" || f.config != "site" || f.format != "markdown" {
			t.Errorf("I/O flags = %+v", f)
		}
		if !f.assets || f.baseURL != "https://cdn.example.com/katex" || !f.deferScripts {
			t.Errorf("asset flags = %+v", f)
		}
		if f.matchTimeout != "500ms" || !f.verbose {
			t.Errorf("filter/common flags = %+v", f)
		}
		if len(args) != 2 || args[0] != "a.md" || args[1] != "b.html" {
			t.Errorf("positional args = %v", args)
		}
	})

	t.Run("unknown flag", func(t *testing.T) {
		if _, _, err := parseFlags([]string{"katexify", "--mystery"}); err == nil {
			t.Error("parseFlags() should reject unknown flags")
		}
	})
}

package main

import (
	"fmt"
	"os"
	"testing"

	katexify "github.com/alnah/go-katexify"
	"github.com/alnah/go-katexify/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},
		{"no input", ErrNoInput, ExitIO},
		{"read failure", fmt.Errorf("%w: x.md", ErrReadInput), ExitIO},
		{"write failure", fmt.Errorf("%w: out.html", ErrWriteOutput), ExitIO},
		{"missing file", os.ErrNotExist, ExitIO},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", fmt.Errorf("%w: bad", config.ErrConfigParse), ExitUsage},
		{"invalid field", config.ErrInvalidField, ExitUsage},
		{"empty content", katexify.ErrEmptyContent, ExitUsage},
		{"invalid format", katexify.ErrInvalidFormat, ExitUsage},
		{"invalid base URL", katexify.ErrInvalidBaseURL, ExitUsage},
		{"invalid timeout", ErrInvalidTimeout, ExitUsage},
		{"output not dir", ErrOutputNotDir, ExitUsage},
		{"unknown error", fmt.Errorf("mystery"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

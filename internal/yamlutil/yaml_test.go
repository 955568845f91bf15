package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

type testDoc struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshal(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		var doc testDoc
		if err := Unmarshal([]byte("name: filter\ncount: 3\n"), &doc); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if doc.Name != "filter" || doc.Count != 3 {
			t.Errorf("Unmarshal() = %+v", doc)
		}
	})

	t.Run("unknown fields tolerated", func(t *testing.T) {
		var doc testDoc
		if err := Unmarshal([]byte("name: x\nextra: y\n"), &doc); err != nil {
			t.Errorf("Unmarshal() error = %v, want nil", err)
		}
	})

	t.Run("empty data", func(t *testing.T) {
		var doc testDoc
		if err := Unmarshal(nil, &doc); !errors.Is(err, ErrNilData) {
			t.Errorf("Unmarshal(nil) error = %v, want ErrNilData", err)
		}
	})

	t.Run("nil destination", func(t *testing.T) {
		if err := Unmarshal([]byte("a: b"), nil); !errors.Is(err, ErrNilDestination) {
			t.Errorf("Unmarshal(..., nil) error = %v, want ErrNilDestination", err)
		}
	})

	t.Run("oversized input", func(t *testing.T) {
		var doc testDoc
		data := []byte("name: " + strings.Repeat("a", MaxInputSize))
		if err := Unmarshal(data, &doc); !errors.Is(err, ErrInputTooLarge) {
			t.Errorf("Unmarshal(oversized) error = %v, want ErrInputTooLarge", err)
		}
	})
}

func TestUnmarshalStrict(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		var doc testDoc
		if err := UnmarshalStrict([]byte("name: filter\n"), &doc); err != nil {
			t.Fatalf("UnmarshalStrict() error = %v", err)
		}
	})

	t.Run("unknown fields rejected", func(t *testing.T) {
		var doc testDoc
		if err := UnmarshalStrict([]byte("name: x\nextra: y\n"), &doc); err == nil {
			t.Error("UnmarshalStrict() should reject unknown fields")
		}
	})
}

package storage

import (
	"strings"
	"testing"
)

type sample struct {
	Version int               `json:"version" yaml:"version"`
	Records map[string]string `json:"records" yaml:"records"`
}

func TestCodecFor(t *testing.T) {
	tests := []struct {
		format  string
		name    string
		ext     string
		wantErr bool
	}{
		{"", FormatYAML, ".yaml", false},
		{"yaml", FormatYAML, ".yaml", false},
		{"YML", FormatYAML, ".yaml", false},
		{"json", FormatJSON, ".json", false},
		{"toml", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			c, err := CodecFor(tt.format)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error for %q", tt.format)
				}
				return
			}
			if err != nil {
				t.Fatalf("CodecFor(%q) failed: %v", tt.format, err)
			}
			if c.Name() != tt.name || c.Extension() != tt.ext {
				t.Errorf("CodecFor(%q) = %s %s, want %s %s", tt.format, c.Name(), c.Extension(), tt.name, tt.ext)
			}
		})
	}
}

func TestCodecsPreserveValues(t *testing.T) {
	in := sample{Version: 1, Records: map[string]string{"C1": "Acme", "C2": "Globex: Inc"}}

	for _, format := range []string{FormatYAML, FormatJSON} {
		t.Run(format, func(t *testing.T) {
			c, _ := CodecFor(format)
			data, err := c.Marshal(in)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if !strings.HasSuffix(string(data), "\n") {
				t.Error("Expected trailing newline")
			}

			var out sample
			if err := c.Unmarshal(data, &out); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if out.Version != 1 || out.Records["C2"] != "Globex: Inc" || len(out.Records) != 2 {
				t.Errorf("Values changed: %+v", out)
			}
		})
	}
}

func TestYAMLIsHumanReadable(t *testing.T) {
	c, _ := CodecFor(FormatYAML)
	data, err := c.Marshal(sample{Version: 1, Records: map[string]string{"G1": "Bob"}})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), "  G1: Bob") {
		t.Errorf("Expected two-space indented mapping, got:\n%s", data)
	}
}

func TestUnmarshalRejectsGarbage(t *testing.T) {
	for _, format := range []string{FormatYAML, FormatJSON} {
		c, _ := CodecFor(format)
		var out sample
		if err := c.Unmarshal([]byte("{{{ not a document"), &out); err == nil {
			t.Errorf("%s: expected error for corrupt input", format)
		}
	}
}

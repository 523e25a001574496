package gcp

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func init() {
	// Keep escape sequences out of test output comparisons.
	color.NoColor = true
}

func sampleBindings() []Binding {
	return []Binding{
		{
			Role:     "roles/owner",
			Members:  []string{"user:alice@example.com"},
			Resource: "projects/test-project",
		},
		{
			Role:     "roles/viewer",
			Members:  []string{"user:bob@example.com", "group:auditors@example.com"},
			Resource: "projects/test-project",
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "table", want: FormatTable},
		{input: "json", want: FormatJSON},
		{input: "yaml", want: FormatYAML},
		{input: "JSON", want: FormatJSON},
		{input: "csv", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatTable, sampleBindings()))

	out := buf.String()
	assert.Contains(t, out, "roles/owner")
	assert.Contains(t, out, "roles/viewer")
	assert.Contains(t, out, "user:bob@example.com, group:auditors@example.com")
	assert.Contains(t, out, "projects/test-project")

	// Header, separator, one line per binding.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Role")
	assert.Contains(t, lines[0], "Members")
	assert.Contains(t, lines[0], "Resource")
}

func TestRenderTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatTable, nil))
	assert.Contains(t, buf.String(), "No IAM bindings found")
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatJSON, sampleBindings()))

	var decoded []Binding
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleBindings(), decoded)
}

func TestRenderYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, FormatYAML, sampleBindings()))

	var decoded []Binding
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleBindings(), decoded)
}

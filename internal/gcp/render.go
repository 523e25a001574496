package gcp

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Format selects the audit report output encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates an output format name.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case FormatTable:
		return FormatTable, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("invalid output format: %s (must be table, json, or yaml)", name)
	}
}

// Render writes the audit rows to w in the given format.
func Render(w io.Writer, format Format, bindings []Binding) error {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(bindings, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report as JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case FormatYAML:
		data, err := yaml.Marshal(bindings)
		if err != nil {
			return fmt.Errorf("failed to encode report as YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return renderTable(w, bindings)
	}
}

func renderTable(w io.Writer, bindings []Binding) error {
	if len(bindings) == 0 {
		_, err := color.New(color.FgYellow).Fprintln(w, "No IAM bindings found for this project.")
		return err
	}

	roleWidth := len("Role")
	membersWidth := len("Members")
	for _, b := range bindings {
		if n := len(b.Role); n > roleWidth {
			roleWidth = n
		}
		if n := len(strings.Join(b.Members, ", ")); n > membersWidth {
			membersWidth = n
		}
	}

	header := color.New(color.FgCyan, color.Bold)
	if _, err := header.Fprintf(w, "%-*s  %-*s  %s\n", roleWidth, "Role", membersWidth, "Members", "Resource"); err != nil {
		return err
	}
	separator := color.New(color.FgCyan)
	if _, err := separator.Fprintln(w, strings.Repeat("─", roleWidth+membersWidth+len("Resource")+4)); err != nil {
		return err
	}

	for _, b := range bindings {
		members := strings.Join(b.Members, ", ")
		if _, err := fmt.Fprintf(w, "%-*s  %-*s  %s\n", roleWidth, b.Role, membersWidth, members, b.Resource); err != nil {
			return err
		}
	}

	return nil
}

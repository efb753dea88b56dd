package uidoc

import (
	"sort"
	"strings"
)

// FormatComponents formats catalog entries for display, one per line.
// Descriptions are appended when present.
func FormatComponents(components []*Component) string {
	if len(components) == 0 {
		return ""
	}

	parts := make([]string, 0, len(components))
	for _, c := range components {
		line := c.Name
		if c.Description != "" {
			line += "  " + c.Description
		}
		parts = append(parts, line)
	}

	return strings.Join(parts, "\n")
}

// FormatDetail formats a detail record for display or LLM context.
// Empty fields are omitted; variants are listed in name order.
func FormatDetail(d *ComponentDetail) string {
	var sb strings.Builder

	sb.WriteString("# " + d.Name + "\n")
	if d.Description != "" {
		sb.WriteString("\n" + d.Description + "\n")
	}
	sb.WriteString("\nDocumentation: " + d.URL + "\n")
	sb.WriteString("Source: " + d.SourceURL + "\n")

	if d.Installation != "" {
		sb.WriteString("\n## Installation\n\n```\n" + d.Installation + "\n```\n")
	}
	if d.Usage != "" {
		sb.WriteString("\n## Usage\n\n```\n" + d.Usage + "\n```\n")
	}

	if len(d.Props) > 0 {
		sb.WriteString("\n## Variants\n")

		names := make([]string, 0, len(d.Props))
		for name := range d.Props {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			spec := d.Props[name]
			sb.WriteString("\n### " + name + "\n\n" + spec.Description + "\n")
			if spec.Example != "" {
				sb.WriteString("\n```\n" + spec.Example + "\n```\n")
			}
		}
	}

	return sb.String()
}

// FormatExamples formats examples for display or LLM context.
// Examples are separated by blank lines.
func FormatExamples(examples []*Example) string {
	if len(examples) == 0 {
		return ""
	}

	parts := make([]string, 0, len(examples))
	for _, ex := range examples {
		var sb strings.Builder
		sb.WriteString("## " + ex.Title + "\n")
		if ex.Description != "" {
			sb.WriteString("\n" + ex.Description + "\n")
		}
		sb.WriteString("\n```\n" + ex.Code + "\n```")
		parts = append(parts, sb.String())
	}

	return strings.Join(parts, "\n\n")
}

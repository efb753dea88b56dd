package extract

import (
	"fmt"
	"strings"

	"github.com/fwojciec/uidoc"
)

// Section labels the registry's pages use. Labels match level-2 headings
// exactly; variant headings sit at level 3 inside the Examples section.
const (
	SectionInstallation = "Installation"
	SectionUsage        = "Usage"
	SectionExamplesName = "Examples"
	SectionLink         = "Link"

	sectionLevel = 2
	variantLevel = 3
)

// Description returns the text of the first paragraph following the
// document's first heading, stopping at the next heading. Script content
// never reaches the node sequence, so the text is read as-is.
// Returns "" if no such paragraph exists.
func Description(nodes []uidoc.Node) string {
	start := -1
	for i, n := range nodes {
		if n.Kind == uidoc.NodeHeading {
			start = i + 1
			break
		}
	}
	if start == -1 {
		return ""
	}

	for _, n := range nodes[start:] {
		if n.Kind == uidoc.NodeHeading {
			break
		}
		if n.Kind == uidoc.NodeParagraph {
			return strings.TrimSpace(n.Text)
		}
	}

	return ""
}

// Installation returns the trimmed text of the first code block in the
// Installation section. Returns "" if the section or block is absent.
func Installation(nodes []uidoc.Node) string {
	section := Locate(nodes, SectionInstallation, sectionLevel)
	code, _ := firstCodeBlock(section)
	return code
}

// Usage returns the trimmed text of every code block in the Usage section,
// joined by blank lines. Returns "" if none are found.
func Usage(nodes []uidoc.Node) string {
	section := Locate(nodes, SectionUsage, sectionLevel)
	blocks := codeBlocks(section)
	if len(blocks) == 0 {
		return ""
	}

	trimmed := make([]string, 0, len(blocks))
	for _, b := range blocks {
		trimmed = append(trimmed, strings.TrimSpace(b))
	}

	return strings.Join(trimmed, "\n\n")
}

// Variants builds one VariantSpec per level-3 heading in the Examples
// section, keyed by heading text. Only sibling headings count; nested
// lookups are not performed. A later duplicate heading overwrites the
// earlier entry. Each variant's example is the first code block inside
// the first tab container following its heading.
// Returns nil if the section is absent or holds no variant headings.
func Variants(nodes []uidoc.Node, component string) map[string]uidoc.VariantSpec {
	section := Locate(nodes, SectionExamplesName, sectionLevel)

	var props map[string]uidoc.VariantSpec
	for i, n := range section {
		if n.Kind != uidoc.NodeHeading || n.Level != variantLevel {
			continue
		}

		name := strings.TrimSpace(n.Text)
		if props == nil {
			props = make(map[string]uidoc.VariantSpec)
		}
		props[name] = uidoc.VariantSpec{
			Type:        uidoc.VariantType,
			Description: VariantDescription(name, component),
			Required:    false,
			Example:     variantExample(section[i+1:]),
		}
	}

	return props
}

// VariantDescription renders the fixed description template for a variant.
func VariantDescription(variant, component string) string {
	return fmt.Sprintf("%s variant of the %s component", variant, component)
}

// variantExample returns the first code block inside the first tab container
// among the nodes following a variant heading, stopping at the next heading
// of variant rank or higher.
func variantExample(following []uidoc.Node) string {
	for _, n := range following {
		if n.Kind == uidoc.NodeHeading && n.Level <= variantLevel {
			return ""
		}
		if n.Kind == uidoc.NodeTabs {
			code, _ := firstCodeBlock(n.Children)
			return code
		}
	}
	return ""
}

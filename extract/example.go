package extract

import (
	"fmt"
	"strings"

	"github.com/fwojciec/uidoc"
)

// PageExamples runs the page-local collection passes in their fixed order:
// the generic pass over the whole document, then the Usage section, then the
// Link section. Pass order is part of the observable contract; callers append
// the remote demo entry, if any, after these.
func PageExamples(nodes []uidoc.Node) []*uidoc.Example {
	examples := GenericExamples(nodes)
	examples = append(examples, SectionExamples(nodes, SectionUsage)...)
	examples = append(examples, SectionExamples(nodes, SectionLink)...)
	return examples
}

// GenericExamples collects every code block in the document, in document
// order. A block is titled after the nearest heading among its preceding
// siblings when that heading is level 2 or 3; otherwise it gets the
// positional fallback title "Code Example N", N being its 1-based position
// within this pass. Blocks that trim to nothing are skipped.
func GenericExamples(nodes []uidoc.Node) []*uidoc.Example {
	var examples []*uidoc.Example
	collectGeneric(nodes, &examples)
	return examples
}

func collectGeneric(siblings []uidoc.Node, out *[]*uidoc.Example) {
	for i, n := range siblings {
		switch n.Kind {
		case uidoc.NodeCode:
			code := strings.TrimSpace(n.Text)
			if code == "" {
				continue
			}

			ex := &uidoc.Example{Code: code}
			if title, ok := nearestTitleHeading(siblings[:i]); ok {
				ex.Title = title
				ex.Description = title + " example"
			} else {
				ex.Title = fmt.Sprintf("Code Example %d", len(*out)+1)
				ex.Description = "Code example"
			}
			*out = append(*out, ex)

		case uidoc.NodeTabs, uidoc.NodeContainer:
			collectGeneric(n.Children, out)
		}
	}
}

// nearestTitleHeading walks backward through preceding siblings to the
// nearest heading of any level. Only a level-2 or level-3 heading yields
// a title; any other heading, or none at all, falls through to the
// positional fallback.
func nearestTitleHeading(preceding []uidoc.Node) (string, bool) {
	for i := len(preceding) - 1; i >= 0; i-- {
		if preceding[i].Kind != uidoc.NodeHeading {
			continue
		}
		if preceding[i].Level == 2 || preceding[i].Level == 3 {
			return strings.TrimSpace(preceding[i].Text), true
		}
		return "", false
	}
	return "", false
}

// SectionExamples collects the code blocks of one named section, in order.
// Entries are titled "<Label> Example N" with N 1-based within the section.
// An absent section yields no entries.
func SectionExamples(nodes []uidoc.Node, label string) []*uidoc.Example {
	section := Locate(nodes, label, sectionLevel)

	var examples []*uidoc.Example
	for _, b := range codeBlocks(section) {
		code := strings.TrimSpace(b)
		if code == "" {
			continue
		}
		examples = append(examples, &uidoc.Example{
			Title:       fmt.Sprintf("%s Example %d", label, len(examples)+1),
			Code:        code,
			Description: label + " example",
		})
	}

	return examples
}

package extract

import (
	"strings"

	"github.com/fwojciec/uidoc"
)

// Locate returns the content of the section introduced by the first heading
// at the given level whose trimmed text exactly equals label (case-sensitive,
// no substring matching). The section runs from the node after the heading to
// the next heading of equal or higher rank, or the end of the document.
// A missing heading yields an empty section, never an error.
func Locate(nodes []uidoc.Node, label string, level int) []uidoc.Node {
	start := -1
	for i, n := range nodes {
		if n.Kind == uidoc.NodeHeading && n.Level == level && strings.TrimSpace(n.Text) == label {
			start = i + 1
			break
		}
	}
	if start == -1 {
		return nil
	}

	end := len(nodes)
	for i := start; i < len(nodes); i++ {
		if nodes[i].Kind == uidoc.NodeHeading && nodes[i].Level <= level {
			end = i
			break
		}
	}

	return nodes[start:end]
}

// codeBlocks returns the text of every code node in the sequence, in
// document order, descending into grouping nodes.
func codeBlocks(nodes []uidoc.Node) []string {
	var blocks []string
	for _, n := range nodes {
		switch n.Kind {
		case uidoc.NodeCode:
			blocks = append(blocks, n.Text)
		case uidoc.NodeTabs, uidoc.NodeContainer:
			blocks = append(blocks, codeBlocks(n.Children)...)
		}
	}
	return blocks
}

// firstCodeBlock returns the trimmed text of the first code node in the
// sequence, descending into grouping nodes.
func firstCodeBlock(nodes []uidoc.Node) (string, bool) {
	for _, n := range nodes {
		switch n.Kind {
		case uidoc.NodeCode:
			return strings.TrimSpace(n.Text), true
		case uidoc.NodeTabs, uidoc.NodeContainer:
			if code, ok := firstCodeBlock(n.Children); ok {
				return code, true
			}
		}
	}
	return "", false
}

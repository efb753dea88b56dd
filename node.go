package uidoc

// NodeKind classifies a parsed document node.
type NodeKind string

// Node kinds produced by document parsing.
const (
	NodeHeading   NodeKind = "heading"
	NodeParagraph NodeKind = "paragraph"
	NodeCode      NodeKind = "code"
	NodeTabs      NodeKind = "tabs"
	NodeContainer NodeKind = "container"
)

// Node is one element of a parsed documentation page. Parsing flattens a
// page's content into an ordered sequence of top-level nodes; grouping
// elements (tab panels, generic wrappers) keep their contents as Children
// so extraction can descend into them.
//
// Text holds the heading or paragraph text, or the raw code for code nodes.
// Level is set for headings only (1-6).
type Node struct {
	Kind     NodeKind
	Level    int
	Text     string
	Children []Node
}

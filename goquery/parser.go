package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/uidoc"
)

var _ uidoc.DocumentParser = (*Parser)(nil)

// Parser turns documentation HTML into the flat node sequence extraction
// works on. The content root is the parent of the document's first h1, so
// section headings and their content blocks come out as siblings; pages
// without an h1 fall back to <main>, then <body>.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse returns the page's content as an ordered node sequence.
// Script and style content is removed before mapping, so it never appears
// in node text.
func (p *Parser) Parse(html string) ([]uidoc.Node, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, uidoc.Errorf(uidoc.EINTERNAL, "failed to parse HTML: %v", err)
	}

	doc.Find("script, style, noscript").Remove()

	return childNodes(contentRoot(doc)), nil
}

func contentRoot(doc *goquery.Document) *goquery.Selection {
	if h1 := doc.Find("h1").First(); h1.Length() > 0 {
		if parent := h1.Parent(); parent.Length() > 0 {
			return parent
		}
	}
	if main := doc.Find("main").First(); main.Length() > 0 {
		return main
	}
	return doc.Find("body").First()
}

// childNodes maps an element's child elements to document nodes in order.
// Elements that carry no headings, paragraphs, or code anywhere beneath
// them are dropped.
func childNodes(sel *goquery.Selection) []uidoc.Node {
	var nodes []uidoc.Node
	sel.Children().Each(func(_ int, child *goquery.Selection) {
		if node, ok := mapNode(child); ok {
			nodes = append(nodes, node)
		}
	})
	return nodes
}

func mapNode(sel *goquery.Selection) (uidoc.Node, bool) {
	name := goquery.NodeName(sel)

	switch name {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return uidoc.Node{
			Kind:  uidoc.NodeHeading,
			Level: int(name[1] - '0'),
			Text:  strings.TrimSpace(sel.Text()),
		}, true
	case "p":
		return uidoc.Node{
			Kind: uidoc.NodeParagraph,
			Text: strings.TrimSpace(sel.Text()),
		}, true
	case "pre":
		return uidoc.Node{Kind: uidoc.NodeCode, Text: sel.Text()}, true
	}

	children := childNodes(sel)

	if isTabContainer(sel) {
		return uidoc.Node{Kind: uidoc.NodeTabs, Children: children}, true
	}
	if len(children) == 0 {
		return uidoc.Node{}, false
	}
	return uidoc.Node{Kind: uidoc.NodeContainer, Children: children}, true
}

// isTabContainer reports whether the element wraps the registry's
// preview/code tab widget. The widget is recognized by a "tabs" class,
// a tabpanel role, or the data-orientation attribute its tab root carries.
func isTabContainer(sel *goquery.Selection) bool {
	if class, ok := sel.Attr("class"); ok && strings.Contains(strings.ToLower(class), "tabs") {
		return true
	}
	if role, ok := sel.Attr("role"); ok && role == "tabpanel" {
		return true
	}
	if _, ok := sel.Attr("data-orientation"); ok {
		return true
	}
	return false
}

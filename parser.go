package uidoc

// DocumentParser turns a documentation page's HTML into the flat node
// sequence extraction operates on. Script and style content never appears
// in the returned nodes.
type DocumentParser interface {
	// Parse returns the page's content as an ordered node sequence.
	// Returns EINVALID if the HTML cannot be parsed at all.
	Parse(html string) ([]Node, error)
}

// Link is a single anchor found in a documentation page.
type Link struct {
	Href string
	Text string
}

// LinkExtractor scans a page for anchors in document order.
// Duplicate hrefs are preserved.
type LinkExtractor interface {
	// ExtractLinks returns every anchor with a non-empty href.
	// Relative hrefs are kept as written; resolution against a base URL
	// is the caller's concern.
	ExtractLinks(html string) ([]Link, error)
}

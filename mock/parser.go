package mock

import "github.com/fwojciec/uidoc"

var _ uidoc.DocumentParser = (*DocumentParser)(nil)

// DocumentParser is a mock implementation of uidoc.DocumentParser.
type DocumentParser struct {
	ParseFn func(html string) ([]uidoc.Node, error)
}

func (p *DocumentParser) Parse(html string) ([]uidoc.Node, error) {
	return p.ParseFn(html)
}

var _ uidoc.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of uidoc.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string) ([]uidoc.Link, error)
}

func (e *LinkExtractor) ExtractLinks(html string) ([]uidoc.Link, error) {
	return e.ExtractLinksFn(html)
}

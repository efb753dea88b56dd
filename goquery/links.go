package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/uidoc"
)

var _ uidoc.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor scans pages for anchors using CSS selection.
type LinkExtractor struct{}

// NewLinkExtractor creates a new LinkExtractor.
func NewLinkExtractor() *LinkExtractor {
	return &LinkExtractor{}
}

// ExtractLinks returns every anchor with a non-empty href, in document
// order. Hrefs are kept exactly as written and duplicates are preserved;
// catalog derivation downstream decides which links matter.
func (e *LinkExtractor) ExtractLinks(html string) ([]uidoc.Link, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, uidoc.Errorf(uidoc.EINTERNAL, "failed to parse HTML: %v", err)
	}

	var links []uidoc.Link
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if href == "" {
			return
		}
		links = append(links, uidoc.Link{
			Href: href,
			Text: strings.TrimSpace(sel.Text()),
		})
	})

	return links, nil
}

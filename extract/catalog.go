package extract

import (
	"strings"

	"github.com/fwojciec/uidoc"
)

// Catalog derives the component catalog from the index page's anchors.
// Every href starting with the component link prefix yields one entry, in
// anchor order, named after the href's final path segment. Duplicate hrefs
// yield duplicate entries. Descriptions stay empty at this stage.
func Catalog(links []uidoc.Link, site uidoc.Site) []*uidoc.Component {
	var components []*uidoc.Component
	for _, link := range links {
		if !strings.HasPrefix(link.Href, uidoc.ComponentLinkPrefix) {
			continue
		}

		segments := strings.Split(link.Href, "/")
		name := segments[len(segments)-1]
		if name == "" {
			continue
		}

		components = append(components, &uidoc.Component{
			Name: name,
			URL:  site.AbsoluteURL(link.Href),
		})
	}

	return components
}

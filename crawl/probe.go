package crawl

import "github.com/fwojciec/uidoc"

// RenderingRequired compares the content extracted from a plain HTTP fetch
// of a page against the content from a browser-rendered fetch. Returns true
// if the rendered content is significantly longer (>50%), suggesting the
// site needs JavaScript to produce its documentation. Also returns true on
// extraction errors (assumes rendering needed).
func RenderingRequired(staticHTML, renderedHTML string, extractor uidoc.ContentExtractor) bool {
	staticResult, err := extractor.Extract(staticHTML)
	if err != nil {
		return true
	}

	renderedResult, err := extractor.Extract(renderedHTML)
	if err != nil {
		return true
	}

	staticLen := len(staticResult.ContentHTML)
	renderedLen := len(renderedResult.ContentHTML)

	if staticLen == 0 && renderedLen > 0 {
		return true
	}

	threshold := float64(staticLen) * 1.5
	return float64(renderedLen) > threshold
}

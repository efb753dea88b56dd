package mock

import "github.com/fwojciec/uidoc"

var _ uidoc.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of uidoc.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (*uidoc.ExtractResult, error)
}

func (e *ContentExtractor) Extract(html string) (*uidoc.ExtractResult, error) {
	return e.ExtractFn(html)
}

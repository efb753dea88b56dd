package readability

import (
	"strings"

	"github.com/fwojciec/uidoc"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements uidoc.ContentExtractor at compile time.
var _ uidoc.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*uidoc.ExtractResult, error) {
	if rawHTML == "" {
		return nil, uidoc.Errorf(uidoc.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &uidoc.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}

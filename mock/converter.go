package mock

import "github.com/fwojciec/uidoc"

var _ uidoc.Converter = (*Converter)(nil)

// Converter is a mock implementation of uidoc.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

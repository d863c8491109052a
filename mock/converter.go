package mock

import (
	parasite "github.com/trstickland/parasite-static"
)

var _ parasite.Converter = (*Converter)(nil)

// Converter is a mock implementation of parasite.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

package vpic

import (
	"context"

	"github.com/denismitr/vpic/options"
)

type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// Lookup runs fetch, extract and filter in order, stopping at the first failure.
func Lookup(ctx context.Context, f Fetcher, fo *options.FilterOptions) ([]Manufacturer, error) {
	body, err := f.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	ms, err := Extract(body)
	if err != nil {
		return nil, err
	}

	return Filter(ms, fo)
}

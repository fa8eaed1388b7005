package fabric

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoMoreItems is returned by PaginationIterator.Next when the listing is
// exhausted.
var ErrNoMoreItems = errors.New("no more items")

// PageLister fetches one page of a continuation-token paginated listing.
type PageLister[T any] interface {
	ListWithPath(ctx context.Context, path string, params *QueryParams) (*ListResponse[T], error)
}

// PaginationIterator iterates over all items of a paginated listing,
// fetching pages lazily. Items are yielded in API response order with pages
// concatenated.
type PaginationIterator[T any] struct {
	ctx     context.Context
	client  PageLister[T]
	path    string
	params  *QueryParams
	buffer  []T
	token   *string
	fetched bool
}

// NewPaginationIterator creates an iterator over the listing at path.
func NewPaginationIterator[T any](ctx context.Context, client PageLister[T], path string, params *QueryParams) *PaginationIterator[T] {
	if params == nil {
		params = NewQueryParams()
	}

	return &PaginationIterator[T]{
		ctx:    ctx,
		client: client,
		path:   path,
		params: params,
	}
}

// HasNext reports whether another item is available without forcing a
// fetch of the next page.
func (it *PaginationIterator[T]) HasNext() bool {
	return len(it.buffer) > 0 || !it.fetched || it.token != nil
}

// Next returns the next item, fetching the next page when the buffer is
// exhausted. It returns ErrNoMoreItems after the final item.
func (it *PaginationIterator[T]) Next() (T, error) {
	var zero T

	for len(it.buffer) == 0 {
		if it.fetched && it.token == nil {
			return zero, ErrNoMoreItems
		}

		err := it.fetchPage()
		if err != nil {
			return zero, err
		}
	}

	item := it.buffer[0]
	it.buffer = it.buffer[1:]

	return item, nil
}

func (it *PaginationIterator[T]) fetchPage() error {
	if it.token != nil {
		it.params.ContinuationToken = *it.token
	}

	page, err := it.client.ListWithPath(it.ctx, it.path, it.params)
	if err != nil {
		return fmt.Errorf("fetching page: %w", err)
	}

	it.buffer = append(it.buffer, page.Value...)
	it.token = page.ContinuationToken
	it.fetched = true

	return nil
}

// CollectAll drains a listing into a single slice, all pages flattened in
// response order.
func CollectAll[T any](ctx context.Context, client PageLister[T], path string, params *QueryParams) ([]T, error) {
	iterator := NewPaginationIterator(ctx, client, path, params)

	var items []T

	for {
		item, err := iterator.Next()
		if errors.Is(err, ErrNoMoreItems) {
			return items, nil
		}

		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}
}

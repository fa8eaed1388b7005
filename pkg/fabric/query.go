package fabric

import "net/url"

// QueryParams represents query parameters for list requests.
type QueryParams struct {
	// Type filters item listings to a single item type.
	Type string
	// ContinuationToken requests the next page of a paginated listing.
	ContinuationToken string
}

// NewQueryParams creates an empty QueryParams.
func NewQueryParams() *QueryParams {
	return &QueryParams{}
}

// WithType sets the item type filter.
func (p *QueryParams) WithType(itemType string) *QueryParams {
	p.Type = itemType

	return p
}

// WithContinuationToken sets the continuation token.
func (p *QueryParams) WithContinuationToken(token string) *QueryParams {
	p.ContinuationToken = token

	return p
}

// ToValues converts the params to url.Values.
func (p *QueryParams) ToValues() url.Values {
	values := url.Values{}

	if p.Type != "" {
		values.Set("type", p.Type)
	}

	if p.ContinuationToken != "" {
		values.Set("continuationToken", p.ContinuationToken)
	}

	return values
}

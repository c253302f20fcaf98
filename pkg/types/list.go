package types

// ListParams represents the pagination and ordering part of every list
// request. Page is 1-indexed.
type ListParams struct {
	Page    int    `json:"page"`
	Limit   int    `json:"limit"`
	OrderBy string `json:"orderBy"`
	Sort    string `json:"sort"`
	Search  string `json:"search,omitempty"`
}

func (p ListParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// ListMeta is the meta half of the list response envelope.
type ListMeta struct {
	Total    uint64      `json:"total"`
	Page     int         `json:"page"`
	LastPage int         `json:"lastPage"`
	Filters  interface{} `json:"filters"`
	OrderBy  string      `json:"orderBy"`
	Sort     string      `json:"sort"`
}

// ListResult is the `{data, meta}` envelope returned by all list
// operations.
type ListResult struct {
	Data interface{} `json:"data"`
	Meta ListMeta    `json:"meta"`
}

// NewListMeta derives pagination metadata from a total row count and
// the request parameters. filters is echoed back verbatim.
func NewListMeta(total uint64, params ListParams, filters interface{}) ListMeta {
	lastPage := 0
	if params.Limit > 0 {
		lastPage = int((total + uint64(params.Limit) - 1) / uint64(params.Limit))
	}
	return ListMeta{
		Total:    total,
		Page:     params.Page,
		LastPage: lastPage,
		Filters:  filters,
		OrderBy:  params.OrderBy,
		Sort:     params.Sort,
	}
}

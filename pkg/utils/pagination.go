package utils

import (
	"net/url"
	"strconv"
	"strings"

	"asset-system/pkg/types"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100

	DefaultOrderBy = "created_at"
)

// ParseListParams reads page/limit/orderBy/sort/search from the query
// string. defaultSort is entity-specific ("desc" for equipment and
// moves, "asc" elsewhere).
func ParseListParams(values url.Values, defaultSort string) types.ListParams {
	params := types.ListParams{
		Page:    1,
		Limit:   DefaultLimit,
		OrderBy: DefaultOrderBy,
		Sort:    defaultSort,
	}

	if pageStr := values.Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			params.Page = p
		}
	}
	if limitStr := values.Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			if l > MaxLimit {
				params.Limit = MaxLimit
			} else {
				params.Limit = l
			}
		}
	}
	if orderBy := values.Get("orderBy"); orderBy != "" {
		params.OrderBy = orderBy
	}
	if sort := strings.ToLower(values.Get("sort")); sort == "asc" || sort == "desc" {
		params.Sort = sort
	}
	if search := values.Get("search"); search != "" {
		params.Search = search
	}

	return params
}

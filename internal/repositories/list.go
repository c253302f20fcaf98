package repositories

import (
	"strings"

	"asset-system/pkg/types"
)

// orderClause whitelists the orderBy field against allowed and builds
// the ORDER BY expression. Unknown fields fall back to the
// entity-specific default.
func orderClause(allowed map[string]string, params types.ListParams, fallback string) string {
	col, ok := allowed[params.OrderBy]
	if !ok {
		return fallback
	}
	dir := "ASC"
	if strings.ToLower(params.Sort) == "desc" {
		dir = "DESC"
	}
	return col + " " + dir
}

package repository

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"library-manager/internal/model"
)

// searchExpr matches search case-insensitively against the
// space-joined concatenation of cols, the way the listings treat
// title+author and firstName+lastName as a single searchable text.
func searchExpr(search string, cols ...string) sq.Sqlizer {
	return sq.Expr(
		"concat("+strings.Join(cols, ", ' ', ")+") ilike ?",
		"%"+search+"%",
	)
}

// sortColumn maps a client-supplied sort field onto a whitelisted
// column; unknown fields fall back to created_at.
func sortColumn(columns map[string]string, sortBy string) string {
	if col, ok := columns[sortBy]; ok {
		return col
	}
	return "created_at"
}

// withListing applies ordering and pagination. Descending is the
// fallback for any direction other than exactly "asc".
func withListing(q sq.SelectBuilder, sortCol string, p model.ListParams) sq.SelectBuilder {
	dir := " desc"
	if p.SortAsc {
		dir = " asc"
	}
	return q.OrderBy(sortCol + dir).
		Limit(uint64(p.PageSize)).
		Offset(uint64(p.Offset()))
}

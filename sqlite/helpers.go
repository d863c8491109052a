package sqlite

import (
	"fmt"
	"strings"
	"time"
)

// parseRFC3339 decodes a timestamp column. The registry stores every
// timestamp as an RFC3339 string.
func parseRFC3339(value, column string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s timestamp %q: %w", column, value, err)
	}
	return t, nil
}

// appendPagination adds LIMIT and OFFSET clauses to query. Zero values
// leave the query unbounded.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}

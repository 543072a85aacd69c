package postgres

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"

	"github.com/groupbuy/core/pkg/domain/interfaces"
	"github.com/groupbuy/core/pkg/domain/model"
)

// adminResources is the fixed registry of tables browsable through the
// admin console. Names are interpolated into SQL, so only entries from
// this list are ever queried.
var adminResources = []string{
	"users",
	"categories",
	"procurements",
	"participants",
	"messages",
	"payments",
}

// Resources lists browsable tables with their row counts
func (c *Client) Resources(ctx context.Context) ([]*interfaces.AdminResource, error) {
	resources := make([]*interfaces.AdminResource, 0, len(adminResources))
	for _, name := range adminResources {
		var count int64
		if err := c.db.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", name)).Scan(&count); err != nil {
			return nil, goerr.Wrap(err, "failed to count resource rows", goerr.V("resource", name))
		}
		resources = append(resources, &interfaces.AdminResource{Name: name, Count: count})
	}
	return resources, nil
}

// Rows pages raw rows of a registered resource as generic maps
func (c *Client) Rows(ctx context.Context, resource string, limit, offset int) ([]map[string]any, error) {
	if !isAdminResource(resource) {
		return nil, goerr.Wrap(model.ErrNotFound, "unknown admin resource", goerr.V("resource", resource))
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := c.db.QueryContext(ctx,
		fmt.Sprintf("SELECT * FROM %s ORDER BY 1 LIMIT $1 OFFSET $2", resource), limit, offset)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query resource rows", goerr.V("resource", resource))
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read result columns")
	}

	var result []map[string]any
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, goerr.Wrap(err, "failed to scan resource row")
		}

		record := make(map[string]any, len(columns))
		for i, col := range columns {
			// lib/pq returns TEXT columns as []byte through the generic scanner
			if b, ok := values[i].([]byte); ok {
				record[col] = string(b)
			} else {
				record[col] = values[i]
			}
		}
		result = append(result, record)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate resource rows")
	}
	return result, nil
}

func isAdminResource(name string) bool {
	for _, r := range adminResources {
		if r == name {
			return true
		}
	}
	return false
}

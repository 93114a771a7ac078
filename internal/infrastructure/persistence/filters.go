package persistence

import (
	"strings"

	"gorm.io/gorm"

	"github.com/adagency/backoffice/internal/domain/shared"
)

// applyPagination applies page and ordering options to the query.
// orderColumns is the whitelist of sortable columns; an OrderBy outside
// of it falls back to defaultOrder.
func applyPagination(query *gorm.DB, filter shared.Filter, defaultOrder string, orderColumns ...string) *gorm.DB {
	order := defaultOrder
	if filter.OrderBy != "" {
		for _, col := range orderColumns {
			if filter.OrderBy == col {
				dir := "ASC"
				if strings.ToLower(filter.OrderDir) == "desc" {
					dir = "DESC"
				}
				order = col + " " + dir
				break
			}
		}
	}

	query = query.Order(order)

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	return query
}

package postgres

import (
	"errors"

	"github.com/lib/pq"
)

const pqUndefinedTable = "42P01"

func isUndefinedTable(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUndefinedTable
	}
	return false
}

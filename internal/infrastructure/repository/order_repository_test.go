package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderSortClause(t *testing.T) {
	assert.Equal(t, "order_date DESC", orderSortClause("", ""))
	assert.Equal(t, "total_cost ASC", orderSortClause("total_cost", "asc"))
	assert.Equal(t, "invoice_number DESC", orderSortClause("invoice_number", "descending"))

	// Anything not on the column allowlist falls back to the default
	assert.Equal(t, "order_date DESC", orderSortClause("total_cost; DROP TABLE orders", ""))
	assert.Equal(t, "order_date ASC", orderSortClause("1=1 --", "ASC"))
}

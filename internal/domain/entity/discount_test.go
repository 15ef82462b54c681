package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDiscount_IsValidAt(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 31, 23, 59, 59, 0, time.UTC)
	discount := &Discount{StartDate: start, EndDate: end, IsActive: true}

	assert.True(t, discount.IsValidAt(start))
	assert.True(t, discount.IsValidAt(end))
	assert.True(t, discount.IsValidAt(time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)))

	assert.False(t, discount.IsValidAt(start.Add(-time.Second)))
	assert.False(t, discount.IsValidAt(end.Add(time.Second)))

	discount.IsActive = false
	assert.False(t, discount.IsValidAt(start.AddDate(0, 0, 14)))
}

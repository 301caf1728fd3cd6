package stock_test

import (
	"testing"

	"github.com/jhoicas/fishstock-api/internal/domain/stock"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	assert.Equal(t, stock.StatusFresh, stock.Classify(0))
	assert.Equal(t, stock.StatusModerate, stock.Classify(2))
	assert.Equal(t, stock.StatusUrgent, stock.Classify(5))

	for d := -10; d <= 30; d++ {
		s := stock.Classify(d)
		assert.Equal(t, d <= 1, s == stock.StatusFresh, "edad %d", d)
		assert.Equal(t, d == 2, s == stock.StatusModerate, "edad %d", d)
		assert.Equal(t, d >= 3, s == stock.StatusUrgent, "edad %d", d)
	}
}

func TestStatus_LabelYDescripcion(t *testing.T) {
	assert.Equal(t, "Fresh", stock.StatusFresh.Label())
	assert.Equal(t, "Urgent Sale", stock.StatusUrgent.Label())
	assert.Equal(t, "2 days old", stock.StatusModerate.Description())
	assert.Equal(t, "3+ days old", stock.StatusUrgent.Description())
}

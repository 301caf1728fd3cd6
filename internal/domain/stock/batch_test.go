package stock_test

import (
	"math/rand"
	"regexp"
	"testing"
	"time"

	"github.com/jhoicas/fishstock-api/internal/domain/stock"
	"github.com/stretchr/testify/assert"
)

var batchPattern = regexp.MustCompile(`^B[1-9][0-9]{2}[0-9]{4}$`)

func TestBatchNumberGenerator_Formato(t *testing.T) {
	now := func() time.Time { return time.UnixMilli(1_700_000_123_456) }
	g := stock.NewBatchNumberGenerator(now, rand.New(rand.NewSource(42)))
	for i := 0; i < 200; i++ {
		b := g.Next()
		assert.Regexp(t, batchPattern, b)
		assert.Equal(t, "3456", b[len(b)-4:], "sufijo = últimos 4 dígitos del timestamp en ms")
	}
}

func TestBatchNumberGenerator_RellenaSufijo(t *testing.T) {
	now := func() time.Time { return time.UnixMilli(1_700_000_000_007) }
	g := stock.NewBatchNumberGenerator(now, rand.New(rand.NewSource(1)))
	b := g.Next()
	assert.Equal(t, "0007", b[len(b)-4:])
	assert.Len(t, b, 8)
}

func TestGenerateBatchNumber(t *testing.T) {
	assert.Regexp(t, batchPattern, stock.GenerateBatchNumber())
}

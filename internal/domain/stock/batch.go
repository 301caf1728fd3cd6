package stock

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// BatchPrefix prefijo fijo de los números de lote.
const BatchPrefix = "B"

// BatchNumberGenerator genera números de lote legibles: prefijo + aleatorio [100,999] +
// últimos 4 dígitos del timestamp en milisegundos. No es un identificador único global.
type BatchNumberGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
	now func() time.Time
}

// NewBatchNumberGenerator construye el generador. now y rnd pueden ser nil (reloj real, semilla por tiempo).
func NewBatchNumberGenerator(now func() time.Time, rnd *rand.Rand) *BatchNumberGenerator {
	if now == nil {
		now = time.Now
	}
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &BatchNumberGenerator{rnd: rnd, now: now}
}

// Next devuelve un nuevo número de lote.
func (g *BatchNumberGenerator) Next() string {
	g.mu.Lock()
	n := 100 + g.rnd.Intn(900)
	g.mu.Unlock()
	ms := g.now().UnixMilli() % 10000
	if ms < 0 {
		ms = -ms
	}
	return fmt.Sprintf("%s%d%04d", BatchPrefix, n, ms)
}

var defaultBatches = NewBatchNumberGenerator(nil, nil)

// GenerateBatchNumber usa el generador por defecto (reloj real).
func GenerateBatchNumber() string {
	return defaultBatches.Next()
}

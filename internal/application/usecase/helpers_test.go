package usecase_test

import (
	"time"

	"github.com/jhoicas/fishstock-api/internal/application/ports"
	"github.com/shopspring/decimal"
)

// fixedClock 10-01-2024 18:30 en IST.
var ist = time.FixedZone("IST", 5*3600+1800)

func fixedClock() ports.Clock {
	return ports.ClockFunc(func() time.Time { return time.Date(2024, time.January, 10, 18, 30, 0, 0, ist) })
}

type seqBatches struct{ n int }

func (s *seqBatches) Next() string {
	s.n++
	return "B10" + string(rune('0'+s.n%10)) + "0000"
}

// kg remanente medido en kilos.
func kg(n int64) *decimal.Decimal {
	d := decimal.NewFromInt(n)
	return &d
}

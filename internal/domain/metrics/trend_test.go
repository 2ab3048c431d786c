package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// A convenção de divisão por zero é deliberada: previous zero com
// current positivo vale +100, ambos zero vale 0.
func TestTrendConventions(t *testing.T) {
	assert.Equal(t, 0.0, Trend(0, 0))
	assert.Equal(t, 100.0, Trend(1, 0))
	assert.Equal(t, 100.0, Trend(250, 0))
	assert.Equal(t, -50.0, Trend(50, 100))
	assert.Equal(t, 50.0, Trend(150, 100))
}

func TestTrendRoundsToOneDecimal(t *testing.T) {
	// (1-3)/3*100 = -66.666... → -66.7
	assert.Equal(t, -66.7, Trend(1, 3))
	// (1000-300)/300*100 = 233.333... → 233.3
	assert.Equal(t, 233.3, Trend(1000, 300))
}

func TestTrendsFieldMapping(t *testing.T) {
	cur := &PeriodAggregates{TotalOrders: 150, Completed: 10, Revenue: 50}
	prev := &PeriodAggregates{TotalOrders: 100, Completed: 0, Revenue: 100}

	ts := Trends(cur, prev)

	assert.Equal(t, 50.0, ts.TotalOrders)
	assert.Equal(t, 100.0, ts.Completed)
	assert.Equal(t, -50.0, ts.Revenue)
	assert.Equal(t, 0.0, ts.OpenOrders)
}

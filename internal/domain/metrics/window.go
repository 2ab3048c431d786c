package metrics

import "time"

// Range seleciona a janela de comparação do dashboard.
type Range string

const (
	RangeWeek    Range = "week"
	RangeMonth   Range = "month"
	RangeQuarter Range = "quarter"
)

// ParseRange falls back to month, the dashboard default.
func ParseRange(s string) Range {
	switch Range(s) {
	case RangeWeek, RangeMonth, RangeQuarter:
		return Range(s)
	default:
		return RangeMonth
	}
}

// Window é um intervalo [Start, End). End zero significa aberto — a
// janela corrente não tem limite superior, igual aos filtros SQL da
// versão original.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Open() bool {
	return w.End.IsZero()
}

// Resolve produces the current and previous windows for a selector.
// The previous window has the same length as the current one and ends
// exactly where the current one starts, so the two never overlap.
//
// week usa 7 dias corridos; month e quarter truncam no calendário,
// como o DATE_TRUNC do Postgres.
func Resolve(r Range, now time.Time) (current, previous Window) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch r {
	case RangeWeek:
		start := today.AddDate(0, 0, -7)
		return Window{Start: start},
			Window{Start: today.AddDate(0, 0, -14), End: start}

	case RangeQuarter:
		q := int(today.Month()-1) / 3
		start := time.Date(today.Year(), time.Month(q*3+1), 1, 0, 0, 0, 0, today.Location())
		return Window{Start: start},
			Window{Start: start.AddDate(0, -3, 0), End: start}

	default: // month
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return Window{Start: start},
			Window{Start: start.AddDate(0, -1, 0), End: start}
	}
}

// MonthStart truncates t to the first day of its calendar month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

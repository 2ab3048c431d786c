package metrics

import "math"

// Trend é a variação percentual previous → current, arredondada para
// uma casa decimal.
//
// Convenção deliberada para evitar divisão por zero: com previous zero
// o resultado é +100 quando current é positivo e 0 quando ambos são
// zero. Não é um percentual genérico.
func Trend(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	change := (current - previous) / previous * 100
	return math.Round(change*10) / 10
}

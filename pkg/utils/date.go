package utils

import "time"

// TruncateToDay retorna a data (00:00 UTC) correspondente ao instante informado
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

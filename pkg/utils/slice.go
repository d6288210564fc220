package utils

// Head retorna no máximo os n primeiros itens, nunca nil
func Head[T any](items []T, n int) []T {
	if n > len(items) {
		n = len(items)
	}
	if n < 0 {
		n = 0
	}

	out := make([]T, n)
	copy(out, items[:n])
	return out
}

package service

// pageBounds traduce (page, limit) a los índices [start, end) sobre un
// array embebido de n elementos. page arranca en 1; valores fuera de
// rango devuelven un slice vacío.
func pageBounds(page, limit, n int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	start := (page - 1) * limit
	if start > n {
		return n, n
	}
	end := start + limit
	if end > n {
		end = n
	}
	return start, end
}

func normalizePage(page, limit int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	return page, limit
}

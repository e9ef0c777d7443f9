package dashboard

// PageSize is the number of table rows per page.
const PageSize = 5

// PageCount returns ceil(n/size), or 0 when there is nothing to show.
func PageCount(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// ItemsForPage returns the 1-based page of items. Out-of-range pages are empty.
func ItemsForPage[T any](items []T, page, size int) []T {
	if page < 1 || size <= 0 {
		return nil
	}
	start := (page - 1) * size
	if start >= len(items) {
		return nil
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// CanGoPrev reports whether a previous page exists.
func CanGoPrev(page int) bool {
	return page > 1
}

// CanGoNext reports whether a next page exists.
func CanGoNext(page, pageCount int) bool {
	return page < pageCount
}

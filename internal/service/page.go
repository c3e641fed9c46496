package service

// Paginate returns a copy of the 1-based page of items. Pages below 1 are
// treated as page 1; a non-positive pageSize yields an empty page.
func Paginate[E any](items []E, page, pageSize int) []E {
	if pageSize <= 0 {
		return []E{}
	}
	if page < 1 {
		page = 1
	}

	// Compare in page units so (page-1)*pageSize cannot overflow.
	pages := len(items) / pageSize
	if len(items)%pageSize != 0 {
		pages++
	}
	if page > pages {
		return []E{}
	}

	start := (page - 1) * pageSize
	n := min(pageSize, len(items)-start)

	out := make([]E, n)
	copy(out, items[start:start+n])
	return out
}

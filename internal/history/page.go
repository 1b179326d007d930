package history

type Pagination struct {
	Page    int  `json:"page"`
	PerPage int  `json:"perPage"`
	Total   int  `json:"total"`
	Pages   int  `json:"pages"`
	HasPrev bool `json:"hasPrev"`
	HasNext bool `json:"hasNext"`
}

const DefaultPerPage = 20

// Paginate returns the 1-based page of items. Out-of-range pages are empty.
func Paginate[T any](items []T, page, perPage int) ([]T, Pagination) {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	total := len(items)
	p := Pagination{
		Page:    page,
		PerPage: perPage,
		Total:   total,
		Pages:   (total + perPage - 1) / perPage,
		HasPrev: page > 1,
	}

	start := (page - 1) * perPage
	if start >= total {
		return nil, p
	}
	end := start + perPage
	if end > total {
		end = total
	}
	p.HasNext = end < total
	return items[start:end], p
}

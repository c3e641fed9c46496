package dto

// PageQuery binds the list query string.
type PageQuery struct {
	Page     int `form:"page,default=1"`
	PageSize int `form:"pageSize,default=10"`
}

type Links struct {
	Self string `json:"self"`
}

// PageResponse is the list envelope. TotalItems counts the items on this page.
type PageResponse[T any] struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	Items      []T `json:"items"`
}

func NewPageResponse[T any](q PageQuery, items []T) PageResponse[T] {
	if items == nil {
		items = []T{}
	}
	return PageResponse[T]{
		Page:       q.Page,
		PageSize:   q.PageSize,
		TotalItems: len(items),
		Items:      items,
	}
}

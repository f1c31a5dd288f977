package dto

// PaginationMeta describes one page of a list response.
type PaginationMeta struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Total   int `json:"total"`
}

// ListResponse is the standard envelope for paginated collections.
type ListResponse[T any] struct {
	Data []T            `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// RenderContext carries the per-request display parameters resolved by the
// request-context middleware: which locale, currency and area unit the
// response should be rendered in.
type RenderContext struct {
	Locale        string
	DefaultLocale string
	Currency      string
	AreaUnit      string
}

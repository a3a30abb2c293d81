package types

// Page 分页信息
type Page struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
}

func NewPage(page, perPage int, total int64) Page {
	pages := int((total + int64(perPage) - 1) / int64(perPage))
	if pages < 1 {
		pages = 1
	}
	return Page{
		Page:    page,
		PerPage: perPage,
		Total:   total,
		Pages:   pages,
	}
}

// Offset 页码换算偏移量，页码从 1 开始
func (p Page) Offset() int {
	return (p.Page - 1) * p.PerPage
}

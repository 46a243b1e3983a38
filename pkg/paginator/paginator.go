package paginator

// Adjust clamps page and limit into the accepted range.
func (p *PaginateQuery) Adjust() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}

	switch {
	case p.Limit < 1:
		p.Limit = DefaultLimit
	case p.Limit > MaxLimit:
		p.Limit = MaxLimit
	}
}

func (p PaginateQuery) Offset() int64 {
	return int64(p.Page-1) * p.Limit
}

func (p Paginator) TotalPages() int {
	if p.Total == 0 || p.PerPage == 0 {
		return 0
	}
	return int((p.Total + p.PerPage - 1) / p.PerPage)
}

func (p Paginator) ToResponse() PaginatorResponse {
	totalPages := p.TotalPages()
	return PaginatorResponse{
		Total:       p.Total,
		Count:       p.Count,
		PerPage:     p.PerPage,
		CurrentPage: p.CurrentPage,
		TotalPages:  totalPages,
		HasNext:     p.CurrentPage < totalPages,
		HasPrev:     p.CurrentPage > 1,
	}
}

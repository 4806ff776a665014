package pagination

// Meta describes where a printed window sits in the whole list.
type Meta struct {
	CurrentPage int
	PageSize    int
	TotalPages  int
	TotalItems  int
	From        int
	To          int
	HasPrevious bool
	HasNext     bool
}

// NewMeta builds the metadata for params over totalCount positions.
func NewMeta(params Params, totalCount int) Meta {
	from, to := params.Window(totalCount)

	pageSize := params.PageSize
	if !params.IsPageBased() {
		pageSize = params.Limit
	}
	if pageSize == 0 {
		pageSize = totalCount
	}

	currentPage, totalPages := 1, 0
	if pageSize > 0 {
		currentPage = from/pageSize + 1
		totalPages = (totalCount + pageSize - 1) / pageSize
	}

	return Meta{
		CurrentPage: currentPage,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		TotalItems:  totalCount,
		From:        from,
		To:          to,
		HasPrevious: from > 0,
		HasNext:     to < totalCount,
	}
}

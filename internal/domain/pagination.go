package domain

// PaginationParams holds limit/offset pagination parameters for list queries.
type PaginationParams struct {
	Limit  int
	Offset int
}

// Window returns the [start, end) bounds of the page within a list of n items.
func (p PaginationParams) Window(n int) (start, end int) {
	start = p.Offset
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	end = n
	if p.Limit >= 0 && start+p.Limit < n {
		end = start + p.Limit
	}
	return start, end
}

package domain

const (
	DefaultPageSize = 50
	MaxPageSize     = 500
)

// ListFilter holds search, filtering and paging parameters for admin listings.
type ListFilter struct {
	// Search is matched case-insensitively against the searchable columns of the entity.
	Search string
	// Filters restricts results by foreign key columns, e.g. "option_name_id".
	Filters map[string]int64
	SortBy  string
	Desc    bool
	Limit   int
	Offset  int
}

// Normalized returns a copy with paging bounds applied.
func (f ListFilter) Normalized() ListFilter {
	if f.Limit <= 0 {
		f.Limit = DefaultPageSize
	}
	if f.Limit > MaxPageSize {
		f.Limit = MaxPageSize
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}

// Page is one page of a listing plus the total number of matching rows.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

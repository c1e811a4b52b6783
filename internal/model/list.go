package model

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// ListQuery carries the raw listing query parameters as received
// from the client, before defaults are applied.
type ListQuery struct {
	Search        string
	SortBy        string
	SortDirection string
	Page          int
	PageSize      int

	// Genre is the book filter: underscore-joined tags that must all
	// be present.
	Genre string
	// LendStatus filters loan listings; "all" or empty means no filter.
	LendStatus LendStatus
}

// ListParams is the normalized query contract shared by every
// paginated listing.
type ListParams struct {
	Search   string
	SortBy   string
	SortAsc  bool
	Page     int
	PageSize int
}

func (p ListParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// NormalizeListParams applies the listing defaults: page 1, page
// size 10, and descending order for any direction other than
// exactly "asc".
func NormalizeListParams(search, sortBy, sortDirection string, page, pageSize int) ListParams {
	if page <= 0 {
		page = DefaultPage
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return ListParams{
		Search:   search,
		SortBy:   sortBy,
		SortAsc:  sortDirection == "asc",
		Page:     page,
		PageSize: pageSize,
	}
}

type ListMeta struct {
	TotalItems int `json:"totalItems"`
	NumOfPages int `json:"numOfPages"`
}

func NewListMeta(totalItems, pageSize int) ListMeta {
	numOfPages := 0
	if pageSize > 0 {
		numOfPages = (totalItems + pageSize - 1) / pageSize
	}
	return ListMeta{
		TotalItems: totalItems,
		NumOfPages: numOfPages,
	}
}

type BookList struct {
	Data []Book `json:"data"`
	ListMeta
}

type ReaderList struct {
	Data []Reader `json:"data"`
	ListMeta
}

type LendBookList struct {
	Data []LendBook `json:"data"`
	ListMeta
}

// LendFilter narrows loan listings; zero fields are skipped and
// Status all (or empty) means no status filter.
type LendFilter struct {
	AdminID  string
	BookID   string
	ReaderID string
	Status   LendStatus
}

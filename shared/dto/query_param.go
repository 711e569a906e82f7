package dto

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams shapes list queries. SortBy may name several comma separated columns;
// SortDir then applies to the last one.
type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty,gte=1"`
	Limit   int    `json:"limit"    validate:"omitempty,gte=1"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

func Ascending(columns string) QueryParams {
	return QueryParams{SortBy: columns, SortDir: SortDirAsc}
}

func Descending(columns string) QueryParams {
	return QueryParams{SortBy: columns, SortDir: SortDirDesc}
}

// Offset is the number of rows skipped before the requested page, zero when paging is off.
func (q QueryParams) Offset() int {
	if q.Page < 1 || q.Limit < 1 {
		return 0
	}

	return (q.Page - 1) * q.Limit
}

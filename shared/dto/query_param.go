package dto

import (
	"marquee/shared/constant"
	"marquee/shared/failure"
	"net/http"
	"strconv"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest reads the page number from the request. The page size is fixed.
// An absent or empty page means page 1. A page that is not an integer is an
// InvalidParameter failure; an integer outside the available range is kept as is
// and clamped later, once the number of matching rows is known.
//
// Example:
//
//	q := dto.QueryParams{}
//	if err := q.FromRequest(req); err != nil {
//		response.WithError(w, err)
//	}
func (q *QueryParams) FromRequest(r *http.Request) error {
	q.Page = constant.DefaultValuePage
	q.Limit = constant.DefaultValueLimit

	page := strings.TrimSpace(r.URL.Query().Get(constant.RequestParamPage))
	if page == constant.Empty {
		return nil
	}

	pageInt, err := strconv.Atoi(page)
	if err != nil {
		return failure.InvalidPageParam
	}

	q.Page = pageInt

	return nil
}

// SortColumns returns the comma separated SortBy list as trimmed column names.
func (q *QueryParams) SortColumns() []string {
	if q.SortBy == constant.Empty {
		return nil
	}

	columns := []string{}

	for _, col := range strings.Split(q.SortBy, ",") {
		if col = strings.TrimSpace(col); col != constant.Empty {
			columns = append(columns, col)
		}
	}

	return columns
}

// Direction returns SortDir, defaulting to ascending.
func (q *QueryParams) Direction() string {
	if strings.ToUpper(q.SortDir) == SortDirDesc {
		return SortDirDesc
	}

	return SortDirAsc
}
